package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantLen     int
		wantErr     bool
		wantNotList bool
	}{
		{
			name:    "single entry",
			input:   `[{"eco":"A00","name":"Polish","moves":"1.b4"}]`,
			wantLen: 1,
		},
		{
			name:    "empty array",
			input:   `[]`,
			wantLen: 0,
		},
		{
			name:    "mixed element types still parse",
			input:   `[{"eco":"A00"}, 42, "x"]`,
			wantLen: 3,
		},
		{
			name:        "object root",
			input:       `{"eco":"A00","name":"Polish","moves":"1.b4"}`,
			wantErr:     true,
			wantNotList: true,
		},
		{
			name:        "scalar root",
			input:       `"just a string"`,
			wantErr:     true,
			wantNotList: true,
		},
		{
			name:        "numeric root",
			input:       `17`,
			wantErr:     true,
			wantNotList: true,
		},
		{
			name:    "malformed JSON",
			input:   `[{"eco":"A00",}]`,
			wantErr: true,
		},
		{
			name:    "truncated document",
			input:   `[{"eco":"A00"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Parse([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantNotList && !errors.Is(err, ErrRootNotArray) {
				t.Errorf("Parse() error = %v, want ErrRootNotArray", err)
			}
			if !tt.wantNotList && tt.wantErr && errors.Is(err, ErrRootNotArray) {
				t.Errorf("Parse() error = ErrRootNotArray, want decoder error")
			}
			if !tt.wantErr && len(entries) != tt.wantLen {
				t.Errorf("Parse() returned %d entries, want %d", len(entries), tt.wantLen)
			}
		})
	}
}

func TestMissingKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{
			name:  "all keys present",
			input: `[{"eco":"A00","name":"Polish","moves":"1.b4"},{"eco":"A02","name":"Bird","moves":"1.f4"}]`,
			want:  nil,
		},
		{
			name:  "extra keys are ignored",
			input: `[{"eco":"A00","name":"Polish","moves":"1.b4","aliases":["Sokolsky"]}]`,
			want:  nil,
		},
		{
			name:  "one key missing",
			input: `[{"eco":"A00","name":"Polish","moves":"1.b4"},{"eco":"A02","name":"Bird"}]`,
			want:  []int{1},
		},
		{
			name:  "non-object element counts as missing",
			input: `[{"eco":"A00","name":"Polish","moves":"1.b4"},"not an object"]`,
			want:  []int{1},
		},
		{
			name:  "nested array element counts as missing",
			input: `[["eco","name","moves"]]`,
			want:  []int{0},
		},
		{
			name:  "multiple offenders reported in array order",
			input: `[{"name":"x"},{"eco":"A00","name":"Polish","moves":"1.b4"},42,{"moves":"1.f4"}]`,
			want:  []int{0, 2, 3},
		},
		{
			name:  "empty array",
			input: `[]`,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got := MissingKeys(entries, RequiredKeys)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingKeys() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "no duplicates",
			input: `[{"moves":"1.b4"},{"moves":"1.f4"},{"moves":"1.Nf3"}]`,
			want:  nil,
		},
		{
			name:  "one duplicated value listed once",
			input: `[{"moves":"1.b4"},{"moves":"1.f4"},{"moves":"1.b4"}]`,
			want:  []string{"1.b4"},
		},
		{
			name:  "triplicate still listed once",
			input: `[{"moves":"1.b4"},{"moves":"1.b4"},{"moves":"1.b4"}]`,
			want:  []string{"1.b4"},
		},
		{
			name:  "multiple duplicates in first-occurrence order",
			input: `[{"moves":"1.f4"},{"moves":"1.b4"},{"moves":"1.f4"},{"moves":"1.b4"}]`,
			want:  []string{"1.f4", "1.b4"},
		},
		{
			name:  "comparison is case-sensitive",
			input: `[{"moves":"1.B4"},{"moves":"1.b4"}]`,
			want:  nil,
		},
		{
			name:  "non-string values are skipped",
			input: `[{"moves":1},{"moves":1},{"moves":"1.b4"}]`,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got := Duplicates(entries, MoveKey)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Duplicates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDuplicates_Deterministic(t *testing.T) {
	input := `[{"moves":"1.e4"},{"moves":"1.d4"},{"moves":"1.e4"},{"moves":"1.c4"},{"moves":"1.d4"}]`
	entries, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	first := Duplicates(entries, MoveKey)
	for i := 0; i < 100; i++ {
		if got := Duplicates(entries, MoveKey); !reflect.DeepEqual(got, first) {
			t.Fatalf("Duplicates() order changed across runs: %v vs %v", got, first)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	content := syntheticCatalog(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(content)
	}
}

func BenchmarkDuplicates(b *testing.B) {
	entries, err := Parse(syntheticCatalog(1000))
	if err != nil {
		b.Fatalf("Parse() error = %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Duplicates(entries, MoveKey)
	}
}

func syntheticCatalog(n int) []byte {
	type record struct {
		Eco   string `json:"eco"`
		Name  string `json:"name"`
		Moves string `json:"moves"`
	}
	records := make([]record, n)
	for i := range records {
		records[i] = record{
			Eco:   fmt.Sprintf("A%02d", i%100),
			Name:  fmt.Sprintf("Synthetic Opening %d", i),
			Moves: "1.e4 " + strings.Repeat("x", i%7) + fmt.Sprint(i),
		}
	}
	content, err := json.Marshal(records)
	if err != nil {
		panic(err)
	}
	return content
}
