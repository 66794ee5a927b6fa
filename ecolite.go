// Package ecolite validates ECO-lite chess opening catalogs.
//
// A catalog is a UTF-8 JSON array of opening records, each carrying an ECO
// classification code, a human-readable name, and a move-sequence string
// that must be unique across the catalog.
//
// Example usage:
//
//	v, err := ecolite.New(
//	    ecolite.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := v.Validate(ctx, ecolite.DefaultPath)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("entries: %d\n", report.Entries)
package ecolite

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/discochess/ecolite/internal/codec"
	"github.com/discochess/ecolite/internal/codec/gzipcodec"
	"github.com/discochess/ecolite/internal/codec/noopcodec"
	"github.com/discochess/ecolite/internal/codec/zstdcodec"
	"github.com/discochess/ecolite/internal/dataset"
	"github.com/discochess/ecolite/internal/movetext"
	"github.com/discochess/ecolite/internal/stats"
)

// DefaultPath is where the reference deployment keeps the catalog.
const DefaultPath = "assets/data/eco_lite.json"

// ErrNoRequiredKeys indicates the validator was configured with an empty
// required-key set.
var ErrNoRequiredKeys = errors.New("ecolite: no required keys configured")

// Report summarizes a passing validation run.
type Report struct {
	// Entries is the number of records in the catalog.
	Entries int

	// ByteSize is the UTF-8 byte length of the decoded file content,
	// not of a re-serialized form.
	ByteSize int
}

// Validator checks an ECO-lite catalog file for structural problems,
// missing required keys, and duplicate move strings.
// A Validator holds no per-run state and is safe for concurrent use.
type Validator struct {
	requiredKeys []string
	checkMoves   bool
	codec        codec.Codec
	stats        stats.Collector
	logger       *zap.Logger
}

// New creates a new Validator with the given options.
// If no options are provided, sensible defaults are used.
func New(opts ...Option) (*Validator, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if len(cfg.requiredKeys) == 0 {
		return nil, ErrNoRequiredKeys
	}

	v := &Validator{
		requiredKeys: cfg.requiredKeys,
		checkMoves:   cfg.checkMoves,
		codec:        cfg.codec,
		stats:        cfg.stats,
		logger:       cfg.logger,
	}

	v.logger.Debug("validator initialized",
		zap.Strings("requiredKeys", v.requiredKeys),
		zap.Bool("checkMoves", v.checkMoves),
	)

	return v, nil
}

// Validate runs the full check pipeline against the catalog at path and
// returns a Report on success. On failure it returns exactly one of
// *LoadError, *ParseError, *ShapeError, *FieldError, *DuplicateError, or
// *MoveError; stages are strictly ordered and a failed stage stops the run.
func (v *Validator) Validate(ctx context.Context, path string) (*Report, error) {
	content, entries, err := v.run(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Report{Entries: len(entries), ByteSize: len(content)}, nil
}

// ReadRecords validates the catalog at path and decodes it into records.
// Callers never see records from a dataset that fails validation.
func (v *Validator) ReadRecords(ctx context.Context, path string) ([]Record, error) {
	content, _, err := v.run(ctx, path)
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(content, &records); err != nil {
		// Unreachable for content that passed the pipeline, but surfaced
		// rather than swallowed.
		return nil, &ParseError{Err: err}
	}
	return records, nil
}

// run executes the pipeline: load, parse, shape, fields, duplicates, and
// the optional movetext check.
func (v *Validator) run(ctx context.Context, path string) ([]byte, []any, error) {
	start := time.Now()
	v.stats.IncCounter(stats.MetricValidations, 1)

	content, entries, err := v.check(ctx, path)

	v.stats.ObserveHistogram(stats.MetricValidateSeconds, time.Since(start).Seconds())
	if err != nil {
		v.stats.IncCounter(stats.MetricFailures, 1)
		v.logger.Debug("validation failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, nil, err
	}

	v.stats.SetGauge(stats.MetricDatasetBytes, int64(len(content)))
	v.logger.Debug("validation passed",
		zap.String("path", path),
		zap.Int("entries", len(entries)),
		zap.Int("byteSize", len(content)),
	)
	return content, entries, nil
}

func (v *Validator) check(ctx context.Context, path string) ([]byte, []any, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	content, err := v.readAll(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}
	if !utf8.Valid(content) {
		return nil, nil, &LoadError{Path: path, Err: errors.New("content is not valid UTF-8")}
	}

	entries, err := dataset.Parse(content)
	if err != nil {
		if errors.Is(err, dataset.ErrRootNotArray) {
			return nil, nil, &ShapeError{}
		}
		return nil, nil, &ParseError{Err: err}
	}
	v.stats.IncCounter(stats.MetricEntriesChecked, int64(len(entries)))

	if missing := dataset.MissingKeys(entries, v.requiredKeys); len(missing) > 0 {
		return nil, nil, &FieldError{Indices: missing}
	}

	if duplicated := dataset.Duplicates(entries, dataset.MoveKey); len(duplicated) > 0 {
		return nil, nil, &DuplicateError{Moves: duplicated}
	}

	if v.checkMoves {
		if issues := checkMovetext(entries); len(issues) > 0 {
			return nil, nil, &MoveError{Issues: issues}
		}
	}

	return content, entries, nil
}

// readAll reads the whole file through the configured codec, releasing the
// file handle before any checks run.
func (v *Validator) readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := v.codec
	if c == nil {
		c = codecForPath(path)
	}

	r, err := c.Reader(f)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

// checkMovetext collects every entry whose moves string fails the legality
// check. Entries are known to be objects with a moves key by the time this
// runs; non-string values were already skipped by the duplicate check and
// are skipped here the same way.
func checkMovetext(entries []any) []MoveIssue {
	var issues []MoveIssue
	for i, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		moves, ok := obj[dataset.MoveKey].(string)
		if !ok {
			continue
		}
		if err := movetext.Check(moves); err != nil {
			issues = append(issues, MoveIssue{Index: i, Moves: moves, Err: err})
		}
	}
	return issues
}

// codecForPath picks a codec from the file extension, so compressed catalog
// snapshots validate without unpacking.
func codecForPath(path string) codec.Codec {
	switch filepath.Ext(path) {
	case ".gz":
		return gzipcodec.New()
	case ".zst":
		return zstdcodec.New()
	default:
		return noopcodec.New()
	}
}
