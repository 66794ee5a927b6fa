// Package dataset provides structural checks for ECO-lite opening catalogs.
//
// A catalog is a JSON array of objects. The checks here operate on the
// untyped parse result so that shape violations (non-array root, non-object
// elements) can be reported precisely instead of failing inside a struct
// decoder.
package dataset

import (
	"encoding/json"
	"errors"
)

// ErrRootNotArray indicates the top-level JSON value is not an array.
var ErrRootNotArray = errors.New("dataset root must be an array")

// RequiredKeys are the keys every catalog entry must carry.
var RequiredKeys = []string{"eco", "name", "moves"}

// MoveKey is the entry key whose value must be unique across the catalog.
const MoveKey = "moves"

// Parse decodes content as JSON and returns the elements of the root array.
// A JSON error from the decoder is returned as-is; a well-formed document
// whose root is not an array returns ErrRootNotArray.
func Parse(content []byte) ([]any, error) {
	var root any
	if err := json.Unmarshal(content, &root); err != nil {
		return nil, err
	}
	entries, ok := root.([]any)
	if !ok {
		return nil, ErrRootNotArray
	}
	return entries, nil
}

// MissingKeys returns the indices of entries that are not JSON objects or
// that lack any of the given keys. Indices are in array order, and every
// offending entry is reported; callers get the full list in one pass.
// An entry that is not an object counts as missing all keys.
func MissingKeys(entries []any, keys []string) []int {
	var missing []int
	for i, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			missing = append(missing, i)
			continue
		}
		for _, key := range keys {
			if _, ok := obj[key]; !ok {
				missing = append(missing, i)
				break
			}
		}
	}
	return missing
}

// Duplicates returns the string values of key that occur in more than one
// entry, each listed once in first-occurrence order. Comparison is exact and
// case-sensitive. Entries without a string value for key are skipped;
// MissingKeys has already vouched for presence by the time this runs.
func Duplicates(entries []any, key string) []string {
	counts := make(map[string]int, len(entries))
	var order []string
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		value, ok := obj[key].(string)
		if !ok {
			continue
		}
		if counts[value] == 0 {
			order = append(order, value)
		}
		counts[value]++
	}

	var duplicated []string
	for _, value := range order {
		if counts[value] > 1 {
			duplicated = append(duplicated, value)
		}
	}
	return duplicated
}
