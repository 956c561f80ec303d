package batch

import (
	"sort"

	"github.com/magpiemd/magpie/internal/props"
	"github.com/magpiemd/magpie/internal/vault"
)

// AggregatedProperty collects, for one key, the distinct values and inferred
// types observed across the active file set. Built fresh for each batch
// interaction; never persisted.
type AggregatedProperty struct {
	Key    string
	Values []props.Value
	Types  []props.Type
}

// HasType reports whether the given type tag was observed for this key.
func (a *AggregatedProperty) HasType(t props.Type) bool {
	for _, seen := range a.Types {
		if seen == t {
			return true
		}
	}
	return false
}

// Aggregate scans a file set and merges per-file observations into one
// cross-file view, keyed by property name. The reserved tags key is skipped.
// Files that fail to read contribute nothing; the scan never aborts.
// Values and types are recorded in first-seen order, so the result depends
// on file order only in ordering, never in content.
func Aggregate(store *vault.Store, files []string) map[string]*AggregatedProperty {
	result := make(map[string]*AggregatedProperty)

	for _, file := range files {
		block := store.ReadBlock(file)
		for _, key := range block.Keys() {
			if key == ReservedKey {
				continue
			}
			value, _ := block.Get(key)

			agg, ok := result[key]
			if !ok {
				agg = &AggregatedProperty{Key: key}
				result[key] = agg
			}

			if !containsValue(agg.Values, value) {
				agg.Values = append(agg.Values, value)
			}
			if t := props.Infer(value); !agg.HasType(t) {
				agg.Types = append(agg.Types, t)
			}
		}
	}

	return result
}

// SortedKeys returns the aggregated keys in lexical order.
func SortedKeys(aggregated map[string]*AggregatedProperty) []string {
	keys := make([]string, 0, len(aggregated))
	for key := range aggregated {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func containsValue(values []props.Value, v props.Value) bool {
	for _, existing := range values {
		if existing.Equal(v) {
			return true
		}
	}
	return false
}
