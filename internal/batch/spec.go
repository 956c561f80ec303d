package batch

import (
	"sort"

	"github.com/magpiemd/magpie/internal/props"
)

// AddSpec declares properties to insert across a file set.
type AddSpec struct {
	Props []AddProp
}

// RemoveSpec declares keys flagged for deletion across a file set.
type RemoveSpec struct {
	Keys []string
}

// RenameField is one rename row: an existing key and its replacement name.
// Only rows with Enabled set, a non-empty NewKey, and NewKey differing from
// OriginalKey are applied.
type RenameField struct {
	OriginalKey string
	NewKey      string
	Enabled     bool
}

// RenameSpec declares key renames across a file set. ApplyToMissing makes
// files lacking a key gain the new key with an empty value instead of being
// skipped.
type RenameSpec struct {
	Fields         []RenameField
	ApplyToMissing bool
}

// UpdateField is one update row: a key, its replacement value, and an
// optional simultaneous rename. When NewKey is set the rename is applied
// first and the value lands under the new name.
type UpdateField struct {
	Key     string
	NewKey  string
	Value   props.Value
	Type    props.Type
	Enabled bool
}

// UpdateSpec declares value updates (optionally combined with renames)
// across a file set. ApplyToMissing creates the key in files that lack it.
type UpdateSpec struct {
	Fields         []UpdateField
	ApplyToMissing bool
}

func (s RenameSpec) activeFields() []RenameField {
	active := make([]RenameField, 0, len(s.Fields))
	for _, f := range s.Fields {
		if !f.Enabled || f.NewKey == "" || f.NewKey == f.OriginalKey {
			continue
		}
		active = append(active, f)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].OriginalKey < active[j].OriginalKey })
	return active
}

func (s UpdateSpec) activeFields() []UpdateField {
	active := make([]UpdateField, 0, len(s.Fields))
	for _, f := range s.Fields {
		if !f.Enabled || f.Key == "" {
			continue
		}
		active = append(active, f)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Key < active[j].Key })
	return active
}

func (s AddSpec) sortedProps() []AddProp {
	sorted := append([]AddProp(nil), s.Props...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	return sorted
}

func (s RemoveSpec) sortedKeys() []string {
	sorted := append([]string(nil), s.Keys...)
	sort.Strings(sorted)
	return sorted
}
