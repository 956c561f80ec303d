// Package batch implements property mutations across sets of markdown files:
// the per-document mutation operations, cross-file aggregation, and the
// orchestration that applies one edit spec to a whole file list.
package batch

import (
	"github.com/magpiemd/magpie/internal/parser"
	"github.com/magpiemd/magpie/internal/props"
)

// ReservedKey is the frontmatter key this tool never reads or writes.
// Tag management belongs to a separate workflow.
const ReservedKey = "tags"

// AddProp is one property row in an add spec.
type AddProp struct {
	Key   string
	Value props.Value
	Type  props.Type
}

// Add inserts properties into a block. Keys already present are left
// untouched and not counted. Returns the number of keys inserted.
func Add(block *parser.Block, toAdd []AddProp) int {
	added := 0
	for _, p := range toAdd {
		if p.Key == "" || p.Key == ReservedKey {
			continue
		}
		if block.Has(p.Key) {
			continue
		}
		block.Set(p.Key, p.Value)
		added++
	}
	return added
}

// Remove deletes keys from a block. Absent keys are skipped silently.
// Returns the number of keys deleted.
func Remove(block *parser.Block, keys []string) int {
	removed := 0
	for _, key := range keys {
		if key == ReservedKey {
			continue
		}
		if block.Delete(key) {
			removed++
		}
	}
	return removed
}

// RenameKey moves oldKey's value to newKey, overwriting any pre-existing
// value at newKey. Returns true iff oldKey was present; when absent the
// block is untouched and the caller decides whether to create newKey
// instead.
func RenameKey(block *parser.Block, oldKey, newKey string) bool {
	if oldKey == ReservedKey || newKey == ReservedKey || newKey == "" {
		return false
	}
	return block.Rename(oldKey, newKey)
}

// UpdateOutcome reports what UpdateValue did to a block.
type UpdateOutcome int

const (
	NoChange UpdateOutcome = iota
	Updated
	Added
)

// UpdateValue overwrites key's value if present (Updated), inserts it if
// absent and addIfMissing is set (Added), and otherwise leaves the block
// untouched (NoChange).
func UpdateValue(block *parser.Block, key string, value props.Value, addIfMissing bool) UpdateOutcome {
	if key == "" || key == ReservedKey {
		return NoChange
	}
	if block.Has(key) {
		block.Set(key, value)
		return Updated
	}
	if addIfMissing {
		block.Set(key, value)
		return Added
	}
	return NoChange
}
