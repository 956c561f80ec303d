package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/magpiemd/magpie/internal/props"
)

// Block is an ordered frontmatter mapping from key to property value.
// Keys are case-sensitive and unique; insertion order is preserved across
// a read-modify-write cycle so edits never reshuffle unrelated keys.
//
// Each entry remembers the YAML node it was parsed from. Untouched keys
// serialize from that node, so value shapes outside the property model
// (nested mappings, multi-line strings) survive a rewrite unchanged.
type Block struct {
	keys    []string
	entries map[string]blockEntry
}

type blockEntry struct {
	value props.Value
	node  *yaml.Node // original node; nil once the value is replaced
}

// NewBlock creates an empty block.
func NewBlock() *Block {
	return &Block{entries: make(map[string]blockEntry)}
}

// Len returns the number of keys in the block.
func (b *Block) Len() int {
	return len(b.keys)
}

// Keys returns the keys in block order.
func (b *Block) Keys() []string {
	return append([]string(nil), b.keys...)
}

// Get returns the value for a key.
func (b *Block) Get(key string) (props.Value, bool) {
	e, ok := b.entries[key]
	return e.value, ok
}

// Has reports whether the key is present.
func (b *Block) Has(key string) bool {
	_, ok := b.entries[key]
	return ok
}

// Set inserts or overwrites a key. New keys append at the end; existing
// keys keep their position.
func (b *Block) Set(key string, v props.Value) {
	if _, ok := b.entries[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.entries[key] = blockEntry{value: v}
}

// Delete removes a key. Returns true if the key was present.
func (b *Block) Delete(key string) bool {
	if _, ok := b.entries[key]; !ok {
		return false
	}
	delete(b.entries, key)
	b.removeKey(key)
	return true
}

// Rename moves oldKey's entry to newKey and deletes oldKey. Any value
// previously stored at newKey is overwritten; newKey takes over oldKey's
// position unless it already had one. Returns true iff oldKey was present.
func (b *Block) Rename(oldKey, newKey string) bool {
	e, ok := b.entries[oldKey]
	if !ok {
		return false
	}
	if oldKey == newKey {
		return true
	}

	_, targetExists := b.entries[newKey]
	delete(b.entries, oldKey)
	b.entries[newKey] = e

	if targetExists {
		b.removeKey(oldKey)
		return true
	}

	for i, k := range b.keys {
		if k == oldKey {
			b.keys[i] = newKey
			break
		}
	}
	return true
}

// Clone returns a copy suitable for previewing edits without committing.
func (b *Block) Clone() *Block {
	c := NewBlock()
	c.keys = append([]string(nil), b.keys...)
	for k, e := range b.entries {
		c.entries[k] = e
	}
	return c
}

func (b *Block) removeKey(key string) {
	for i, k := range b.keys {
		if k == key {
			b.keys = append(b.keys[:i], b.keys[i+1:]...)
			return
		}
	}
}

// blockFromNode builds a Block from a YAML mapping node, preserving
// document order. Duplicate keys keep the last value, matching yaml.v3's
// map decoding.
func blockFromNode(node *yaml.Node) (*Block, error) {
	block := NewBlock()
	if node == nil {
		return block, nil
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == 0 || node.Tag == "!!null" {
		return block, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("frontmatter is not a mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, fmt.Errorf("decode frontmatter key: %w", err)
		}

		var raw interface{}
		if err := valueNode.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode frontmatter value for %q: %w", key, err)
		}

		if _, seen := block.entries[key]; !seen {
			block.keys = append(block.keys, key)
		}
		block.entries[key] = blockEntry{value: props.FromYAML(raw), node: valueNode}
	}

	return block, nil
}

// marshalBlock serializes the block back to YAML in block order.
func marshalBlock(b *Block) ([]byte, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range b.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, fmt.Errorf("encode frontmatter key %q: %w", key, err)
		}

		entry := b.entries[key]
		valueNode := entry.node
		if valueNode == nil {
			valueNode = &yaml.Node{}
			raw := entry.value.Raw()
			if raw == nil {
				valueNode.Kind = yaml.ScalarNode
				valueNode.Tag = "!!null"
				valueNode.Value = "null"
			} else if err := valueNode.Encode(raw); err != nil {
				return nil, fmt.Errorf("encode frontmatter value for %q: %w", key, err)
			}
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}
	return yaml.Marshal(node)
}
