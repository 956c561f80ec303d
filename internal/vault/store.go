// Package vault provides document storage for a folder tree of markdown files.
package vault

import (
	"fmt"
	"os"

	"github.com/magpiemd/magpie/internal/atomicfile"
	"github.com/magpiemd/magpie/internal/parser"
)

// Store is the sole read/write path for document frontmatter.
// Paths handed to Store methods are absolute or relative to the process
// working directory; the Root is kept for display purposes.
type Store struct {
	Root string
}

// NewStore creates a store rooted at the given vault path.
func NewStore(root string) *Store {
	return &Store{Root: root}
}

// ReadBlock reads a document's frontmatter block. Missing files, missing
// frontmatter, and unparsable frontmatter all read as an empty block; this
// is a recoverable condition, not an error.
func (s *Store) ReadBlock(path string) *parser.Block {
	content, err := os.ReadFile(path)
	if err != nil {
		return parser.NewBlock()
	}
	doc, err := parser.ParseDocument(string(content))
	if err != nil {
		return parser.NewBlock()
	}
	return doc.Block
}

// Transact runs a read-modify-write transaction on one document's block.
//
// The mutator receives the live parsed block; on nil return the document is
// rewritten atomically with the mutated block, otherwise all changes are
// discarded. Concurrent edits to the body between read and commit are the
// caller's concern; within one batch only one transaction is in flight.
func (s *Store) Transact(path string, mutator func(block *parser.Block) error) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := parser.ParseDocument(string(content))
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if err := mutator(doc.Block); err != nil {
		return err
	}

	rendered := doc.Render()
	if rendered == string(content) {
		return nil
	}

	if err := atomicfile.WriteFile(path, []byte(rendered), 0); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
