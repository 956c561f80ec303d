package vault

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/magpiemd/magpie/internal/parser"
	"github.com/magpiemd/magpie/internal/props"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestReadBlock(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	t.Run("reads values", func(t *testing.T) {
		path := writeDoc(t, dir, "a.md", "---\nstatus: draft\n---\nbody\n")
		block := store.ReadBlock(path)
		if v, ok := block.Get("status"); !ok || !v.Equal(props.Text("draft")) {
			t.Errorf("Get(status) = %v, %v", v, ok)
		}
	})

	t.Run("missing frontmatter reads empty", func(t *testing.T) {
		path := writeDoc(t, dir, "b.md", "no frontmatter\n")
		if block := store.ReadBlock(path); block.Len() != 0 {
			t.Errorf("Len = %d, want 0", block.Len())
		}
	})

	t.Run("missing file reads empty", func(t *testing.T) {
		if block := store.ReadBlock(filepath.Join(dir, "nope.md")); block.Len() != 0 {
			t.Errorf("Len = %d, want 0", block.Len())
		}
	})

	t.Run("unparsable frontmatter reads empty", func(t *testing.T) {
		path := writeDoc(t, dir, "c.md", "---\n: : :\n---\n")
		if block := store.ReadBlock(path); block.Len() != 0 {
			t.Errorf("Len = %d, want 0", block.Len())
		}
	})
}

func TestTransact(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	t.Run("commits mutation", func(t *testing.T) {
		path := writeDoc(t, dir, "a.md", "---\nstatus: draft\n---\nbody\n")

		err := store.Transact(path, func(block *parser.Block) error {
			block.Set("status", props.Text("done"))
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, _ := os.ReadFile(path)
		want := "---\nstatus: done\n---\nbody\n"
		if string(content) != want {
			t.Errorf("got %q, want %q", content, want)
		}
	})

	t.Run("mutator error discards changes", func(t *testing.T) {
		original := "---\nstatus: draft\n---\nbody\n"
		path := writeDoc(t, dir, "b.md", original)

		boom := errors.New("boom")
		err := store.Transact(path, func(block *parser.Block) error {
			block.Set("status", props.Text("half-done"))
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("got %v, want boom", err)
		}

		content, _ := os.ReadFile(path)
		if string(content) != original {
			t.Errorf("file changed despite mutator error: %q", content)
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		err := store.Transact(filepath.Join(dir, "nope.md"), func(block *parser.Block) error {
			return nil
		})
		if err == nil {
			t.Error("expected error")
		}
	})

	t.Run("unparsable frontmatter errors", func(t *testing.T) {
		path := writeDoc(t, dir, "c.md", "---\n: : :\n---\n")
		err := store.Transact(path, func(block *parser.Block) error { return nil })
		if err == nil {
			t.Error("expected error")
		}
	})

	t.Run("no-op leaves bytes untouched", func(t *testing.T) {
		original := "---\nstatus: draft\n---\nbody\n"
		path := writeDoc(t, dir, "d.md", original)

		err := store.Transact(path, func(block *parser.Block) error { return nil })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		content, _ := os.ReadFile(path)
		if string(content) != original {
			t.Errorf("no-op transaction rewrote file: %q", content)
		}
	})

	t.Run("body preserved through edit", func(t *testing.T) {
		path := writeDoc(t, dir, "e.md", "---\na: 1\n---\n# Title\n\nparagraph with --- inside\n")

		err := store.Transact(path, func(block *parser.Block) error {
			block.Set("b", props.Number(2))
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, _ := os.ReadFile(path)
		want := "---\na: 1\nb: 2\n---\n# Title\n\nparagraph with --- inside\n"
		if string(content) != want {
			t.Errorf("got %q, want %q", content, want)
		}
	})
}
