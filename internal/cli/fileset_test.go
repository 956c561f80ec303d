package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magpiemd/magpie/internal/vault"
)

func writeVaultFile(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("# doc\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestResolveFilesFromArgs(t *testing.T) {
	root := t.TempDir()
	writeVaultFile(t, root, "notes/inbox.md")

	files, err := resolveFiles(root, []string{"notes/inbox"}, fileSelection{})
	if err != nil {
		t.Fatalf("resolveFiles() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if filepath.Base(files[0]) != "inbox.md" {
		t.Errorf("unexpected file %q", files[0])
	}
}

func TestResolveFilesFromArgsNotFound(t *testing.T) {
	root := t.TempDir()
	if _, err := resolveFiles(root, []string{"missing"}, fileSelection{}); err == nil {
		t.Fatal("expected error for missing file ref")
	}
}

func TestResolveFilesScansFolder(t *testing.T) {
	root := t.TempDir()
	writeVaultFile(t, root, "notes/a.md")
	writeVaultFile(t, root, "notes/b.md")
	writeVaultFile(t, root, "notes/deep/c.md")
	writeVaultFile(t, root, "other/d.md")

	sel := fileSelection{folder: "notes", recursive: true, depth: vault.UnlimitedDepth}
	files, err := resolveFiles(root, nil, sel)
	if err != nil {
		t.Fatalf("resolveFiles() error = %v", err)
	}

	rel := relPaths(root, files)
	want := []string{
		filepath.Join("notes", "a.md"),
		filepath.Join("notes", "b.md"),
		filepath.Join("notes", "deep", "c.md"),
	}
	if len(rel) != len(want) {
		t.Fatalf("expected %d files, got %v", len(want), rel)
	}
	for i := range want {
		if rel[i] != want[i] {
			t.Errorf("file[%d] = %q, want %q", i, rel[i], want[i])
		}
	}
}

func TestResolveFilesNonRecursiveSkipsSubfolders(t *testing.T) {
	root := t.TempDir()
	writeVaultFile(t, root, "notes/a.md")
	writeVaultFile(t, root, "notes/deep/c.md")

	sel := fileSelection{folder: "notes", recursive: false, depth: vault.UnlimitedDepth}
	files, err := resolveFiles(root, nil, sel)
	if err != nil {
		t.Fatalf("resolveFiles() error = %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "a.md" {
		t.Fatalf("expected only a.md, got %v", relPaths(root, files))
	}
}

func TestRelPathsFallsBackToAbsolute(t *testing.T) {
	root := t.TempDir()
	abs := writeVaultFile(t, root, "a.md")
	rel := relPaths(root, []string{abs})
	if rel[0] != "a.md" {
		t.Errorf("expected vault-relative path, got %q", rel[0])
	}
}
