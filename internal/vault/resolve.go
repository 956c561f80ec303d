package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
)

// ResolveFile resolves a user-supplied file reference to a path under root.
//
// Literal candidates (as given, with .md appended) are tried first; failing
// that, the tree is searched for a slug-normalized match so "My Note" finds
// "my-note.md".
func ResolveFile(root, ref string) (string, error) {
	candidates := []string{ref}
	if !strings.HasSuffix(ref, ".md") {
		candidates = append(candidates, ref+".md")
	}
	for _, candidate := range candidates {
		path := candidate
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, candidate)
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	want := slugifyRef(strings.TrimSuffix(ref, ".md"))
	all, err := ListFiles(root, true, UnlimitedDepth)
	if err != nil {
		return "", err
	}
	for _, path := range all {
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			continue
		}
		if slugifyRef(strings.TrimSuffix(rel, ".md")) == want {
			return path, nil
		}
		if slugifyRef(strings.TrimSuffix(filepath.Base(rel), ".md")) == want {
			return path, nil
		}
	}

	return "", fmt.Errorf("file not found: %s", ref)
}

// slugifyRef slug-normalizes each path segment independently so separators
// survive ("People/Ada Lovelace" -> "people/ada-lovelace").
func slugifyRef(ref string) string {
	segments := strings.Split(filepath.ToSlash(ref), "/")
	for i, segment := range segments {
		segments[i] = slug.Make(segment)
	}
	return strings.Join(segments, "/")
}
