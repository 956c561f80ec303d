package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/magpiemd/magpie/internal/vault"
)

// fileSelection holds the target-selection flags shared by the edit and
// props commands.
type fileSelection struct {
	folder    string
	recursive bool
	depth     int
	stdin     bool
}

// registerSelectionFlags wires the shared selection flags onto a command.
func registerSelectionFlags(flags *pflag.FlagSet, sel *fileSelection) {
	flags.StringVarP(&sel.folder, "folder", "f", "", "Folder to scan for markdown files (relative to vault root)")
	flags.BoolVarP(&sel.recursive, "recursive", "r", false, "Include subfolders when scanning")
	flags.IntVar(&sel.depth, "depth", vault.UnlimitedDepth, "Maximum subfolder depth (-1 for unlimited)")
	flags.BoolVar(&sel.stdin, "stdin", false, "Read file paths from stdin, one per line")
}

// resolveFiles produces the absolute paths of the files a command operates
// on. Precedence: explicit args, then stdin, then a folder scan. Paths are
// returned in deterministic order for args and scans; stdin order is the
// caller's.
func resolveFiles(root string, args []string, sel fileSelection) ([]string, error) {
	if len(args) > 0 {
		files := make([]string, 0, len(args))
		for _, ref := range args {
			path, err := vault.ResolveFile(root, ref)
			if err != nil {
				return nil, err
			}
			files = append(files, path)
		}
		return files, nil
	}

	if sel.stdin {
		return readPathsFromStdin(root)
	}

	folder := filepath.Join(root, sel.folder)
	files, err := vault.ListFiles(folder, sel.recursive, sel.depth)
	if err != nil {
		return nil, err
	}
	return files, nil
}

// readPathsFromStdin reads file paths from stdin, one per line. Relative
// paths are resolved against the vault root; blank lines are skipped.
func readPathsFromStdin(root string) ([]string, error) {
	var files []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(root, line)
		}
		files = append(files, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from stdin: %w", err)
	}
	return files, nil
}

// relPaths converts absolute paths back to vault-relative display form.
func relPaths(root string, files []string) []string {
	rel := make([]string, len(files))
	for i, f := range files {
		if r, err := filepath.Rel(root, f); err == nil {
			rel[i] = r
		} else {
			rel[i] = f
		}
	}
	return rel
}
