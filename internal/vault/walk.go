package vault

import (
	"os"
	"path/filepath"
	"strings"
)

// UnlimitedDepth disables the descent limit for ListFiles.
const UnlimitedDepth = -1

// ListFiles resolves a folder plus traversal options into a flat,
// deterministic list of markdown file paths.
//
// Direct files of each folder are listed before its subfolders are entered,
// in directory order. includeSubfolders=false short-circuits descent
// entirely; otherwise depth bounds how many levels below the start folder
// are entered (UnlimitedDepth for no bound, 0 for direct children only).
// Hidden directories (".magpie", ".trash", any dot-prefixed name) are
// skipped.
func ListFiles(folder string, includeSubfolders bool, depth int) ([]string, error) {
	if !includeSubfolders {
		depth = 0
	}
	return listFiles(folder, depth)
}

func listFiles(folder string, depth int) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}

	var files []string
	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if strings.HasPrefix(name, ".") {
				continue
			}
			subdirs = append(subdirs, name)
			continue
		}
		if strings.HasSuffix(name, ".md") {
			files = append(files, filepath.Join(folder, name))
		}
	}

	if depth == 0 {
		return files, nil
	}
	next := depth
	if next != UnlimitedDepth {
		next--
	}

	for _, name := range subdirs {
		sub, err := listFiles(filepath.Join(folder, name), next)
		if err != nil {
			// A subfolder that turns unreadable mid-walk is skipped, not fatal.
			continue
		}
		files = append(files, sub...)
	}

	return files, nil
}
