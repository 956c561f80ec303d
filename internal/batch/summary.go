package batch

import (
	"fmt"
	"strings"
)

// FileResult records what happened to one file in a batch.
type FileResult struct {
	Path    string `json:"path"`
	Changes int    `json:"changes"`
	Err     error  `json:"-"`
}

// Summary accumulates the outcome counters of one batch run.
type Summary struct {
	FilesAffected int          `json:"files_affected,omitempty"`
	Renamed       int          `json:"renamed,omitempty"`
	Updated       int          `json:"updated,omitempty"`
	Added         int          `json:"added,omitempty"`
	Failed        int          `json:"failed,omitempty"`
	Results       []FileResult `json:"results,omitempty"`
}

// String renders the summary from the non-zero counters only. When every
// counter is zero it reports "no changes made", never an empty string.
func (s *Summary) String() string {
	var parts []string
	if s.Renamed > 0 {
		parts = append(parts, fmt.Sprintf("renamed %d", s.Renamed))
	}
	if s.Updated > 0 {
		parts = append(parts, fmt.Sprintf("updated %d", s.Updated))
	}
	if s.Added > 0 {
		parts = append(parts, fmt.Sprintf("added %d", s.Added))
	}
	if s.FilesAffected > 0 {
		parts = append(parts, fmt.Sprintf("%d %s affected", s.FilesAffected, pluralFiles(s.FilesAffected)))
	}
	if s.Failed > 0 {
		parts = append(parts, fmt.Sprintf("failed %d", s.Failed))
	}
	if len(parts) == 0 {
		return "no changes made"
	}
	return strings.Join(parts, ", ")
}

func pluralFiles(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
