package batch

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/magpiemd/magpie/internal/props"
)

func newTestRunner(t *testing.T, files map[string]string) (*Runner, []string) {
	t.Helper()
	store, list := tempVault(t, files)
	logger := log.New(io.Discard)
	return NewRunner(store, logger), list
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(content)
}

func TestRunAdd(t *testing.T) {
	runner, files := newTestRunner(t, map[string]string{
		"a.md": "---\nstatus: draft\n---\n",
		"b.md": "Some text\n",
	})

	summary := runner.RunAdd(files, AddSpec{Props: []AddProp{
		{Key: "priority", Value: props.Text("high"), Type: props.TypeText},
	}})

	if summary.FilesAffected != 2 {
		t.Errorf("FilesAffected = %d, want 2", summary.FilesAffected)
	}

	a := readFile(t, files[0])
	if !strings.Contains(a, "status: draft") || !strings.Contains(a, "priority: high") {
		t.Errorf("a.md = %q", a)
	}
	b := readFile(t, files[1])
	if !strings.Contains(b, "priority: high") || !strings.Contains(b, "Some text") {
		t.Errorf("b.md = %q", b)
	}

	// Re-running adds nothing.
	second := runner.RunAdd(files, AddSpec{Props: []AddProp{
		{Key: "priority", Value: props.Text("low")},
	}})
	if second.FilesAffected != 0 {
		t.Errorf("second FilesAffected = %d, want 0", second.FilesAffected)
	}
	if got := second.String(); got != "no changes made" {
		t.Errorf("summary = %q", got)
	}
	if !strings.Contains(readFile(t, files[0]), "priority: high") {
		t.Error("existing value was overwritten")
	}
}

func TestRunRemove(t *testing.T) {
	runner, files := newTestRunner(t, map[string]string{
		"a.md": "---\npriority: low\nstatus: draft\n---\n",
		"b.md": "---\nstatus: draft\n---\n",
	})

	summary := runner.RunRemove(files, RemoveSpec{Keys: []string{"priority"}})

	if summary.FilesAffected != 1 {
		t.Errorf("FilesAffected = %d, want 1", summary.FilesAffected)
	}
	if summary.Failed != 0 {
		t.Errorf("Failed = %d, want 0", summary.Failed)
	}
	if strings.Contains(readFile(t, files[0]), "priority") {
		t.Error("priority not removed from a.md")
	}
	if got := readFile(t, files[1]); got != "---\nstatus: draft\n---\n" {
		t.Errorf("b.md changed: %q", got)
	}
}

func TestRunRename(t *testing.T) {
	t.Run("with create missing", func(t *testing.T) {
		runner, files := newTestRunner(t, map[string]string{
			"a.md": "---\nstatus: draft\npriority: low\n---\n",
			"b.md": "---\npriority: low\n---\n",
		})

		summary := runner.RunRename(files, RenameSpec{
			Fields:         []RenameField{{OriginalKey: "status", NewKey: "state", Enabled: true}},
			ApplyToMissing: true,
		})

		if summary.Renamed != 1 || summary.Added != 1 {
			t.Errorf("Renamed = %d, Added = %d; want 1, 1", summary.Renamed, summary.Added)
		}
		if got := summary.String(); got != "renamed 1, added 1" {
			t.Errorf("summary = %q", got)
		}

		a := readFile(t, files[0])
		if !strings.Contains(a, "state: draft") || strings.Contains(a, "status:") {
			t.Errorf("a.md = %q", a)
		}
		b := readFile(t, files[1])
		if !strings.Contains(b, `state: ""`) || !strings.Contains(b, "priority: low") {
			t.Errorf("b.md = %q", b)
		}
	})

	t.Run("without create missing", func(t *testing.T) {
		runner, files := newTestRunner(t, map[string]string{
			"b.md": "---\npriority: low\n---\n",
		})

		summary := runner.RunRename(files, RenameSpec{
			Fields: []RenameField{{OriginalKey: "status", NewKey: "state", Enabled: true}},
		})

		if summary.Renamed != 0 || summary.Added != 0 {
			t.Errorf("Renamed = %d, Added = %d; want 0, 0", summary.Renamed, summary.Added)
		}
		if got := readFile(t, files[0]); got != "---\npriority: low\n---\n" {
			t.Errorf("b.md changed: %q", got)
		}
	})

	t.Run("disabled and no-op rows skipped", func(t *testing.T) {
		runner, files := newTestRunner(t, map[string]string{
			"a.md": "---\nstatus: draft\n---\n",
		})

		summary := runner.RunRename(files, RenameSpec{Fields: []RenameField{
			{OriginalKey: "status", NewKey: "state", Enabled: false},
			{OriginalKey: "status", NewKey: "status", Enabled: true},
			{OriginalKey: "status", NewKey: "", Enabled: true},
		}})

		if summary.Renamed != 0 {
			t.Errorf("Renamed = %d, want 0", summary.Renamed)
		}
	})
}

func TestRunUpdate(t *testing.T) {
	t.Run("plain update", func(t *testing.T) {
		runner, files := newTestRunner(t, map[string]string{
			"a.md": "---\nstatus: draft\n---\n",
			"b.md": "---\nother: x\n---\n",
		})

		summary := runner.RunUpdate(files, UpdateSpec{Fields: []UpdateField{
			{Key: "status", Value: props.Text("done"), Type: props.TypeText, Enabled: true},
		}})

		if summary.Updated != 1 || summary.Added != 0 {
			t.Errorf("Updated = %d, Added = %d; want 1, 0", summary.Updated, summary.Added)
		}
		if !strings.Contains(readFile(t, files[0]), "status: done") {
			t.Error("value not updated")
		}
		if strings.Contains(readFile(t, files[1]), "status") {
			t.Error("key created without ApplyToMissing")
		}
	})

	t.Run("create missing", func(t *testing.T) {
		runner, files := newTestRunner(t, map[string]string{
			"b.md": "---\nother: x\n---\n",
		})

		summary := runner.RunUpdate(files, UpdateSpec{
			Fields:         []UpdateField{{Key: "status", Value: props.Text("done"), Enabled: true}},
			ApplyToMissing: true,
		})

		if summary.Added != 1 {
			t.Errorf("Added = %d, want 1", summary.Added)
		}
	})

	t.Run("rename and update combined", func(t *testing.T) {
		runner, files := newTestRunner(t, map[string]string{
			"a.md": "---\nstatus: draft\n---\n",
		})

		summary := runner.RunUpdate(files, UpdateSpec{Fields: []UpdateField{
			{Key: "status", NewKey: "state", Value: props.Text("done"), Enabled: true},
		}})

		if summary.Renamed != 1 || summary.Updated != 1 {
			t.Errorf("Renamed = %d, Updated = %d; want 1, 1", summary.Renamed, summary.Updated)
		}
		a := readFile(t, files[0])
		if !strings.Contains(a, "state: done") || strings.Contains(a, "status:") {
			t.Errorf("a.md = %q", a)
		}

		// Applying the same spec again targets the new key.
		again := runner.RunUpdate(files, UpdateSpec{Fields: []UpdateField{
			{Key: "status", NewKey: "state", Value: props.Text("done"), Enabled: true},
		}})
		if again.Renamed != 0 || again.Updated != 1 {
			t.Errorf("again: Renamed = %d, Updated = %d; want 0, 1", again.Renamed, again.Updated)
		}
		if got := readFile(t, files[0]); got != a {
			t.Errorf("second run changed bytes: %q vs %q", got, a)
		}
	})
}

func TestRunContinuesPastFailures(t *testing.T) {
	runner, files := newTestRunner(t, map[string]string{
		"bad.md":  "---\n: : :\n---\n",
		"good.md": "---\nstatus: draft\n---\n",
	})

	summary := runner.RunUpdate(files, UpdateSpec{Fields: []UpdateField{
		{Key: "status", Value: props.Text("done"), Enabled: true},
	}})

	if summary.Failed != 1 {
		t.Errorf("Failed = %d, want 1", summary.Failed)
	}
	if summary.Updated != 1 {
		t.Errorf("Updated = %d, want 1", summary.Updated)
	}
	if !strings.Contains(readFile(t, files[1]), "status: done") {
		t.Error("good file not updated after bad file failed")
	}
}

func TestDryRunCommitsNothing(t *testing.T) {
	runner, files := newTestRunner(t, map[string]string{
		"a.md": "---\nstatus: draft\n---\n",
	})
	runner.DryRun = true

	summary := runner.RunUpdate(files, UpdateSpec{Fields: []UpdateField{
		{Key: "status", Value: props.Text("done"), Enabled: true},
	}})

	if summary.Updated != 1 {
		t.Errorf("Updated = %d, want 1", summary.Updated)
	}
	if got := readFile(t, files[0]); got != "---\nstatus: draft\n---\n" {
		t.Errorf("dry run wrote changes: %q", got)
	}
}

func TestSummaryString(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    string
	}{
		{"empty", Summary{}, "no changes made"},
		{"rename and update", Summary{Renamed: 3, Updated: 5}, "renamed 3, updated 5"},
		{"files affected", Summary{FilesAffected: 2}, "2 files affected"},
		{"single file", Summary{FilesAffected: 1}, "1 file affected"},
		{"with failures", Summary{Updated: 1, Failed: 2}, "updated 1, failed 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.summary.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
