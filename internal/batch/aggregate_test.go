package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/magpiemd/magpie/internal/props"
	"github.com/magpiemd/magpie/internal/vault"
)

func tempVault(t *testing.T, files map[string]string) (*vault.Store, []string) {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	// Deterministic file order for assertions.
	listed, err := vault.ListFiles(root, true, vault.UnlimitedDepth)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	return vault.NewStore(root), listed
}

func TestAggregate(t *testing.T) {
	store, files := tempVault(t, map[string]string{
		"a.md": "---\nstatus: draft\ncount: 1\n---\n",
		"b.md": "---\nstatus: final\ncount: one\ntags:\n  - x\n---\n",
		"c.md": "no frontmatter\n",
		"d.md": "---\nstatus: draft\n---\n",
	})

	agg := Aggregate(store, files)

	t.Run("distinct values per key", func(t *testing.T) {
		status := agg["status"]
		if status == nil {
			t.Fatal("status missing")
		}
		want := []props.Value{props.Text("draft"), props.Text("final")}
		if !reflect.DeepEqual(status.Values, want) {
			t.Errorf("Values = %v, want %v", status.Values, want)
		}
		if !reflect.DeepEqual(status.Types, []props.Type{props.TypeText}) {
			t.Errorf("Types = %v", status.Types)
		}
	})

	t.Run("heterogeneous types recorded", func(t *testing.T) {
		count := agg["count"]
		if count == nil {
			t.Fatal("count missing")
		}
		if !count.HasType(props.TypeNumber) || !count.HasType(props.TypeText) {
			t.Errorf("Types = %v, want number and text", count.Types)
		}
	})

	t.Run("reserved key excluded", func(t *testing.T) {
		if _, ok := agg["tags"]; ok {
			t.Error("tags should never be aggregated")
		}
	})

	t.Run("sorted keys", func(t *testing.T) {
		want := []string{"count", "status"}
		if got := SortedKeys(agg); !reflect.DeepEqual(got, want) {
			t.Errorf("SortedKeys = %v, want %v", got, want)
		}
	})
}

func TestAggregateContentIgnoresFileOrder(t *testing.T) {
	store, files := tempVault(t, map[string]string{
		"a.md": "---\nk: 1\n---\n",
		"b.md": "---\nk: 2\n---\n",
	})

	forward := Aggregate(store, files)
	reversed := Aggregate(store, []string{files[1], files[0]})

	f, r := forward["k"], reversed["k"]
	if len(f.Values) != len(r.Values) {
		t.Fatalf("value counts differ: %d vs %d", len(f.Values), len(r.Values))
	}
	for _, v := range f.Values {
		found := false
		for _, w := range r.Values {
			if v.Equal(w) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("value %v missing after reorder", v)
		}
	}
}

func TestAggregateSkipsUnreadableFiles(t *testing.T) {
	store, files := tempVault(t, map[string]string{
		"good.md": "---\nk: v\n---\n",
	})
	withMissing := append([]string{filepath.Join(store.Root, "gone.md")}, files...)

	agg := Aggregate(store, withMissing)
	if agg["k"] == nil {
		t.Error("scan aborted on unreadable file")
	}
}
