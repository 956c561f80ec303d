package batch

import (
	"github.com/charmbracelet/log"

	"github.com/magpiemd/magpie/internal/parser"
	"github.com/magpiemd/magpie/internal/props"
	"github.com/magpiemd/magpie/internal/vault"
)

// Runner applies one edit spec across a file list, one document transaction
// at a time, and tallies per-outcome counters.
//
// Per-file failures are absorbed: the failure is logged with the document's
// path, counted as zero effect for that document, and the batch continues.
type Runner struct {
	store  *vault.Store
	logger *log.Logger

	// DryRun applies every mutation to an in-memory copy and commits
	// nothing; counters and results are tallied as if it had run.
	DryRun bool
}

// NewRunner creates a runner over the given store. A nil logger falls back
// to the package default.
func NewRunner(store *vault.Store, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{store: store, logger: logger}
}

// RunAdd applies an add spec to every file. FilesAffected counts files
// where at least one key was inserted.
func (r *Runner) RunAdd(files []string, spec AddSpec) *Summary {
	toAdd := spec.sortedProps()
	summary := &Summary{}

	for _, file := range files {
		added := 0
		err := r.transact(file, func(block *parser.Block) error {
			added = Add(block, toAdd)
			return nil
		})
		r.record(summary, file, added, err)
		if err == nil && added > 0 {
			summary.FilesAffected++
		}
	}
	return summary
}

// RunRemove applies a remove spec to every file. FilesAffected counts files
// where at least one key was deleted.
func (r *Runner) RunRemove(files []string, spec RemoveSpec) *Summary {
	keys := spec.sortedKeys()
	summary := &Summary{}

	for _, file := range files {
		removed := 0
		err := r.transact(file, func(block *parser.Block) error {
			removed = Remove(block, keys)
			return nil
		})
		r.record(summary, file, removed, err)
		if err == nil && removed > 0 {
			summary.FilesAffected++
		}
	}
	return summary
}

// RunRename applies rename rows to every file. Renamed counts key-file
// rename events; Added counts keys created in files that lacked the
// original when ApplyToMissing is set.
func (r *Runner) RunRename(files []string, spec RenameSpec) *Summary {
	fields := spec.activeFields()
	summary := &Summary{}

	for _, file := range files {
		renamed, added := 0, 0
		err := r.transact(file, func(block *parser.Block) error {
			for _, f := range fields {
				if RenameKey(block, f.OriginalKey, f.NewKey) {
					renamed++
					continue
				}
				if spec.ApplyToMissing && !block.Has(f.NewKey) {
					block.Set(f.NewKey, props.Text(""))
					added++
				}
			}
			return nil
		})
		r.record(summary, file, renamed+added, err)
		if err == nil {
			summary.Renamed += renamed
			summary.Added += added
		}
	}
	return summary
}

// RunUpdate applies update rows to every file. A row carrying a rename
// renames first; the value update then targets the new key name.
func (r *Runner) RunUpdate(files []string, spec UpdateSpec) *Summary {
	fields := spec.activeFields()
	summary := &Summary{}

	for _, file := range files {
		renamed, updated, added := 0, 0, 0
		err := r.transact(file, func(block *parser.Block) error {
			for _, f := range fields {
				target := f.Key
				if f.NewKey != "" && f.NewKey != f.Key {
					if RenameKey(block, f.Key, f.NewKey) {
						renamed++
					}
					target = f.NewKey
				}
				switch UpdateValue(block, target, f.Value, spec.ApplyToMissing) {
				case Updated:
					updated++
				case Added:
					added++
				}
			}
			return nil
		})
		r.record(summary, file, renamed+updated+added, err)
		if err == nil {
			summary.Renamed += renamed
			summary.Updated += updated
			summary.Added += added
		}
	}
	return summary
}

// transact runs the mutator through the store, or against a throwaway copy
// of the block when DryRun is set.
func (r *Runner) transact(file string, mutator func(*parser.Block) error) error {
	if r.DryRun {
		block := r.store.ReadBlock(file).Clone()
		return mutator(block)
	}
	return r.store.Transact(file, mutator)
}

func (r *Runner) record(summary *Summary, file string, changes int, err error) {
	if err != nil {
		r.logger.Error("skipping document", "path", file, "err", err)
		summary.Failed++
		summary.Results = append(summary.Results, FileResult{Path: file, Err: err})
		return
	}
	summary.Results = append(summary.Results, FileResult{Path: file, Changes: changes})
}
