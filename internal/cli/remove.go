package cli

import (
	"github.com/spf13/cobra"

	"github.com/magpiemd/magpie/internal/batch"
)

var removeCmd = &cobra.Command{
	Use:   "remove <key>... [flags]",
	Short: "Remove properties from markdown files",
	Long: `Remove deletes frontmatter keys from the selected files. Files that do
not carry a key are skipped silently. A file whose frontmatter ends up
empty loses the frontmatter section entirely.

  mgp remove status --folder notes
  mgp remove draft legacy-id -f projects -r
  mgp remove status notes/inbox.md`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

var (
	removeSelection fileSelection
	removeDryRun    bool
	removeYes       bool
)

func runRemove(cmd *cobra.Command, args []string) error {
	// Keys never contain path separators or extensions; anything that looks
	// like a file path is treated as a file ref.
	var keys, fileArgs []string
	for _, arg := range args {
		if looksLikeFileRef(arg) {
			fileArgs = append(fileArgs, arg)
		} else {
			keys = append(keys, arg)
		}
	}
	if len(keys) == 0 {
		return handleErrorMsg(ErrMissingArgument, "no keys given", "pass at least one property key to remove")
	}

	for _, key := range keys {
		if err := validateKey(key); err != nil {
			return handleError(ErrValidationFailed, err, "")
		}
	}

	files, err := resolveFiles(getVaultPath(), fileArgs, removeSelection)
	if err != nil {
		return handleError(ErrFileNotFound, err, "")
	}

	spec := batch.RemoveSpec{Keys: keys}
	return executeBatch(batchRun{
		Action: "remove",
		Files:  files,
		DryRun: removeDryRun,
		Yes:    removeYes,
		Run: func(r *batch.Runner) *batch.Summary {
			return r.RunRemove(files, spec)
		},
	})
}

func looksLikeFileRef(arg string) bool {
	for i := 0; i < len(arg); i++ {
		if arg[i] == '/' {
			return true
		}
	}
	return len(arg) > 3 && arg[len(arg)-3:] == ".md"
}

func init() {
	registerSelectionFlags(removeCmd.Flags(), &removeSelection)
	removeCmd.Flags().BoolVar(&removeDryRun, "dry-run", false, "Preview changes without writing files")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}
