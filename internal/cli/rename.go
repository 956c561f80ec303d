package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magpiemd/magpie/internal/batch"
)

var renameCmd = &cobra.Command{
	Use:   "rename <old=new>... [flags]",
	Short: "Rename property keys across markdown files",
	Long: `Rename changes frontmatter key names across the selected files while
keeping values intact. Files that do not carry the old key are skipped,
unless --create-missing is set, in which case they gain the new key with
an empty value.

When the new key already exists in a file, its value is replaced by the
renamed key's value and the old position is kept.

  mgp rename status=state --folder notes
  mgp rename due=deadline owner=assignee -f projects -r
  mgp rename status=state --create-missing notes/inbox.md`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRename,
}

var (
	renameSelection     fileSelection
	renameDryRun        bool
	renameYes           bool
	renameCreateMissing bool
)

func runRename(cmd *cobra.Command, args []string) error {
	pairArgs, fileArgs := splitAssignmentArgs(args)
	if len(pairArgs) == 0 {
		return handleErrorMsg(ErrMissingArgument, "no renames given", "pass at least one old=new argument")
	}

	spec := batch.RenameSpec{ApplyToMissing: renameCreateMissing}
	seen := map[string]bool{}
	for _, arg := range pairArgs {
		oldKey, newKey, err := parseRenamePair(arg)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		if err := validateKey(oldKey); err != nil {
			return handleError(ErrValidationFailed, err, "")
		}
		if err := validateKey(newKey); err != nil {
			return handleError(ErrValidationFailed, err, "")
		}
		if seen[newKey] {
			return handleErrorMsg(ErrValidationFailed,
				fmt.Sprintf("duplicate rename target '%s'", newKey), "")
		}
		seen[newKey] = true
		spec.Fields = append(spec.Fields, batch.RenameField{
			OriginalKey: oldKey,
			NewKey:      newKey,
			Enabled:     true,
		})
	}

	files, err := resolveFiles(getVaultPath(), fileArgs, renameSelection)
	if err != nil {
		return handleError(ErrFileNotFound, err, "")
	}

	return executeBatch(batchRun{
		Action: "rename",
		Files:  files,
		DryRun: renameDryRun,
		Yes:    renameYes,
		Run: func(r *batch.Runner) *batch.Summary {
			return r.RunRename(files, spec)
		},
	})
}

func parseRenamePair(arg string) (oldKey, newKey string, err error) {
	eq := strings.Index(arg, "=")
	if eq < 0 {
		return "", "", fmt.Errorf("invalid rename '%s': expected old=new", arg)
	}
	oldKey = strings.TrimSpace(arg[:eq])
	newKey = strings.TrimSpace(arg[eq+1:])
	if oldKey == "" || newKey == "" {
		return "", "", fmt.Errorf("invalid rename '%s': both sides must be non-empty", arg)
	}
	if oldKey == newKey {
		return "", "", fmt.Errorf("invalid rename '%s': old and new key are the same", arg)
	}
	return oldKey, newKey, nil
}

func init() {
	registerSelectionFlags(renameCmd.Flags(), &renameSelection)
	renameCmd.Flags().BoolVar(&renameDryRun, "dry-run", false, "Preview changes without writing files")
	renameCmd.Flags().BoolVarP(&renameYes, "yes", "y", false, "Skip the confirmation prompt")
	renameCmd.Flags().BoolVar(&renameCreateMissing, "create-missing", false, "Create the new key with an empty value in files lacking the old key")
	rootCmd.AddCommand(renameCmd)
}
