package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/magpiemd/magpie/internal/batch"
)

var updateCmd = &cobra.Command{
	Use:   "update <key[->new][:type]=value>... [flags]",
	Short: "Update property values across markdown files",
	Long: `Update replaces frontmatter values across the selected files. Files that
do not carry a key are skipped, unless --create-missing is set, in which
case the key is added with the new value.

A key can be renamed in the same pass with the old->new form; the value
then lands under the new name:

  mgp update status=active --folder notes
  mgp update status->state=active -f projects -r
  mgp update priority:number=2 --create-missing notes/inbox.md`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpdate,
}

var (
	updateSelection     fileSelection
	updateDryRun        bool
	updateYes           bool
	updateCreateMissing bool
)

func runUpdate(cmd *cobra.Command, args []string) error {
	fieldArgs, fileArgs := splitAssignmentArgs(args)
	if len(fieldArgs) == 0 {
		return handleErrorMsg(ErrMissingArgument, "no updates given", "pass at least one key=value argument")
	}

	spec := batch.UpdateSpec{ApplyToMissing: updateCreateMissing}
	for _, arg := range fieldArgs {
		field, err := parseUpdateField(arg)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		spec.Fields = append(spec.Fields, field)
	}

	files, err := resolveFiles(getVaultPath(), fileArgs, updateSelection)
	if err != nil {
		return handleError(ErrFileNotFound, err, "")
	}

	return executeBatch(batchRun{
		Action: "update",
		Files:  files,
		DryRun: updateDryRun,
		Yes:    updateYes,
		Run: func(r *batch.Runner) *batch.Summary {
			return r.RunUpdate(files, spec)
		},
	})
}

// parseUpdateField parses one key[->new][:type]=value argument.
func parseUpdateField(arg string) (batch.UpdateField, error) {
	a, err := parseAssignment(arg)
	if err != nil {
		return batch.UpdateField{}, err
	}

	field := batch.UpdateField{
		Key:     a.Key,
		Value:   a.Value,
		Type:    a.Type,
		Enabled: true,
	}
	if arrow := strings.Index(a.Key, "->"); arrow >= 0 {
		field.Key = strings.TrimSpace(a.Key[:arrow])
		field.NewKey = strings.TrimSpace(a.Key[arrow+2:])
	}

	if err := validateKey(field.Key); err != nil {
		return batch.UpdateField{}, err
	}
	if field.NewKey != "" {
		if err := validateKey(field.NewKey); err != nil {
			return batch.UpdateField{}, err
		}
	}
	return field, nil
}

func init() {
	registerSelectionFlags(updateCmd.Flags(), &updateSelection)
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "Preview changes without writing files")
	updateCmd.Flags().BoolVarP(&updateYes, "yes", "y", false, "Skip the confirmation prompt")
	updateCmd.Flags().BoolVar(&updateCreateMissing, "create-missing", false, "Add the key with the new value to files lacking it")
	rootCmd.AddCommand(updateCmd)
}
