package cli

import (
	"github.com/spf13/cobra"

	"github.com/magpiemd/magpie/internal/batch"
)

var addCmd = &cobra.Command{
	Use:   "add <key[:type]=value>... [flags]",
	Short: "Add properties to markdown files that lack them",
	Long: `Add inserts frontmatter properties into the selected files. Files that
already carry a key keep their existing value; only missing keys are
inserted.

Values are typed by literal shape (true/false, numbers, YYYY-MM-DD dates,
[a, b] lists) unless an explicit type is given:

  mgp add status=draft --folder notes
  mgp add priority:number=1 due:date=2026-09-15 -f projects -r
  mgp add reviewed:checkbox=false notes/inbox.md`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addSelection fileSelection
	addDryRun    bool
	addYes       bool
)

func runAdd(cmd *cobra.Command, args []string) error {
	// Split prop assignments from file refs: anything with '=' is a prop.
	propArgs, fileArgs := splitAssignmentArgs(args)
	if len(propArgs) == 0 {
		return handleErrorMsg(ErrMissingArgument, "no properties given", "pass at least one key=value argument")
	}

	spec := batch.AddSpec{}
	for _, arg := range propArgs {
		a, err := parseAssignment(arg)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		if err := validateKey(a.Key); err != nil {
			return handleError(ErrValidationFailed, err, "")
		}
		spec.Props = append(spec.Props, batch.AddProp{Key: a.Key, Value: a.Value, Type: a.Type})
	}

	files, err := resolveFiles(getVaultPath(), fileArgs, addSelection)
	if err != nil {
		return handleError(ErrFileNotFound, err, "")
	}

	return executeBatch(batchRun{
		Action: "add",
		Files:  files,
		DryRun: addDryRun,
		Yes:    addYes,
		Run: func(r *batch.Runner) *batch.Summary {
			return r.RunAdd(files, spec)
		},
	})
}

// splitAssignmentArgs separates key=value arguments from bare file refs.
func splitAssignmentArgs(args []string) (assignments []string, files []string) {
	for _, arg := range args {
		if containsAssignment(arg) {
			assignments = append(assignments, arg)
		} else {
			files = append(files, arg)
		}
	}
	return assignments, files
}

func containsAssignment(arg string) bool {
	for i := 0; i < len(arg); i++ {
		if arg[i] == '=' {
			return true
		}
	}
	return false
}

func init() {
	registerSelectionFlags(addCmd.Flags(), &addSelection)
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Preview changes without writing files")
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(addCmd)
}
