package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magpiemd/magpie/internal/batch"
	"github.com/magpiemd/magpie/internal/props"
	"github.com/magpiemd/magpie/internal/ui"
	"github.com/magpiemd/magpie/internal/vault"
)

var propsCmd = &cobra.Command{
	Use:   "props [file]... [flags]",
	Short: "List the properties found across markdown files",
	Long: `Props aggregates frontmatter across the selected files: every key with
its distinct values and the value types observed. The reserved 'tags'
key is excluded.

  mgp props --folder notes
  mgp props -f projects -r
  mgp props notes/inbox.md`,
	RunE: runProps,
}

var propsSelection fileSelection

// aggregatedData is the JSON payload for one aggregated property.
type aggregatedData struct {
	Key    string        `json:"key"`
	Values []interface{} `json:"values"`
	Types  []string      `json:"types"`
}

func runProps(cmd *cobra.Command, args []string) error {
	root := getVaultPath()
	files, err := resolveFiles(root, args, propsSelection)
	if err != nil {
		return handleError(ErrFileNotFound, err, "")
	}
	if len(files) == 0 {
		return handleErrorMsg(ErrEmptySelection, "no markdown files selected", "pass file arguments or use --folder/--stdin")
	}

	store := vault.NewStore(root)
	aggregated := batch.Aggregate(store, files)
	keys := batch.SortedKeys(aggregated)

	if isJSONOutput() {
		data := make([]aggregatedData, 0, len(keys))
		for _, key := range keys {
			agg := aggregated[key]
			item := aggregatedData{Key: key}
			for _, v := range agg.Values {
				item.Values = append(item.Values, v.Raw())
			}
			for _, t := range agg.Types {
				item.Types = append(item.Types, string(t))
			}
			data = append(data, item)
		}
		outputSuccess(data, &Meta{Count: len(keys)})
		return nil
	}

	if len(keys) == 0 {
		fmt.Println("no properties found")
		return nil
	}

	tbl := ui.NewTable(3)
	for _, key := range keys {
		agg := aggregated[key]
		tbl.AddRow(ui.Key(key), formatValues(agg.Values), formatTypes(agg.Types))
	}
	fmt.Print(tbl.String())
	return nil
}

// formatValues renders distinct values compactly, truncating long sets.
func formatValues(values []props.Value) string {
	const maxShown = 5
	shown := values
	extra := 0
	if len(shown) > maxShown {
		extra = len(shown) - maxShown
		shown = shown[:maxShown]
	}
	parts := make([]string, 0, len(shown)+1)
	for _, v := range shown {
		parts = append(parts, v.String())
	}
	if extra > 0 {
		parts = append(parts, fmt.Sprintf("(+%d more)", extra))
	}
	return strings.Join(parts, ", ")
}

func formatTypes(types []props.Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func init() {
	registerSelectionFlags(propsCmd.Flags(), &propsSelection)
	rootCmd.AddCommand(propsCmd)
}
