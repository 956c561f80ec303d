package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/magpiemd/magpie/internal/parser"
	"github.com/magpiemd/magpie/internal/ui"
	"github.com/magpiemd/magpie/internal/vault"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show a file's properties and rendered body",
	Long: `Show prints one file's frontmatter properties followed by its body,
rendered for the terminal. The file argument accepts a vault-relative
path, with or without the .md extension, or a slug.

  mgp show notes/inbox.md
  mgp show project-kickoff`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showRaw bool

// showData is the JSON payload for a single document.
type showData struct {
	Path       string                 `json:"path"`
	Title      string                 `json:"title,omitempty"`
	Properties map[string]interface{} `json:"properties"`
	Keys       []string               `json:"keys"`
	Body       string                 `json:"body"`
}

func runShow(cmd *cobra.Command, args []string) error {
	root := getVaultPath()
	path, err := vault.ResolveFile(root, args[0])
	if err != nil {
		return handleError(ErrFileNotFound, err, "")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}
	doc, err := parser.ParseDocument(string(content))
	if err != nil {
		return handleError(ErrInvalidInput, fmt.Errorf("%s: %w", relPath(root, path), err), "")
	}

	title := parser.ExtractTitle(doc.Body)

	if isJSONOutput() {
		data := showData{
			Path:       relPath(root, path),
			Title:      title,
			Properties: map[string]interface{}{},
			Keys:       doc.Block.Keys(),
			Body:       doc.Body,
		}
		for _, key := range doc.Block.Keys() {
			if v, ok := doc.Block.Get(key); ok {
				data.Properties[key] = v.Raw()
			}
		}
		outputSuccess(data, nil)
		return nil
	}

	fmt.Println(ui.Path(relPath(root, path)))
	if doc.Block.Len() > 0 {
		tbl := ui.NewTable(2)
		for _, key := range doc.Block.Keys() {
			if v, ok := doc.Block.Get(key); ok {
				tbl.AddRow(ui.Key(key), v.String())
			}
		}
		fmt.Print(tbl.String())
	}

	if showRaw {
		fmt.Print(doc.Body)
		return nil
	}

	display := ui.NewDisplayContext()
	rendered, err := ui.RenderMarkdown(doc.Body, display.TermWidth)
	if err != nil {
		// Fall back to the raw body when rendering fails.
		fmt.Print(doc.Body)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the body without terminal rendering")
	rootCmd.AddCommand(showCmd)
}
