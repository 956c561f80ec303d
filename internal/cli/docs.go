package cli

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/magpiemd/magpie/docs"
	"github.com/magpiemd/magpie/internal/parser"
	"github.com/magpiemd/magpie/internal/ui"
)

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Read the bundled documentation",
	Long: `Docs lists the guide topics bundled with the binary, or renders one
topic for the terminal.

  mgp docs
  mgp docs getting-started`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocs,
}

// docTopic is one bundled documentation page.
type docTopic struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

func runDocs(cmd *cobra.Command, args []string) error {
	topics, err := listDocTopics()
	if err != nil {
		return handleError(ErrInternal, err, "")
	}

	if len(args) == 0 {
		if isJSONOutput() {
			outputSuccess(topics, &Meta{Count: len(topics)})
			return nil
		}
		tbl := ui.NewTable(2)
		for _, t := range topics {
			tbl.AddRow(ui.Key(t.Slug), t.Title)
		}
		fmt.Print(tbl.String())
		fmt.Println(ui.Hint("run 'mgp docs <topic>' to read one"))
		return nil
	}

	slug := strings.TrimSuffix(args[0], ".md")
	content, err := fs.ReadFile(builtindocs.FS, path.Join("guide", slug+".md"))
	if err != nil {
		return handleErrorMsg(ErrFileNotFound,
			fmt.Sprintf("no docs topic '%s'", slug), "run 'mgp docs' to list topics")
	}

	if isJSONOutput() {
		outputSuccess(map[string]string{"slug": slug, "content": string(content)}, nil)
		return nil
	}

	display := ui.NewDisplayContext()
	rendered, err := ui.RenderMarkdown(string(content), display.TermWidth)
	if err != nil {
		fmt.Print(string(content))
		return nil
	}
	fmt.Print(rendered)
	return nil
}

func listDocTopics() ([]docTopic, error) {
	entries, err := fs.ReadDir(builtindocs.FS, "guide")
	if err != nil {
		return nil, err
	}

	topics := make([]docTopic, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		content, err := fs.ReadFile(builtindocs.FS, path.Join("guide", entry.Name()))
		if err != nil {
			return nil, err
		}
		topics = append(topics, docTopic{
			Slug:  strings.TrimSuffix(entry.Name(), ".md"),
			Title: parser.ExtractTitle(string(content)),
		})
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Slug < topics[j].Slug })
	return topics, nil
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
