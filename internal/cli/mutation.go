package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/magpiemd/magpie/internal/batch"
	"github.com/magpiemd/magpie/internal/history"
	"github.com/magpiemd/magpie/internal/props"
	"github.com/magpiemd/magpie/internal/ui"
	"github.com/magpiemd/magpie/internal/vault"
)

// assignment is one parsed key[:type]=value argument.
type assignment struct {
	Key     string
	Type    props.Type
	HasType bool
	Value   props.Value
}

// parseAssignment parses a key[:type]=value argument. Without an explicit
// type the value's type is inferred from its literal shape.
func parseAssignment(arg string) (assignment, error) {
	eq := strings.Index(arg, "=")
	if eq < 0 {
		return assignment{}, fmt.Errorf("invalid property '%s': expected key=value or key:type=value", arg)
	}
	keyPart := strings.TrimSpace(arg[:eq])
	rawValue := arg[eq+1:]

	a := assignment{}
	if colon := strings.Index(keyPart, ":"); colon >= 0 {
		typeName := strings.TrimSpace(keyPart[colon+1:])
		t, ok := props.ParseType(typeName)
		if !ok {
			return assignment{}, fmt.Errorf("unknown type '%s': expected one of %s", typeName, strings.Join(typeNames(), ", "))
		}
		a.Type = t
		a.HasType = true
		keyPart = strings.TrimSpace(keyPart[:colon])
	}

	if keyPart == "" {
		return assignment{}, fmt.Errorf("invalid property '%s': empty key", arg)
	}
	a.Key = keyPart

	if a.HasType {
		a.Value = props.CodecFor(a.Type).Decode(rawValue)
	} else {
		a.Value = props.DecodeLiteral(rawValue)
		a.Type = props.Infer(a.Value)
	}
	return a, nil
}

func typeNames() []string {
	names := make([]string, len(props.AllTypes))
	for i, t := range props.AllTypes {
		names[i] = string(t)
	}
	return names
}

// validateKey rejects keys the edit commands must never touch.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("property key cannot be empty")
	}
	if key == batch.ReservedKey {
		return fmt.Errorf("'%s' is a reserved key and cannot be edited", batch.ReservedKey)
	}
	return nil
}

// newBatchLogger returns the logger batch runners report per-file failures to.
func newBatchLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
}

// batchRun drives one edit command end to end: selection checks, optional
// confirmation, the batch itself, history recording, and output.
type batchRun struct {
	Action string
	Files  []string
	DryRun bool
	Yes    bool
	Run    func(r *batch.Runner) *batch.Summary
}

func executeBatch(br batchRun) error {
	if len(br.Files) == 0 {
		return handleErrorMsg(ErrEmptySelection, "no markdown files selected", "pass file arguments or use --folder/--stdin")
	}

	root := getVaultPath()
	runner := batch.NewRunner(vault.NewStore(root), newBatchLogger())
	runner.DryRun = br.DryRun

	if !br.DryRun && !br.Yes {
		prompt := fmt.Sprintf("Apply %s to %d file(s)?", br.Action, len(br.Files))
		if !promptForConfirm(prompt) {
			if !isJSONOutput() {
				fmt.Println("Aborted.")
			}
			return nil
		}
	}

	summary := br.Run(runner)

	var warnings []Warning
	if !br.DryRun && summary.String() != "no changes made" {
		if err := recordHistory(root, br.Action, summary, len(br.Files)); err != nil {
			warnings = append(warnings, Warning{
				Code:    ErrDatabaseError,
				Message: fmt.Sprintf("failed to record history: %v", err),
			})
		}
	}

	return outputSummary(br, summary, warnings)
}

func recordHistory(root, action string, summary *batch.Summary, fileCount int) error {
	hlog, err := history.Open(root)
	if err != nil {
		return err
	}
	defer hlog.Close()
	return hlog.Record(action, summary.String(), fileCount)
}

// summaryData is the JSON payload for a completed batch run.
type summaryData struct {
	Action        string           `json:"action"`
	DryRun        bool             `json:"dry_run,omitempty"`
	Summary       string           `json:"summary"`
	FilesAffected int              `json:"files_affected"`
	Renamed       int              `json:"renamed"`
	Updated       int              `json:"updated"`
	Added         int              `json:"added"`
	Failed        int              `json:"failed"`
	Results       []fileResultData `json:"results,omitempty"`
}

type fileResultData struct {
	Path    string `json:"path"`
	Changes int    `json:"changes"`
	Error   string `json:"error,omitempty"`
}

func outputSummary(br batchRun, summary *batch.Summary, warnings []Warning) error {
	root := getVaultPath()

	if isJSONOutput() {
		data := summaryData{
			Action:        br.Action,
			DryRun:        br.DryRun,
			Summary:       summary.String(),
			FilesAffected: summary.FilesAffected,
			Renamed:       summary.Renamed,
			Updated:       summary.Updated,
			Added:         summary.Added,
			Failed:        summary.Failed,
		}
		for _, res := range summary.Results {
			rd := fileResultData{Path: relPath(root, res.Path), Changes: res.Changes}
			if res.Err != nil {
				rd.Error = res.Err.Error()
			}
			data.Results = append(data.Results, rd)
		}
		outputSuccessWithWarnings(data, warnings, &Meta{Count: len(br.Files)})
		return nil
	}

	line := summary.String()
	if summary.Failed > 0 {
		fmt.Println(ui.Warning(line))
	} else if line == "no changes made" {
		fmt.Println(line)
	} else {
		fmt.Println(ui.Success(line))
	}
	if br.DryRun {
		for _, res := range summary.Results {
			if res.Changes > 0 {
				fmt.Printf("  %s  %d change(s)\n", ui.Path(relPath(root, res.Path)), res.Changes)
			}
		}
		fmt.Println(ui.Hint("dry run: no files were written"))
	}
	for _, w := range warnings {
		fmt.Println(ui.Warning(w.Message))
	}
	return nil
}

func relPath(root, path string) string {
	rel := relPaths(root, []string{path})
	return rel[0]
}
