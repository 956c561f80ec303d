package ui

import (
	"strings"
	"testing"
)

func TestRenderMarkdownNormalizesTrailingNewline(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown("# Heading", 80)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected rendered markdown to end with newline, got %q", out)
	}
	if strings.HasSuffix(out, "\n\n") {
		t.Fatalf("expected single trailing newline, got %q", out)
	}
}

func TestRenderMarkdownDefaultsWidthWhenNonPositive(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown("hello", 0)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatalf("expected non-empty rendered output")
	}
}

func TestConfigureTheme(t *testing.T) {
	original := AccentColor()
	defer ConfigureTheme(original)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "hex", input: "#7aa2f7", expected: "#7aa2f7"},
		{name: "ansi code", input: "39", expected: "39"},
		{name: "bad string keeps previous", input: "blue", expected: "39"},
		{name: "empty keeps previous", input: "", expected: "39"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ConfigureTheme(tt.input)
			if got := AccentColor(); got != tt.expected {
				t.Fatalf("expected accent %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTableAlignsColumns(t *testing.T) {
	tbl := NewTable(3)
	tbl.AddRow("status", "2 distinct", "text, checkbox")
	tbl.AddRow("due", "1 distinct", "date")

	out := tbl.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "status  2 distinct") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "due     1 distinct") {
		t.Errorf("columns not aligned: %q", lines[1])
	}
	if strings.HasSuffix(lines[1], " ") {
		t.Errorf("last column should not be padded: %q", lines[1])
	}
}

func TestTableEmpty(t *testing.T) {
	if out := NewTable(2).String(); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
