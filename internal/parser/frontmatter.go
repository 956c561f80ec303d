// Package parser handles reading and rewriting markdown frontmatter.
package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a markdown file split into its frontmatter block and body.
type Document struct {
	// Block holds the parsed frontmatter mapping. Never nil; empty when the
	// file has no frontmatter.
	Block *Block

	// Body is everything after the closing delimiter (or the whole file when
	// no frontmatter is present). Bytes are carried through untouched.
	Body string

	// HasFrontmatter records whether the source file had a frontmatter
	// section, closed or not.
	HasFrontmatter bool
}

// FrontmatterBounds returns the opening and closing frontmatter line indices.
// It only detects frontmatter when the first line is '---'.
// If frontmatter is present but unclosed, endLine is -1.
func FrontmatterBounds(lines []string) (startLine int, endLine int, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return 0, -1, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return 0, i, true
		}
	}

	return 0, -1, true
}

// ParseDocument splits markdown content into frontmatter block and body.
//
// A file without frontmatter (or with an unclosed block) parses as an empty
// block with the full content as body. Malformed YAML inside a closed block
// is an error; callers decide whether that is fatal.
func ParseDocument(content string) (*Document, error) {
	lines := strings.Split(content, "\n")

	_, endLine, ok := FrontmatterBounds(lines)
	if !ok || endLine == -1 {
		return &Document{Block: NewBlock(), Body: content}, nil
	}

	blockContent := strings.Join(lines[1:endLine], "\n")

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(blockContent), &root); err != nil {
		return nil, fmt.Errorf("parse frontmatter as YAML: %w", err)
	}

	block, err := blockFromNode(&root)
	if err != nil {
		return nil, err
	}

	// The body keeps its leading newline so Render reproduces the original
	// bytes exactly.
	body := ""
	if endLine+1 < len(lines) {
		body = "\n" + strings.Join(lines[endLine+1:], "\n")
	}

	return &Document{Block: block, Body: body, HasFrontmatter: true}, nil
}

// Render reassembles the document. An empty block renders without a
// frontmatter section, even if the source had one.
func (d *Document) Render() string {
	if d.Block == nil || d.Block.Len() == 0 {
		if d.HasFrontmatter {
			return strings.TrimPrefix(d.Body, "\n")
		}
		return d.Body
	}

	encoded, err := marshalBlock(d.Block)
	if err != nil {
		// Encoding plain scalars cannot fail; fall back to the body alone
		// rather than emit a half-written block.
		return d.Body
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(encoded)
	sb.WriteString("---")
	if d.Body != "" {
		if !strings.HasPrefix(d.Body, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString(d.Body)
	}
	return sb.String()
}
