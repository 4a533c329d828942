package scanner

import (
	"os"
	"strings"

	goslug "github.com/gosimple/slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/mlanders/sextant/internal/registry"
)

// scanCommandDoc extracts command declarations from a *.commands.md file.
//
// Each level-2 heading declares a command; the first paragraph following the
// heading (before the next heading) is its description.
func (s *WorkspaceScanner) scanCommandDoc(path, rel string) ([]registry.Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))
	lineStarts := computeLineStarts(content)

	var entries []registry.Entry

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 2 {
			return ast.WalkContinue, nil
		}

		name := strings.TrimSpace(nodeText(heading, content))
		if name == "" {
			return ast.WalkSkipChildren, nil
		}

		line := 0
		if heading.Lines().Len() > 0 {
			line = offsetToLine(lineStarts, heading.Lines().At(0).Start)
		}

		entries = append(entries, registry.Entry{
			Function:    name,
			Description: followingParagraph(heading, content),
			Slug:        goslug.Make(name),
			File:        rel,
			Line:        line,
		})

		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// followingParagraph returns the text of the first paragraph after a heading,
// stopping at the next heading.
func followingParagraph(heading *ast.Heading, content []byte) string {
	for sib := heading.NextSibling(); sib != nil; sib = sib.NextSibling() {
		switch node := sib.(type) {
		case *ast.Heading:
			return ""
		case *ast.Paragraph:
			return strings.TrimSpace(nodeText(node, content))
		}
	}
	return ""
}

// nodeText concatenates the text children of a node.
// Goldmark splits text at inline syntax, so all text nodes are collected.
func nodeText(n ast.Node, content []byte) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if tn, ok := child.(*ast.Text); ok {
			b.Write(tn.Segment.Value(content))
		}
	}
	return b.String()
}

// computeLineStarts returns the byte offset of each line start.
func computeLineStarts(content []byte) []int {
	starts := []int{0}
	for i, c := range content {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// offsetToLine converts a byte offset to a 1-indexed line number.
func offsetToLine(lineStarts []int, offset int) int {
	line := 1
	for i, start := range lineStarts {
		if offset < start {
			break
		}
		line = i + 1
	}
	return line
}
