// Package prompts loads sweep prompts from files. Markdown files are
// walked with goldmark so prompts can be kept as list items, paragraphs or
// fenced code blocks; anything else is read as one prompt per non-blank
// line.
package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FromFile reads prompts from path, dispatching on the file extension.
func FromFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prompts file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".mdx":
		return FromMarkdown(data), nil
	default:
		return fromLines(data), nil
	}
}

// FromMarkdown extracts prompt candidates from markdown source: top-level
// list items, paragraphs and fenced code blocks, in document order.
// Headings and blank segments are dropped.
func FromMarkdown(source []byte) []string {
	md := goldmark.New()
	reader := text.NewReader(source)
	doc := md.Parser().Parse(reader)

	var out []string
	seenInList := map[ast.Node]bool{}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.ListItem:
			if p := blockText(v, source); p != "" {
				out = append(out, p)
			}
			// The item's paragraph children are already covered.
			for c := v.FirstChild(); c != nil; c = c.NextSibling() {
				seenInList[c] = true
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if seenInList[v] {
				return ast.WalkContinue, nil
			}
			if p := blockText(v, source); p != "" {
				out = append(out, p)
			}
		case *ast.FencedCodeBlock:
			var b strings.Builder
			for i := 0; i < v.Lines().Len(); i++ {
				line := v.Lines().At(i)
				b.Write(line.Value(source))
			}
			if p := strings.TrimSpace(b.String()); p != "" {
				out = append(out, p)
			}
		}
		return ast.WalkContinue, nil
	})
	return out
}

// blockText collects the plain text of a block node, joining soft-wrapped
// lines with spaces.
func blockText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func fromLines(data []byte) []string {
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}
