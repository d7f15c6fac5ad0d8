package assistant

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var (
	sanitizeBulletRe = regexp.MustCompile(`(?m)^[ \t]*[*\-+][ \t]+`)
	sanitizeBoldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	newlineRunRe     = regexp.MustCompile(`\n+`)

	htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))
)

// Sanitize turns a markdown reply into display text. Bold segments get their own
// lines, italic segments and list items become "• " bullets and remaining
// asterisks are dropped. Other punctuation, pipes included, is left alone.
func Sanitize(reply string) string {
	s := strings.ReplaceAll(reply, "\r\n", "\n")
	s = sanitizeBulletRe.ReplaceAllString(s, "• ")
	s = sanitizeBoldRe.ReplaceAllString(s, "\n\n$1\n\n")
	s = italicRe.ReplaceAllString(s, "\n• $1")
	s = strings.ReplaceAll(s, "*", "")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
		// a bullet whose whole text was italic is left empty
		if lines[i] == "•" {
			lines[i] = ""
		}
	}
	s = newlineRunRe.ReplaceAllString(strings.Join(lines, "\n"), "\n")

	return strings.TrimSpace(s)
}

// SpeechText flattens markdown into plain lines suitable for speech synthesis
func SpeechText(markdown string) string {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.HardLineBreak() {
					b.WriteByte('\n')
				} else if node.SoftLineBreak() {
					b.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				b.Write(node.Label(source))
			}
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					b.Write(seg.Value(source))
				}
				b.WriteByte('\n')
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock, *ast.ListItem, *ast.ThematicBreak:
			if !entering {
				b.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})

	var out []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// RenderHTML renders a markdown reply as HTML. Raw HTML in the reply is escaped.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
