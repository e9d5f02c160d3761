// Package markup derives plain text from note content so the content index
// tokenizes prose, not tags.
package markup

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

var (
	htmlTagRegex    = regexp.MustCompile(`<\s*/?\s*[a-zA-Z][^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Plain extracts the searchable plain text of note content. HTML content is
// stripped with a tokenizer walk; everything else is treated as Markdown and
// reduced to its text nodes. Plain never fails: content that resists both
// strategies is returned with whitespace normalized.
func Plain(content string) string {
	if content == "" {
		return ""
	}
	if looksLikeHTML(content) {
		return normalize(stripHTML(content))
	}
	return normalize(markdownText(content))
}

// looksLikeHTML reports whether content contains at least one element tag.
func looksLikeHTML(content string) bool {
	return htmlTagRegex.MatchString(content)
}

// stripHTML walks the token stream and keeps text outside script/style.
func stripHTML(content string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(content))

	var builder strings.Builder
	skipDepth := 0
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return builder.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isSkippedTag(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isSkippedTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				builder.Write(tokenizer.Text())
				builder.WriteByte(' ')
			}
		}
	}
}

func isSkippedTag(name string) bool {
	return name == "script" || name == "style"
}

// markdownText parses content as Markdown and collects its text nodes.
func markdownText(content string) string {
	source := []byte(content)
	md := goldmark.New()
	root := md.Parser().Parse(gmtext.NewReader(source))

	var builder strings.Builder
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindText:
			textNode := n.(*ast.Text)
			builder.Write(textNode.Segment.Value(source))
			builder.WriteByte(' ')
		case ast.KindCodeSpan:
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					builder.Write(t.Segment.Value(source))
					builder.WriteByte(' ')
				}
			}
			return ast.WalkSkipChildren, nil
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				builder.Write(line.Value(source))
			}
			builder.WriteByte(' ')
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return builder.String()
}

// normalize collapses runs of whitespace and trims the result.
func normalize(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
