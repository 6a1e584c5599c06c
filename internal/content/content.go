// Package content renders document body text for the output
// artifacts.
package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/k3a/html2text"
	"github.com/yuin/goldmark"
)

var renderer = goldmark.New()

// HTML renders markdown to HTML. Blank input yields an empty string.
func HTML(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Plaintext renders markdown to plain text, for search documents.
// Blank input yields an empty string.
func Plaintext(markdown string) (string, error) {
	html, err := HTML(markdown)
	if err != nil {
		return "", err
	}
	if html == "" {
		return "", nil
	}
	return strings.TrimSpace(html2text.HTML2Text(html)), nil
}
