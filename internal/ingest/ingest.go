package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// maxJDBytes caps what is read from a single source.
const maxJDBytes = 1 << 20

// ErrTooLarge is returned for input longer than maxJDBytes.
var ErrTooLarge = errors.New("job description exceeds 1 MiB")

var (
	inlineSpace = regexp.MustCompile(`[ \t\f\r]+`)
	blankLines  = regexp.MustCompile(`\n{3,}`)
)

// ReadJD reads a job description from path, or from stdin when path is "-".
// HTML input is reduced to its visible text.
func ReadJD(path string, stdin io.Reader) (string, error) {
	var r io.Reader
	if path == Stdin {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("opening job description: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, maxJDBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading job description: %w", err)
	}
	if len(data) > maxJDBytes {
		return "", ErrTooLarge
	}

	text := string(data)
	if isHTML(path, text) {
		return HTMLToText(text)
	}
	return strings.TrimSpace(text), nil
}

func isHTML(path, text string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return strings.HasPrefix(strings.TrimSpace(text), "<")
}

// HTMLToText strips markup from a job posting. Scripts, styles and page
// chrome are dropped; block elements become line breaks.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, li, div, h1, h2, h3, h4, h5, h6, tr, section, article").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}
	return cleanWhitespace(root.Text()), nil
}

func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
