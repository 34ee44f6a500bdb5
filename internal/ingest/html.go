package ingest

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/baseballlmb/rostermatch/internal/roster"
)

// loadHTML turns every <table> in the page into a grid. Pages without
// tables degrade to their visible text lines.
func loadHTML(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open html: %w", err)
	}
	defer func() { _ = f.Close() }()

	root, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &Document{}
	for i, table := range findNodes(root, "table") {
		grid := tableGrid(table)
		if len(grid) > 0 {
			doc.Sheets = append(doc.Sheets, Sheet{Name: fmt.Sprintf("table-%d", i+1), Grid: grid})
		}
	}
	if len(doc.Sheets) == 0 {
		doc.Lines = textLines(root)
	}

	return doc, nil
}

func findNodes(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findNodes(c, tag)...)
	}
	return out
}

func tableGrid(table *html.Node) roster.Grid {
	var grid roster.Grid
	for _, tr := range findNodes(table, "tr") {
		var row roster.Row
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
				row = append(row, nodeText(c))
			}
		}
		if len(row) > 0 {
			grid = append(grid, row)
		}
	}
	return grid
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func textLines(root *html.Node) []string {
	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if line := strings.Join(strings.Fields(n.Data), " "); line != "" {
				lines = append(lines, line)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return lines
}
