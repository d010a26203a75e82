package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// SplitEntries splits raw corpus markup into per-inscription blocks. Each
// inscription is encoded as one paragraph; the chunk before the first
// boundary is static page content and is dropped.
func SplitEntries(source string) []string {
	chunks := strings.Split(source, "</p>")
	if len(chunks) <= 1 {
		return nil
	}
	var entries []string
	for _, chunk := range chunks[1:] {
		if chunk != "" {
			entries = append(entries, chunk)
		}
	}
	return entries
}

// Fragments tokenizes one inscription block into its ordered fragment list.
// Text nodes are collected in document order; comment nodes keep their
// opening marker so the findspot comment can be recognized downstream.
// Label fragments (bare newlines, lone spaces, the id label and its colon)
// are dropped, non-breaking spaces removed, and whitespace collapsed.
func Fragments(entry string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(entry))
	if err != nil {
		return nil, err
	}

	var raw []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			raw = append(raw, n.Data)
		case html.CommentNode:
			raw = append(raw, "<!--"+n.Data)
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var fragments []string
	for _, elem := range raw {
		if elem == "\n" || elem == " " || elem == ":" || elem == "EDCS-ID:" {
			continue
		}
		elem = strings.ReplaceAll(elem, "\u00a0", "")
		elem = strings.Join(strings.Fields(elem), " ")
		if elem != "" {
			fragments = append(fragments, elem)
		}
	}
	return fragments, nil
}
