package browser

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// summaryAttributes are appended to a summary when present.
var summaryAttributes = []string{"name", "type", "value"}

// Summarize reduces element markup to a short label such as
// `input#text-example-1-id[type=text]`, for log lines. Markup that does not
// parse to an element is returned trimmed.
func Summarize(markup string) string {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return strings.TrimSpace(markup)
	}

	for _, n := range nodes {
		if el := firstElement(n); el != nil {
			return summarizeNode(el)
		}
	}
	return strings.TrimSpace(markup)
}

func firstElement(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if el := firstElement(c); el != nil {
			return el
		}
	}
	return nil
}

func summarizeNode(n *html.Node) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(n.Data))

	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[strings.ToLower(a.Key)] = a.Val
	}

	if id := attrs["id"]; id != "" {
		b.WriteString("#" + id)
	}
	for _, class := range strings.Fields(attrs["class"]) {
		b.WriteString("." + class)
	}
	for _, key := range summaryAttributes {
		if val, ok := attrs[key]; ok && val != "" {
			b.WriteString("[" + key + "=" + val + "]")
		}
	}
	return b.String()
}
