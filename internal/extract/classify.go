package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// delimiter separates the year token from the description (en dash,
// space-padded).
const delimiter = " – "

// birthsAnchor is the id of the section header that ends the historical
// events portion of a day page. Deaths and holidays follow it.
const birthsAnchor = "Births"

// EventItems returns the day page's candidate list items: every <li>
// under the parser output that occurs before the Births section, in
// document order. The page tree is never modified; items are selected by
// position relative to the section anchor.
func EventItems(doc *goquery.Document) []*goquery.Selection {
	items := doc.Find(".mw-parser-output ul li")

	cutoff := -1
	order := documentOrder(doc)
	if marker := doc.Find("#" + birthsAnchor).First(); marker.Length() > 0 {
		cutoff = order[marker.Get(0)]
	}

	var out []*goquery.Selection
	items.Each(func(_ int, item *goquery.Selection) {
		if cutoff >= 0 && order[item.Get(0)] >= cutoff {
			return
		}
		out = append(out, item)
	})
	return out
}

// QualifyingItems filters candidate items down to those whose flattened
// text has the "year – description" shape. Everything else (prose,
// nested navigation lists, see-also links) is dropped silently.
func QualifyingItems(items []*goquery.Selection) []*goquery.Selection {
	var out []*goquery.Selection
	for _, item := range items {
		if isEventEntry(item.Text()) {
			out = append(out, item)
		}
	}
	return out
}

// isEventEntry reports whether text starts with one or more digits,
// optionally followed by " BC", followed by the delimiter.
func isEventEntry(text string) bool {
	i := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == 0 {
		return false
	}
	rest := strings.TrimPrefix(text[i:], " BC")
	return strings.HasPrefix(rest, delimiter)
}

// documentOrder numbers every node of the document in depth-first order,
// so that "occurs after the section anchor" becomes a pure comparison.
func documentOrder(doc *goquery.Document) map[*html.Node]int {
	order := make(map[*html.Node]int)
	next := 0

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		order[n] = next
		next++
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}
	return order
}
