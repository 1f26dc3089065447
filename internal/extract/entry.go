package extract

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrBadYear marks a qualifying entry whose year token does not parse.
var ErrBadYear = errors.New("malformed year token")

// Entry is one qualifying list item decomposed into its named parts.
// Links holds the entry's raw href values in document order, before any
// rewriting.
type Entry struct {
	Year        int
	Description string
	Links       []string
}

// ParseEntry decomposes a qualifying list item. Citation markers are
// removed before reading the text, the year token before the delimiter
// is parsed with a " BC" suffix inverting its sign, and the description
// keeps the item's inner markup with relative wiki links rewritten
// against baseURL.
func ParseEntry(item *goquery.Selection, baseURL string) (Entry, error) {
	// Work on a clone so the page tree survives untouched.
	clean := item.Clone()
	clean.Find("sup").Remove()

	yearToken, _, ok := strings.Cut(clean.Text(), delimiter)
	if !ok {
		return Entry{}, fmt.Errorf("%w: no delimiter in %q", ErrBadYear, clean.Text())
	}
	year, err := parseYear(yearToken)
	if err != nil {
		return Entry{}, err
	}

	markup, err := clean.Html()
	if err != nil {
		return Entry{}, fmt.Errorf("rendering entry markup: %w", err)
	}
	_, description, ok := strings.Cut(markup, delimiter)
	if !ok {
		return Entry{}, fmt.Errorf("%w: no delimiter in entry markup", ErrBadYear)
	}
	description = rewriteLinks(description, baseURL)

	var links []string
	clean.Find("a").Each(func(_ int, a *goquery.Selection) {
		if href, exists := a.Attr("href"); exists && href != "" {
			links = append(links, href)
		}
	})

	return Entry{
		Year:        year,
		Description: description,
		Links:       links,
	}, nil
}

// parseYear parses a year token such as "1969" or "44 BC". BC years are
// negative.
func parseYear(token string) (int, error) {
	token = strings.TrimSpace(token)

	bc := strings.Contains(token, "BC")
	if bc {
		token = strings.TrimSpace(strings.ReplaceAll(token, "BC", ""))
	}

	year, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadYear, token)
	}
	if bc {
		year = -year
	}
	return year, nil
}

// rewriteLinks turns site-relative wiki hrefs into absolute URLs so the
// description stands alone outside the page.
func rewriteLinks(markup, baseURL string) string {
	if baseURL == "" {
		return markup
	}
	return strings.ReplaceAll(markup, `href="/wiki/`, `href="`+baseURL+`/wiki/`)
}
