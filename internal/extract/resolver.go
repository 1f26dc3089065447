package extract

import (
	"context"
	"strings"
	"time"

	"github.com/wikigeo/onthisday/internal/geo"
	"github.com/wikigeo/onthisday/internal/logger"
)

// Resolver turns a hyperlink reference into geographic coordinates.
//
// found is false whenever no coordinates can be produced for the link:
// the href carries no wiki path, the target page is unavailable, or its
// source holds no coordinate directive. None of those outcomes is an
// error. calls reports the network requests made, 0 or 1.
type Resolver interface {
	Resolve(ctx context.Context, href string) (coords geo.Coordinates, found bool, calls int)
}

// SourceFetcher is the secondary-lookup dependency of WikiResolver.
type SourceFetcher interface {
	PageSource(ctx context.Context, title string) (string, error)
}

// PageTitle derives the linked page's title from an href. Hrefs without
// a wiki path have no title.
func PageTitle(href string) (string, bool) {
	i := strings.LastIndex(href, "wiki/")
	if i < 0 {
		return "", false
	}
	title := href[i+len("wiki/"):]
	return title, title != ""
}

// WikiResolver resolves a link by fetching the target page's wikitext
// source and decoding its first coordinate directive. Lookup failures
// degrade to "no coordinates"; the lookup still counts as one call.
type WikiResolver struct {
	source  SourceFetcher
	timeout time.Duration
}

// NewResolver creates a resolver over the given source fetcher. timeout
// bounds each lookup; zero means no per-lookup bound.
func NewResolver(source SourceFetcher, timeout time.Duration) *WikiResolver {
	return &WikiResolver{
		source:  source,
		timeout: timeout,
	}
}

// Resolve implements Resolver.
func (r *WikiResolver) Resolve(ctx context.Context, href string) (geo.Coordinates, bool, int) {
	title, ok := PageTitle(href)
	if !ok {
		return geo.Coordinates{}, false, 0
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	src, err := r.source.PageSource(ctx, title)
	if err != nil {
		// An unreachable or missing page is an expected outcome.
		logger.Debug("page source unavailable", logger.Fields{"title": title, "error": err.Error()})
		return geo.Coordinates{}, false, 1
	}

	directive, ok := geo.FindDirective(src)
	if !ok {
		return geo.Coordinates{}, false, 1
	}
	return directive.Coordinates(), true, 1
}
