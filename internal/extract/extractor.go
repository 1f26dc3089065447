package extract

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/wikigeo/onthisday/internal/event"
	"github.com/wikigeo/onthisday/internal/geo"
	"github.com/wikigeo/onthisday/internal/logger"
)

// PageFetcher is the primary-fetch dependency of Extractor.
type PageFetcher interface {
	FetchDayPage(ctx context.Context, month string, day int) (*goquery.Document, error)
}

// Config holds extractor settings. BaseURL is the site address used to
// absolutize relative links in descriptions; Workers bounds the
// per-entry link resolution fan-out.
type Config struct {
	BaseURL string
	Workers int
}

// Extractor composes the pipeline for one (month, day) request. It holds
// no per-request state; a single Extractor may serve concurrent requests
// when its dependencies allow it.
type Extractor struct {
	pages    PageFetcher
	resolver Resolver
	baseURL  string
	workers  int
}

// New creates an extractor over the given page fetcher and resolver.
func New(pages PageFetcher, resolver Resolver, cfg Config) *Extractor {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Extractor{
		pages:    pages,
		resolver: resolver,
		baseURL:  cfg.BaseURL,
		workers:  workers,
	}
}

// EventsOnDay runs the full extraction for one day page and returns the
// completed events in page order, together with the total number of
// network calls made: one for the day page plus one per link resolution.
// Only a failed day-page fetch is fatal; malformed entries and
// unresolvable links degrade to fewer events.
func (e *Extractor) EventsOnDay(ctx context.Context, month string, day int) (int, []event.Event, error) {
	doc, err := e.pages.FetchDayPage(ctx, month, day)
	if err != nil {
		return 0, nil, fmt.Errorf("fetching day page: %w", err)
	}
	calls := 1

	entries := QualifyingItems(EventItems(doc))
	logger.Debug("classified day page", logger.Fields{
		"month":   month,
		"day":     day,
		"entries": len(entries),
	})

	var events []event.Event
	for _, item := range entries {
		entry, err := ParseEntry(item, e.baseURL)
		if err != nil {
			// Page markup varies; one malformed entry must not fail the
			// whole request.
			logger.Warn("skipping unparseable entry", logger.Fields{
				"month": month,
				"day":   day,
				"error": err.Error(),
			})
			continue
		}

		n, coords := e.resolveLinks(ctx, entry)
		calls += n

		for _, c := range coords {
			events = append(events, event.New(entry.Year, entry.Description, c).WithDate(month, day))
		}
	}

	logger.AddCounter("events.extracted", int64(len(events)))
	return calls, events, nil
}

// resolveLinks fans an entry's links out over the worker pool and
// returns the call count plus the found coordinates in link order.
func (e *Extractor) resolveLinks(ctx context.Context, entry Entry) (int, []geo.Coordinates) {
	type outcome struct {
		coords geo.Coordinates
		found  bool
		calls  int
	}
	results := make([]outcome, len(entry.Links))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, href := range entry.Links {
		i, href := i, href
		g.Go(func() error {
			coords, found, calls := e.resolver.Resolve(ctx, href)
			results[i] = outcome{coords: coords, found: found, calls: calls}
			return nil
		})
	}
	_ = g.Wait() // workers report outcomes, never errors

	calls := 0
	var found []geo.Coordinates
	for _, r := range results {
		calls += r.calls
		if r.found {
			found = append(found, r.coords)
		}
	}
	return calls, found
}
