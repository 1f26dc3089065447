package extract

import (
	"context"
	"testing"
	"time"

	"github.com/wikigeo/onthisday/internal/geo"
	"github.com/wikigeo/onthisday/internal/wiki"
)

// fakeSource serves canned page sources keyed by title.
type fakeSource struct {
	pages map[string]string
	calls int
}

func (f *fakeSource) PageSource(_ context.Context, title string) (string, error) {
	f.calls++
	src, ok := f.pages[title]
	if !ok {
		return "", wiki.ErrPageUnavailable
	}
	return src, nil
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		name  string
		href  string
		title string
		ok    bool
	}{
		{name: "relative wiki link", href: "/wiki/Sydney_Opera_House", title: "Sydney_Opera_House", ok: true},
		{name: "absolute wiki link", href: "https://en.wikipedia.org/wiki/Paris", title: "Paris", ok: true},
		{name: "external link", href: "https://example.com/article", ok: false},
		{name: "citation anchor", href: "#cite_note-1", ok: false},
		{name: "bare wiki path", href: "/wiki/", ok: false},
		{name: "empty href", href: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, ok := PageTitle(tt.href)
			if ok != tt.ok {
				t.Fatalf("PageTitle(%q) ok = %v, want %v", tt.href, ok, tt.ok)
			}
			if ok && title != tt.title {
				t.Errorf("PageTitle(%q) = %q, want %q", tt.href, title, tt.title)
			}
		})
	}
}

func TestWikiResolver_Resolve(t *testing.T) {
	source := &fakeSource{pages: map[string]string{
		"Sydney_Opera_House": "{{Infobox}}{{coord|33|52|04|S|151|12|36|E}}",
		"Julius_Caesar":      "Roman general and statesman, no infobox location.",
	}}
	r := NewResolver(source, time.Second)

	coords, found, calls := r.Resolve(context.Background(), "/wiki/Sydney_Opera_House")
	if !found {
		t.Fatal("expected coordinates for Sydney_Opera_House")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	want := geo.Coordinates{Latitude: -33.8678, Longitude: 151.21}
	if coords != want {
		t.Errorf("coords = %+v, want %+v", coords, want)
	}
}

func TestWikiResolver_NoDirective(t *testing.T) {
	source := &fakeSource{pages: map[string]string{
		"Julius_Caesar": "Roman general and statesman, no infobox location.",
	}}
	r := NewResolver(source, time.Second)

	_, found, calls := r.Resolve(context.Background(), "/wiki/Julius_Caesar")
	if found {
		t.Error("expected no coordinates for a page without a directive")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (the lookup counts even without a directive)", calls)
	}
}

func TestWikiResolver_UnavailablePage(t *testing.T) {
	source := &fakeSource{pages: map[string]string{}}
	r := NewResolver(source, time.Second)

	_, found, calls := r.Resolve(context.Background(), "/wiki/No_Such_Page")
	if found {
		t.Error("expected no coordinates for an unavailable page")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (the failed lookup still counts)", calls)
	}
}

func TestWikiResolver_NonWikiLink(t *testing.T) {
	source := &fakeSource{pages: map[string]string{}}
	r := NewResolver(source, time.Second)

	_, found, calls := r.Resolve(context.Background(), "https://example.com/article")
	if found {
		t.Error("expected no coordinates for a non-wiki link")
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0 (no lookup for non-wiki links)", calls)
	}
	if source.calls != 0 {
		t.Errorf("source was queried %d times, want 0", source.calls)
	}
}
