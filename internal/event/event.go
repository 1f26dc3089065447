package event

import "github.com/wikigeo/onthisday/internal/geo"

// Event is a historical event tied to a place. Year is negative for BCE
// years. Description keeps the page's inline markup, with relative links
// rewritten to absolute URLs. Month and Day are empty/zero on incomplete
// events that have not yet passed through the extractor.
type Event struct {
	Year        int     `json:"year"`
	Description string  `json:"description"`
	Month       string  `json:"month,omitempty"`
	Day         int     `json:"day,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// New creates an incomplete event from a parsed entry and one resolved
// coordinate.
func New(year int, description string, coords geo.Coordinates) Event {
	return Event{
		Year:        year,
		Description: description,
		Latitude:    coords.Latitude,
		Longitude:   coords.Longitude,
	}
}

// WithDate returns a copy of the event completed with the page's month
// and day.
func (e Event) WithDate(month string, day int) Event {
	e.Month = month
	e.Day = day
	return e
}
