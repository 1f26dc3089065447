package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/wikigeo/onthisday/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt  time.Time     `json:"checked_at"`
	Month      string        `json:"month"`
	Day        int           `json:"day"`
	Events     []event.Event `json:"events"`
	EventCount int           `json:"event_count"`
	WikiCalls  int           `json:"wiki_calls"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	if result.EventCount == 0 {
		fmt.Fprintf(w, "No located events found for %s %d (%d wiki calls).\n",
			result.Month, result.Day, result.WikiCalls)
		return nil
	}

	fmt.Fprintf(w, "%d located event(s) on %s %d (%d wiki calls):\n\n",
		result.EventCount, result.Month, result.Day, result.WikiCalls)

	for _, evt := range result.Events {
		year := fmt.Sprintf("%d", evt.Year)
		if evt.Year < 0 {
			year = fmt.Sprintf("%d BC", -evt.Year)
		}
		fmt.Fprintf(w, "  %s – %s\n", year, stripTags(evt.Description))
		fmt.Fprintf(w, "      at %.4f, %.4f\n", evt.Latitude, evt.Longitude)
	}

	return nil
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// stripTags flattens description markup for terminal output. The JSON
// format keeps the markup intact.
func stripTags(markup string) string {
	return tagPattern.ReplaceAllString(markup, "")
}
