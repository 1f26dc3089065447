// Package event defines the historical event record produced by the
// extraction pipeline.
//
// Events are materialized only once a geographic coordinate has been
// resolved for them; an entry whose links carry no coordinates yields no
// record. The entry parser produces incomplete events (year, description
// and location only); the month and day come from the page being
// extracted and are attached by the extractor.
package event
