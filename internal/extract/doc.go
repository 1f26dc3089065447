// Package extract implements the day-page extraction pipeline: classify
// the page's list items into qualifying "year – description" entries,
// parse each entry into a signed year and a markup-bearing description,
// and resolve the entry's links to geographic coordinates.
//
// Text transformation is kept pure; all network I/O sits behind the
// Resolver and PageFetcher interfaces so the parsing logic is testable
// without network access.
package extract
