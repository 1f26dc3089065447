// Package wiki is the HTTP client for the encyclopedia site.
//
// It covers the two endpoints the pipeline needs: the rendered HTML day
// page at /wiki/{Month}_{Day}, and the REST page endpoint that returns a
// page's raw wikitext source. The day-page fetch is fatal on failure and
// therefore retried with exponential backoff; page-source lookups fail
// fast, since a missing or unreadable page simply means no coordinates
// for that link.
package wiki
