// Package geo provides decoding of the coordinate directives embedded in
// wiki page source and conversion from degree/minute/second notation to
// signed decimal degrees.
//
// A coordinate directive is a pipe-delimited token of the form
//
//	coord|33|52|04|S|151|12|36|E
//
// carrying latitude and longitude as DMS triples with hemisphere letters.
// Only the first directive in a page is meaningful; secondary locations
// are ignored.
package geo
