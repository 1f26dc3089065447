// Package cli implements the onthisday command line interface.
//
// The CLI wires the wiki client, the link resolver and the extractor
// together for a single (month, day) request and prints the located
// events as text or JSON along with the number of wiki calls the
// request cost.
package cli
