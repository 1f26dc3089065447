package geo

import "strings"

const directiveTag = "coord|"

// Directive is a decoded coordinate directive with its eight named fields.
type Directive struct {
	LatDegrees int
	LatMinutes int
	LatSeconds int
	LatHem     byte // 'N' or 'S'
	LonDegrees int
	LonMinutes int
	LonSeconds int
	LonHem     byte // 'E' or 'W'
}

// Coordinates converts both DMS triples to decimal degrees.
func (d Directive) Coordinates() Coordinates {
	return Coordinates{
		Latitude:  DegToDec(d.LatDegrees, d.LatMinutes, d.LatSeconds, d.LatHem),
		Longitude: DegToDec(d.LonDegrees, d.LonMinutes, d.LonSeconds, d.LonHem),
	}
}

// FindDirective scans page source for the first well-formed coordinate
// directive. Tokens that start with the directive tag but are malformed
// (missing fields, non-numeric values, bad hemisphere letters) are
// skipped and the scan continues.
func FindDirective(source string) (Directive, bool) {
	for from := 0; from < len(source); {
		i := strings.Index(source[from:], directiveTag)
		if i < 0 {
			break
		}
		start := from + i + len(directiveTag)
		if d, ok := parseDirective(source[start:]); ok {
			return d, true
		}
		from += i + 1
	}
	return Directive{}, false
}

// parseDirective reads the eight directive fields from the text
// immediately following the tag: a latitude DMS triple with an N/S
// hemisphere, a pipe, then a longitude triple with E/W.
func parseDirective(s string) (Directive, bool) {
	r := fieldReader{src: s}

	latDMS, latHem, ok := r.triple('N', 'S')
	if !ok || !r.pipe() {
		return Directive{}, false
	}
	lonDMS, lonHem, ok := r.triple('E', 'W')
	if !ok {
		return Directive{}, false
	}

	return Directive{
		LatDegrees: latDMS[0], LatMinutes: latDMS[1], LatSeconds: latDMS[2], LatHem: latHem,
		LonDegrees: lonDMS[0], LonMinutes: lonDMS[1], LonSeconds: lonDMS[2], LonHem: lonHem,
	}, true
}

// fieldReader is a cursor over directive text.
type fieldReader struct {
	src string
	pos int
}

// triple reads D|M|S|H where H is constrained to the two given letters.
func (r *fieldReader) triple(a, b byte) ([3]int, byte, bool) {
	var dms [3]int
	for i := range dms {
		n, ok := r.number()
		if !ok || !r.pipe() {
			return dms, 0, false
		}
		dms[i] = n
	}
	hem, ok := r.letter(a, b)
	return dms, hem, ok
}

// number reads one or more consecutive ASCII digits.
func (r *fieldReader) number() (int, bool) {
	start := r.pos
	n := 0
	for r.pos < len(r.src) && r.src[r.pos] >= '0' && r.src[r.pos] <= '9' {
		n = n*10 + int(r.src[r.pos]-'0')
		r.pos++
	}
	return n, r.pos > start
}

func (r *fieldReader) pipe() bool {
	if r.pos < len(r.src) && r.src[r.pos] == '|' {
		r.pos++
		return true
	}
	return false
}

// letter reads a single byte constrained to the two given options.
func (r *fieldReader) letter(a, b byte) (byte, bool) {
	if r.pos >= len(r.src) {
		return 0, false
	}
	c := r.src[r.pos]
	if c != a && c != b {
		return 0, false
	}
	r.pos++
	return c, true
}
