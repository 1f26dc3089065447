package geo

import "math"

// Coordinates is a decimal-degree location. Latitude is negative in the
// southern hemisphere, longitude negative in the western hemisphere.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DegToDec converts a degree/minute/second triple plus hemisphere letter
// to signed decimal degrees, rounded to 4 decimal places. Hemisphere 'S'
// and 'W' negate the result. Values are converted as raw arithmetic;
// out-of-range minutes or seconds are not rejected.
func DegToDec(degrees, minutes, seconds int, hemisphere byte) float64 {
	dec := float64(degrees) + float64(minutes)/60 + float64(seconds)/3600
	dec = math.Round(dec*10000) / 10000
	if hemisphere == 'S' || hemisphere == 'W' {
		dec = -dec
	}
	return dec
}
