package config

import "fmt"

// daysInMonth gives the number of day pages per month. February has 29:
// the site publishes a February 29 page regardless of year, so
// calendar-correct leap handling would wrongly reject a valid page.
var daysInMonth = map[string]int{
	"January":   31,
	"February":  29,
	"March":     31,
	"April":     30,
	"May":       31,
	"June":      30,
	"July":      31,
	"August":    31,
	"September": 30,
	"October":   31,
	"November":  30,
	"December":  31,
}

// ValidateDate checks that month is a full month name matching the
// site's page naming and that day falls within that month.
func ValidateDate(month string, day int) error {
	days, ok := daysInMonth[month]
	if !ok {
		return fmt.Errorf("unknown month %q (use full names, e.g. \"January\")", month)
	}
	if day < 1 || day > days {
		return fmt.Errorf("invalid day %d for %s (1-%d)", day, month, days)
	}
	return nil
}

// Months lists the month names in calendar order.
func Months() []string {
	return []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
}
