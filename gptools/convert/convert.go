package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	meterToFeet  = 3.28084
	meterToMiles = 0.0006213712
)

// Units unit system used to display distances and elevations
type Units int

const (
	// Metric meters and kilometers
	Metric Units = iota
	// Imperial feet and miles
	Imperial
)

// ParseUnits parses "metric" or "imperial"
func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(s) {
	case "", "metric":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	}
	return Metric, fmt.Errorf("unknown units %q", s)
}

func (u Units) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// Elevation formats an elevation given in meters
func (u Units) Elevation(meters float64) string {
	if math.IsNaN(meters) {
		return "-"
	}
	if u == Imperial {
		return Ftoan(ToFeet(meters)) + "ft"
	}
	return Ftoan(meters) + "m"
}

// Distance formats a distance given in meters
func (u Units) Distance(meters float64) string {
	if u == Imperial {
		return strconv.FormatFloat(ToMiles(meters), 'f', 2, 64) + "mi"
	}
	return strconv.FormatFloat(meters/1000, 'f', 2, 64) + "km"
}

// ToFeet returns the given distance in meters to feet
func ToFeet(meters float64) float64 {
	return meters * meterToFeet
}

// ToMiles returns the given distance in meters to miles
func ToMiles(meters float64) float64 {
	return meters * meterToMiles
}

// ToDaysHoursMin splits a duration in days, hours and minutes.
// Negative durations are zero.
func ToDaysHoursMin(d time.Duration) (int, int, int) {
	if d < 0 {
		return 0, 0, 0
	}
	m := int(d / time.Minute)
	return m / (24 * 60), (m / 60) % 24, m % 60
}

// Duration formats a duration as "1d 10h 43m"
func Duration(d time.Duration) string {
	days, hours, mins := ToDaysHoursMin(d)
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// Ftoan rounds a float to the nearest integer and formats it
func Ftoan(f float64) string {
	return strconv.Itoa(int(math.Round(f)))
}
