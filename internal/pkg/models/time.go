package models

import (
	"time"
)

// DateLayout is the layout of the date picker value
const DateLayout = "2006-01-02"

// ClockLayout is the layout of the time picker value
const ClockLayout = "15:04"

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// LoadLocation resolves a timezone name, falling back to UTC
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
