package astro

import (
	"math"
	"time"
)

const (
	// J2000 is the Julian Date of 2000-01-01 12:00 UTC.
	J2000 = 2451545.0

	// gmstAtJ2000 is GMST in hours at the J2000 epoch.
	gmstAtJ2000 = 18.697374558

	// siderealHoursPerDay is the GMST advance per solar day, in hours.
	siderealHoursPerDay = 24.06570982441908
)

// JulianDateUTC returns the Julian Date for a proleptic Gregorian calendar
// date and UTC time of day. Inputs are not range checked.
func JulianDateUTC(year, month, day, hour, minute int, second float64) float64 {
	// Julian Day Number, integer arithmetic throughout
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	// The Julian day starts at noon
	dayFrac := float64(hour-12)/24.0 + float64(minute)/1440.0 + second/86400.0

	return float64(jdn) + dayFrac
}

// JulianDate returns the Julian Date (UTC) of t.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9
	return JulianDateUTC(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), sec)
}

// GMSTHours returns Greenwich Mean Sidereal Time in hours [0, 24)
// using the linear approximation around J2000.
func GMSTHours(jdUTC float64) float64 {
	d := jdUTC - J2000
	return wrapHours(gmstAtJ2000 + siderealHoursPerDay*d)
}

// LSTHours returns Local Sidereal Time in hours [0, 24) for an observer
// at lonDeg (east positive).
func LSTHours(jdUTC, lonDeg float64) float64 {
	return wrapHours(GMSTHours(jdUTC) + lonDeg/15.0)
}

// wrapHours folds h into [0, 24).
func wrapHours(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	// -tiny + 24 rounds to exactly 24
	if h >= 24 {
		h = 0
	}
	return h
}
