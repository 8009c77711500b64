package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ArcCoordinate is an equatorial position in sexagesimal form.
type ArcCoordinate struct {
	RAHour    int
	RAMinute  int
	RASecond  float64
	Sign      string // "+" or "-"
	DecDegree int
	DecMinute int
	DecSecond int
}

// NewArcCoordinate builds a coordinate from its seven sub-fields. It reports
// false when raHour is nil, which is how the catalog marks entries without a
// position.
func NewArcCoordinate(raHour *int, raMinute int, raSecond float64, sign string, decDegree, decMinute, decSecond int) (ArcCoordinate, bool) {
	if raHour == nil {
		return ArcCoordinate{}, false
	}
	return ArcCoordinate{
		RAHour:    *raHour,
		RAMinute:  raMinute,
		RASecond:  raSecond,
		Sign:      sign,
		DecDegree: decDegree,
		DecMinute: decMinute,
		DecSecond: decSecond,
	}, true
}

// RightAscension returns the right ascension in degrees.
func (c ArcCoordinate) RightAscension() float64 {
	return float64(c.RAHour)*15 + float64(c.RAMinute)/4 + c.RASecond/240
}

// Declination returns the signed declination in degrees.
func (c ArcCoordinate) Declination() float64 {
	d := float64(c.DecDegree) + float64(c.DecMinute)/60 + float64(c.DecSecond)/3600
	if c.Sign == "-" {
		return -d
	}
	return d
}

// Repr returns the compact starfile form, e.g. "0:8:23.3 +29:5:26".
func (c ArcCoordinate) Repr() string {
	return fmt.Sprintf("%d:%d:%s %s%d:%d:%d",
		c.RAHour, c.RAMinute, formatFloat(c.RASecond),
		c.Sign, c.DecDegree, c.DecMinute, c.DecSecond)
}

// String returns the long form, e.g. `RA 0 hr, 8 min, 23.3 sec, DEC +29°, 5', 26"`.
func (c ArcCoordinate) String() string {
	return fmt.Sprintf("RA %d hr, %d min, %s sec, DEC %s%d°, %d', %d\"",
		c.RAHour, c.RAMinute, formatFloat(c.RASecond),
		c.Sign, c.DecDegree, c.DecMinute, c.DecSecond)
}

// formatFloat prints the shortest representation that round-trips, always
// with a decimal point: 5 -> "5.0", 23.3 -> "23.3".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
