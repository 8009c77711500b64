package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Fields a starfile line needs. Used as MissingFieldError.Field and as the
// skip reason label.
const (
	FieldJ2000           = "j2000_coordinates"
	FieldColor           = "color"
	FieldVisualMagnitude = "visual_magnitude"
)

// ErrMalformedStarLine is returned by ParseStarLine for lines that are not in
// starfile format.
var ErrMalformedStarLine = errors.New("malformed starfile line")

// MissingFieldError reports why a body cannot be written to the starfile.
type MissingFieldError struct {
	Field string
	Err   error // underlying cause for derived fields, may be nil
}

func (e *MissingFieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing %s: %v", e.Field, e.Err)
	}
	return "missing " + e.Field
}

func (e *MissingFieldError) Unwrap() error { return e.Err }

// FormatStarLine renders a body as a newline terminated starfile line:
//
//	<J2000 repr>::::(<r>, <g>, <b>)::::<visual magnitude>
//
// It returns a *MissingFieldError when the J2000 position, a derivable color
// or the visual magnitude is absent.
func FormatStarLine(b CelestialBody, table *ColorTable) (string, error) {
	if b.J2000 == nil {
		return "", &MissingFieldError{Field: FieldJ2000}
	}
	c, err := DeriveColor(b, table)
	if err != nil {
		return "", &MissingFieldError{Field: FieldColor, Err: err}
	}
	if b.VisualMagnitude == nil {
		return "", &MissingFieldError{Field: FieldVisualMagnitude}
	}
	return fmt.Sprintf("%s::::%s::::%s\n", b.J2000.Repr(), c, formatFloat(*b.VisualMagnitude)), nil
}

// Star is one starfile entry.
type Star struct {
	Position        ArcCoordinate
	Color           RGB
	VisualMagnitude float64
}

var starLineRe = regexp.MustCompile(
	`^(\d+):(\d+):(\d+(?:\.\d*)?) ([+-])(\d+):(\d+):(\d+)::::\((\d+), (\d+), (\d+)\)::::(-?\d+(?:\.\d*)?)\s*$`)

// ParseStarLine parses a line written by FormatStarLine.
func ParseStarLine(line string) (Star, error) {
	m := starLineRe.FindStringSubmatch(line)
	if m == nil {
		return Star{}, fmt.Errorf("%w: %q", ErrMalformedStarLine, line)
	}

	// Every group is digits by construction; only range overflow can fail.
	ints := make([]int, 0, 8)
	for _, i := range []int{1, 2, 5, 6, 7, 8, 9, 10} {
		v, err := strconv.Atoi(m[i])
		if err != nil {
			return Star{}, fmt.Errorf("%w: %v", ErrMalformedStarLine, err)
		}
		ints = append(ints, v)
	}
	raSecond, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Star{}, fmt.Errorf("%w: %v", ErrMalformedStarLine, err)
	}
	mag, err := strconv.ParseFloat(m[11], 64)
	if err != nil {
		return Star{}, fmt.Errorf("%w: %v", ErrMalformedStarLine, err)
	}

	return Star{
		Position: ArcCoordinate{
			RAHour:    ints[0],
			RAMinute:  ints[1],
			RASecond:  raSecond,
			Sign:      m[4],
			DecDegree: ints[2],
			DecMinute: ints[3],
			DecSecond: ints[4],
		},
		Color:           RGB{R: ints[5], G: ints[6], B: ints[7]},
		VisualMagnitude: mag,
	}, nil
}
