package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RecordWidth is the width of a bsc5.dat record, including the notes flag.
const RecordWidth = 197

// ErrBlankHarvardID is returned for records whose mandatory HR column is empty.
var ErrBlankHarvardID = errors.New("harvard id is blank")

// FieldError reports a catalog column whose content could not be parsed.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// column is a half-open byte range within a record.
type column struct{ start, end int }

func col(start, end int) column { return column{start, end} }

func at(pos int) column { return column{pos, pos + 1} }

// coordinateColumns locates the seven sub-fields of one epoch's position.
type coordinateColumns struct {
	raHour, raMinute, raSecond, sign, decDegree, decMinute, decSecond column
}

var (
	b1900Columns = coordinateColumns{
		raHour: col(60, 62), raMinute: col(62, 64), raSecond: col(64, 68), sign: at(68),
		decDegree: col(69, 71), decMinute: col(71, 73), decSecond: col(73, 75),
	}
	j2000Columns = coordinateColumns{
		raHour: col(75, 77), raMinute: col(77, 79), raSecond: col(79, 83), sign: at(83),
		decDegree: col(84, 86), decMinute: col(86, 88), decSecond: col(88, 90),
	}
)

// PadRecord right-pads a catalog line with blanks to RecordWidth so short
// lines with stripped trailing blanks can be sliced safely.
func PadRecord(line string) string {
	line = strings.TrimRight(line, "\r\n")
	if len(line) >= RecordWidth {
		return line
	}
	return line + strings.Repeat(" ", RecordWidth-len(line))
}

// ParseBody parses one catalog line into a CelestialBody. Blank optional
// columns become nil. A blank or malformed HR number, or any non-blank
// column that fails to parse, is returned as an error wrapping *FieldError.
// Positions are the exception: an epoch whose sub-fields do not all parse
// has no position, and then the body has neither.
func ParseBody(line string) (CelestialBody, error) {
	r := &recordReader{line: PadRecord(line)}

	hr := r.integer("harvard_id", col(0, 4))
	if r.err != nil {
		return CelestialBody{}, fmt.Errorf("parse catalog record: %w", r.err)
	}
	if hr == nil {
		return CelestialBody{}, fmt.Errorf("parse catalog record: %w",
			&FieldError{Field: "harvard_id", Value: r.raw(col(0, 4)), Err: ErrBlankHarvardID})
	}

	b := CelestialBody{
		HarvardID:               *hr,
		Name:                    r.text(col(4, 14)),
		DurchmusterungID:        durchmusterung(r.text(col(14, 25))),
		HenryDraperID:           r.integer("henry_draper_id", col(25, 31)),
		SAOID:                   r.integer("sao_id", col(31, 37)),
		FK5ID:                   r.integer("fk5_id", col(37, 41)),
		Infrared:                r.flag(at(41)),
		InfraredCode:            r.text(at(42)),
		MultipleStarCode:        r.text(at(43)),
		ADSDesignation:          r.integer("ads_designation", col(44, 49)),
		ADSComponentCount:       r.text(col(49, 51)),
		VariableStarDesignation: r.text(col(51, 60)),

		GalacticLongitude: r.decimal("galactic_longitude", col(90, 96)),
		GalacticLatitude:  r.decimal("galactic_latitude", col(96, 102)),

		VisualMagnitude:            r.decimal("visual_magnitude", col(102, 107)),
		VisualMagnitudeCode:        r.text(at(107)),
		VisualMagnitudeUncertainty: r.text(at(108)),
		ColorBV:                    r.decimal("color_bv", col(109, 114)),
		ColorBVUncertainty:         r.text(at(114)),
		ColorUB:                    r.decimal("color_ub", col(115, 120)),
		ColorUBUncertainty:         r.text(at(120)),
		ColorRI:                    r.decimal("color_ri", col(121, 126)),
		ColorRISystem:              r.text(at(126)),

		SpectralType:     r.text(col(127, 147)),
		SpectralTypeCode: r.text(at(147)),

		ProperMotionRA:  r.decimal("proper_motion_ra", col(148, 154)),
		ProperMotionDEC: r.decimal("proper_motion_dec", col(154, 160)),

		ParallaxType:                  parallaxType(r.raw(at(160))),
		Parallax:                      r.decimal("parallax", col(161, 166)),
		RadialVelocity:                r.integer("radial_velocity", col(166, 170)),
		RadialVelocityComments:        r.text(col(170, 174)),
		RotationalVelocityLimits:      r.text(col(174, 176)),
		RotationalVelocity:            r.integer("rotational_velocity", col(176, 179)),
		RotationalVelocityUncertainty: r.text(at(179)),

		MagnitudeDifference:           r.decimal("magnitude_difference", col(180, 184)),
		ComponentSeparation:           r.decimal("component_separation", col(184, 190)),
		MagnitudeDifferenceComponents: r.text(col(190, 194)),
		ComponentCount:                r.integer("component_count", col(194, 196)),

		HasNotes: r.flag(at(196)),
	}

	// Both epochs or neither.
	b1900, okB := r.coordinate(b1900Columns)
	j2000, okJ := r.coordinate(j2000Columns)
	if okB && okJ {
		b.B1900 = &b1900
		b.J2000 = &j2000
	}

	if r.err != nil {
		return CelestialBody{}, fmt.Errorf("parse catalog record %d: %w", b.HarvardID, r.err)
	}
	return b, nil
}

// recordReader slices typed fields out of a padded record. The first parse
// failure is kept in err and later reads become no-ops returning nil.
type recordReader struct {
	line string
	err  error
}

func (r *recordReader) raw(c column) string {
	return r.line[c.start:c.end]
}

func (r *recordReader) text(c column) *string {
	s := strings.TrimSpace(r.raw(c))
	if s == "" {
		return nil
	}
	return &s
}

func (r *recordReader) flag(c column) bool {
	return strings.TrimSpace(r.raw(c)) != ""
}

func (r *recordReader) integer(field string, c column) *int {
	s := r.text(c)
	if s == nil || r.err != nil {
		return nil
	}
	v, err := strconv.Atoi(*s)
	if err != nil {
		r.err = &FieldError{Field: field, Value: *s, Err: err}
		return nil
	}
	return &v
}

func (r *recordReader) decimal(field string, c column) *float64 {
	s := r.text(c)
	if s == nil || r.err != nil {
		return nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		r.err = &FieldError{Field: field, Value: *s, Err: err}
		return nil
	}
	return &v
}

// coordinate parses one epoch's position. Any blank or malformed sub-field
// means the epoch has no position; it never fails the record.
func (r *recordReader) coordinate(cc coordinateColumns) (ArcCoordinate, bool) {
	hour, err := strconv.Atoi(strings.TrimSpace(r.raw(cc.raHour)))
	if err != nil {
		return ArcCoordinate{}, false
	}
	ints := make([]int, 0, 4)
	for _, c := range []column{cc.raMinute, cc.decDegree, cc.decMinute, cc.decSecond} {
		v, err := strconv.Atoi(strings.TrimSpace(r.raw(c)))
		if err != nil {
			return ArcCoordinate{}, false
		}
		ints = append(ints, v)
	}
	raSecond, err := strconv.ParseFloat(strings.TrimSpace(r.raw(cc.raSecond)), 64)
	if err != nil {
		return ArcCoordinate{}, false
	}
	return NewArcCoordinate(&hour, ints[0], raSecond, r.raw(cc.sign), ints[1], ints[2], ints[3])
}

func durchmusterung(full *string) *string {
	if full == nil {
		return nil
	}
	s := *full
	if len(s) <= 5 {
		return &s
	}
	dm := s[:5] + " " + strings.TrimSpace(s[5:])
	return &dm
}

func parallaxType(marker string) ParallaxType {
	if marker == "D" {
		return ParallaxDynamical
	}
	return ParallaxTrigonometric
}
