package domain

import (
	"fmt"
	"strings"
)

// ParallaxType records how a body's parallax was determined.
type ParallaxType string

const (
	ParallaxTrigonometric ParallaxType = "Trigonometric"
	ParallaxDynamical     ParallaxType = "Dynamical"
)

// RawRecord is one unparsed catalog line along with its 1-based line number.
type RawRecord struct {
	Line int
	Text string
}

// CelestialBody is one parsed catalog entry. HarvardID is always set; every
// pointer field is nil when the source column was blank.
type CelestialBody struct {
	HarvardID               int
	Name                    *string
	DurchmusterungID        *string
	HenryDraperID           *int
	SAOID                   *int
	FK5ID                   *int
	Infrared                bool
	InfraredCode            *string
	MultipleStarCode        *string
	ADSDesignation          *int
	ADSComponentCount       *string
	VariableStarDesignation *string

	// B1900 and J2000 are either both set or both nil.
	B1900 *ArcCoordinate
	J2000 *ArcCoordinate

	GalacticLongitude *float64
	GalacticLatitude  *float64

	VisualMagnitude            *float64
	VisualMagnitudeCode        *string
	VisualMagnitudeUncertainty *string
	ColorBV                    *float64
	ColorBVUncertainty         *string
	ColorUB                    *float64
	ColorUBUncertainty         *string
	ColorRI                    *float64
	ColorRISystem              *string

	SpectralType     *string
	SpectralTypeCode *string

	// Proper motion in arcsec/year, J2000.
	ProperMotionRA  *float64
	ProperMotionDEC *float64

	ParallaxType                  ParallaxType
	Parallax                      *float64
	RadialVelocity                *int
	RadialVelocityComments        *string
	RotationalVelocityLimits      *string
	RotationalVelocity            *int
	RotationalVelocityUncertainty *string

	// Only meaningful for multiple stars.
	MagnitudeDifference           *float64
	ComponentSeparation           *float64
	MagnitudeDifferenceComponents *string
	ComponentCount                *int

	HasNotes bool
}

// DisplayName returns the Bayer/Flamsteed name, or "" for unnamed bodies.
func (b CelestialBody) DisplayName() string {
	if b.Name == nil {
		return ""
	}
	return *b.Name
}

// String renders a multi-line human readable summary of the body.
func (b CelestialBody) String() string {
	var ids []string
	if b.Name != nil {
		ids = append(ids, *b.Name)
	}
	ids = append(ids, fmt.Sprintf("Harvard ID: %d", b.HarvardID))
	if b.DurchmusterungID != nil {
		ids = append(ids, "DM: "+*b.DurchmusterungID)
	}
	if b.HenryDraperID != nil {
		ids = append(ids, fmt.Sprintf("HD: %d", *b.HenryDraperID))
	}
	if b.SAOID != nil {
		ids = append(ids, fmt.Sprintf("SAO: %d", *b.SAOID))
	}
	if b.FK5ID != nil {
		ids = append(ids, fmt.Sprintf("FK5: %d", *b.FK5ID))
	}
	if b.ADSDesignation != nil {
		ids = append(ids, fmt.Sprintf("ADS: %d", *b.ADSDesignation))
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(ids, ", "))
	sb.WriteByte('\n')

	if b.ADSComponentCount != nil {
		fmt.Fprintf(&sb, "Multiple star with %s components.\n", *b.ADSComponentCount)
	}
	if b.VisualMagnitude != nil {
		fmt.Fprintf(&sb, "Visual magnitude: %s\n", formatFloat(*b.VisualMagnitude))
	}
	if b.J2000 != nil {
		sb.WriteString(b.J2000.String())
		sb.WriteByte('\n')
	} else {
		sb.WriteString("This object is not a star.\n")
	}
	return sb.String()
}
