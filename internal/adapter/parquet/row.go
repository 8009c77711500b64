package parquet

import "github.com/couchcryptid/starseer/internal/domain"

// bodyRow is the Parquet schema of one catalog body. Columns whose catalog
// field can be blank are OPTIONAL.
type bodyRow struct {
	HarvardID               int32   `parquet:"name=harvard_id, type=INT32"`
	Name                    *string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	DurchmusterungID        *string `parquet:"name=durchmusterung_id, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	HenryDraperID           *int32  `parquet:"name=henry_draper_id, type=INT32, repetitiontype=OPTIONAL"`
	SAOID                   *int32  `parquet:"name=sao_id, type=INT32, repetitiontype=OPTIONAL"`
	FK5ID                   *int32  `parquet:"name=fk5_id, type=INT32, repetitiontype=OPTIONAL"`
	Infrared                bool    `parquet:"name=infrared, type=BOOLEAN"`
	InfraredCode            *string `parquet:"name=infrared_code, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	MultipleStarCode        *string `parquet:"name=multiple_star_code, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	ADSDesignation          *int32  `parquet:"name=ads_designation, type=INT32, repetitiontype=OPTIONAL"`
	ADSComponentCount       *string `parquet:"name=ads_component_count, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	VariableStarDesignation *string `parquet:"name=variable_star_designation, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`

	B1900 *string  `parquet:"name=b1900, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	J2000 *string  `parquet:"name=j2000, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	RA    *float64 `parquet:"name=ra_deg, type=DOUBLE, repetitiontype=OPTIONAL"`
	Dec   *float64 `parquet:"name=dec_deg, type=DOUBLE, repetitiontype=OPTIONAL"`

	GalacticLongitude *float64 `parquet:"name=galactic_longitude, type=DOUBLE, repetitiontype=OPTIONAL"`
	GalacticLatitude  *float64 `parquet:"name=galactic_latitude, type=DOUBLE, repetitiontype=OPTIONAL"`

	VisualMagnitude            *float64 `parquet:"name=visual_magnitude, type=DOUBLE, repetitiontype=OPTIONAL"`
	VisualMagnitudeCode        *string  `parquet:"name=visual_magnitude_code, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	VisualMagnitudeUncertainty *string  `parquet:"name=visual_magnitude_uncertainty, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	ColorBV                    *float64 `parquet:"name=color_bv, type=DOUBLE, repetitiontype=OPTIONAL"`
	ColorBVUncertainty         *string  `parquet:"name=color_bv_uncertainty, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	ColorUB                    *float64 `parquet:"name=color_ub, type=DOUBLE, repetitiontype=OPTIONAL"`
	ColorUBUncertainty         *string  `parquet:"name=color_ub_uncertainty, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	ColorRI                    *float64 `parquet:"name=color_ri, type=DOUBLE, repetitiontype=OPTIONAL"`
	ColorRISystem              *string  `parquet:"name=color_ri_system, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	Temperature                *float64 `parquet:"name=temperature_k, type=DOUBLE, repetitiontype=OPTIONAL"`

	SpectralType     *string `parquet:"name=spectral_type, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	SpectralTypeCode *string `parquet:"name=spectral_type_code, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`

	ProperMotionRA  *float64 `parquet:"name=proper_motion_ra, type=DOUBLE, repetitiontype=OPTIONAL"`
	ProperMotionDEC *float64 `parquet:"name=proper_motion_dec, type=DOUBLE, repetitiontype=OPTIONAL"`

	ParallaxType                  string   `parquet:"name=parallax_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	Parallax                      *float64 `parquet:"name=parallax, type=DOUBLE, repetitiontype=OPTIONAL"`
	RadialVelocity                *int32   `parquet:"name=radial_velocity, type=INT32, repetitiontype=OPTIONAL"`
	RadialVelocityComments        *string  `parquet:"name=radial_velocity_comments, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	RotationalVelocityLimits      *string  `parquet:"name=rotational_velocity_limits, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	RotationalVelocity            *int32   `parquet:"name=rotational_velocity, type=INT32, repetitiontype=OPTIONAL"`
	RotationalVelocityUncertainty *string  `parquet:"name=rotational_velocity_uncertainty, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`

	MagnitudeDifference           *float64 `parquet:"name=magnitude_difference, type=DOUBLE, repetitiontype=OPTIONAL"`
	ComponentSeparation           *float64 `parquet:"name=component_separation, type=DOUBLE, repetitiontype=OPTIONAL"`
	MagnitudeDifferenceComponents *string  `parquet:"name=magnitude_difference_components, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	ComponentCount                *int32   `parquet:"name=component_count, type=INT32, repetitiontype=OPTIONAL"`

	HasNotes bool `parquet:"name=has_notes, type=BOOLEAN"`
}

func toRow(b domain.CelestialBody) bodyRow {
	row := bodyRow{
		HarvardID:                     int32(b.HarvardID),
		Name:                          b.Name,
		DurchmusterungID:              b.DurchmusterungID,
		HenryDraperID:                 int32Ptr(b.HenryDraperID),
		SAOID:                         int32Ptr(b.SAOID),
		FK5ID:                         int32Ptr(b.FK5ID),
		Infrared:                      b.Infrared,
		InfraredCode:                  b.InfraredCode,
		MultipleStarCode:              b.MultipleStarCode,
		ADSDesignation:                int32Ptr(b.ADSDesignation),
		ADSComponentCount:             b.ADSComponentCount,
		VariableStarDesignation:       b.VariableStarDesignation,
		GalacticLongitude:             b.GalacticLongitude,
		GalacticLatitude:              b.GalacticLatitude,
		VisualMagnitude:               b.VisualMagnitude,
		VisualMagnitudeCode:           b.VisualMagnitudeCode,
		VisualMagnitudeUncertainty:    b.VisualMagnitudeUncertainty,
		ColorBV:                       b.ColorBV,
		ColorBVUncertainty:            b.ColorBVUncertainty,
		ColorUB:                       b.ColorUB,
		ColorUBUncertainty:            b.ColorUBUncertainty,
		ColorRI:                       b.ColorRI,
		ColorRISystem:                 b.ColorRISystem,
		SpectralType:                  b.SpectralType,
		SpectralTypeCode:              b.SpectralTypeCode,
		ProperMotionRA:                b.ProperMotionRA,
		ProperMotionDEC:               b.ProperMotionDEC,
		ParallaxType:                  string(b.ParallaxType),
		Parallax:                      b.Parallax,
		RadialVelocity:                int32Ptr(b.RadialVelocity),
		RadialVelocityComments:        b.RadialVelocityComments,
		RotationalVelocityLimits:      b.RotationalVelocityLimits,
		RotationalVelocity:            int32Ptr(b.RotationalVelocity),
		RotationalVelocityUncertainty: b.RotationalVelocityUncertainty,
		MagnitudeDifference:           b.MagnitudeDifference,
		ComponentSeparation:           b.ComponentSeparation,
		MagnitudeDifferenceComponents: b.MagnitudeDifferenceComponents,
		ComponentCount:                int32Ptr(b.ComponentCount),
		HasNotes:                      b.HasNotes,
	}
	if b.B1900 != nil {
		s := b.B1900.Repr()
		row.B1900 = &s
	}
	if b.J2000 != nil {
		s := b.J2000.Repr()
		ra, dec := b.J2000.RightAscension(), b.J2000.Declination()
		row.J2000, row.RA, row.Dec = &s, &ra, &dec
	}
	if t, err := b.Temperature(); err == nil {
		row.Temperature = &t
	}
	return row
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}
