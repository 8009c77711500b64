package domain

import (
	"errors"
	"fmt"
	"math"
)

// Temperature bounds of the color lookup, in Kelvin.
const (
	MinTemperature  = 1000
	MaxTemperature  = 40000
	temperatureStep = 100
)

var (
	// ErrNoColorIndex is returned for bodies without a B-V color index.
	ErrNoColorIndex = errors.New("no B-V color index")

	// ErrDegenerateColorIndex is returned for B-V = -0.56, where the
	// temperature formula divides by zero.
	ErrDegenerateColorIndex = errors.New("B-V color index -0.56 has no temperature")
)

// TemperatureNotFoundError reports a rounded temperature missing from the
// color table.
type TemperatureNotFoundError struct {
	Kelvin int
}

func (e *TemperatureNotFoundError) Error() string {
	return fmt.Sprintf("temperature %d K not in color table", e.Kelvin)
}

// DeriveTemperature estimates the effective temperature in Kelvin from a B-V
// color index: T = 7000 / (B-V + 0.56).
func DeriveTemperature(bv float64) (float64, error) {
	d := bv + 0.56
	if d == 0 {
		return 0, ErrDegenerateColorIndex
	}
	return 7000 / d, nil
}

// Temperature derives the body's effective temperature from its B-V index.
func (b CelestialBody) Temperature() (float64, error) {
	if b.ColorBV == nil {
		return 0, ErrNoColorIndex
	}
	return DeriveTemperature(*b.ColorBV)
}

// tableTemperature clamps t to [MinTemperature, MaxTemperature] and rounds it
// half-to-even to the table's 100 K step.
func tableTemperature(t float64) int {
	t = math.Max(MinTemperature, math.Min(MaxTemperature, t))
	return int(temperatureStep * math.RoundToEven(t/temperatureStep))
}

// DeriveColor looks up the body's color in table.
func DeriveColor(b CelestialBody, table *ColorTable) (RGB, error) {
	t, err := b.Temperature()
	if err != nil {
		return RGB{}, err
	}
	kelvin := tableTemperature(t)
	c, ok := table.Lookup(kelvin)
	if !ok {
		return RGB{}, &TemperatureNotFoundError{Kelvin: kelvin}
	}
	return c, nil
}
