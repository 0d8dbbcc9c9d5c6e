package domain

import "strings"

// UnitSystem selects the measurement units used on the wire.
type UnitSystem string

const (
	// Imperial uses pounds and inches.
	Imperial UnitSystem = "imperial"
	// Metric uses kilograms and centimetres.
	Metric UnitSystem = "metric"
)

const (
	kilogramsPerPound  = 0.45359237
	centimetresPerInch = 2.54
)

// Package is a single parcel. Values are stored in metric units and
// converted on demand.
type Package struct {
	Kilograms float64 `json:"kilograms"`
	LengthCm  float64 `json:"length_cm"`
	WidthCm   float64 `json:"width_cm"`
	HeightCm  float64 `json:"height_cm"`
}

// NewPackage builds a package from a weight and three dimensions expressed in the given units.
func NewPackage(weight, length, width, height float64, units UnitSystem) Package {
	if units == Imperial {
		return Package{
			Kilograms: weight * kilogramsPerPound,
			LengthCm:  length * centimetresPerInch,
			WidthCm:   width * centimetresPerInch,
			HeightCm:  height * centimetresPerInch,
		}
	}
	return Package{
		Kilograms: weight,
		LengthCm:  length,
		WidthCm:   width,
		HeightCm:  height,
	}
}

// ParseUnitSystem maps "imperial"/"metric" (any case) to a UnitSystem, defaulting to Metric.
func ParseUnitSystem(s string) UnitSystem {
	if strings.EqualFold(strings.TrimSpace(s), string(Imperial)) {
		return Imperial
	}
	return Metric
}

// Pounds returns the weight in pounds.
func (p Package) Pounds() float64 {
	return p.Kilograms / kilogramsPerPound
}

// Weight returns the weight in kilograms or pounds.
func (p Package) Weight(units UnitSystem) float64 {
	if units == Imperial {
		return p.Pounds()
	}
	return p.Kilograms
}

// Dimensions returns length, width and height in centimetres or inches.
func (p Package) Dimensions(units UnitSystem) [3]float64 {
	dims := [3]float64{p.LengthCm, p.WidthCm, p.HeightCm}
	if units == Imperial {
		for i := range dims {
			dims[i] /= centimetresPerInch
		}
	}
	return dims
}
