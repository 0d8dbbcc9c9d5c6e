package adapter

import (
	"math"
	"strconv"
	"strings"

	"parcel-gateway/internal/features/shipping/domain"

	"github.com/samber/lo"
)

// imperialCountries are the origins FedEx rates in pounds and inches.
var imperialCountries = []string{"US", "LR", "MM"}

// minimumWeight is the smallest billable weight in either unit.
const minimumWeight = 0.1

// UnitSystemFor picks the wire unit system from the origin country code.
func UnitSystemFor(countryCode string) domain.UnitSystem {
	if lo.Contains(imperialCountries, strings.ToUpper(strings.TrimSpace(countryCode))) {
		return domain.Imperial
	}
	return domain.Metric
}

// roundThousandths rounds half away from zero to three decimals.
func roundThousandths(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// roundWeight rounds to three decimals and never goes below minimumWeight.
func roundWeight(v float64) float64 {
	return math.Max(roundThousandths(v), minimumWeight)
}

// roundDimension rounds to three decimals, then up to the next whole unit.
func roundDimension(v float64) int {
	return int(math.Ceil(roundThousandths(v)))
}

func formatWeight(v float64) string {
	return strconv.FormatFloat(roundWeight(v), 'f', -1, 64)
}

func weightUnits(units domain.UnitSystem) string {
	if units == domain.Imperial {
		return "LB"
	}
	return "KG"
}

func dimensionUnits(units domain.UnitSystem) string {
	if units == domain.Imperial {
		return "IN"
	}
	return "CM"
}
