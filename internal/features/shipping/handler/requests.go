package handler

import (
	"errors"

	"parcel-gateway/internal/features/shipping/domain"
)

const defaultCarrier = "fedex"

var errMissingPackage = errors.New("package weight must be positive and dimensions cannot be negative")

// PackageRequest describes a parcel in the caller's units.
type PackageRequest struct {
	Weight float64 `json:"weight" example:"2"`
	Length float64 `json:"length" example:"10"`
	Width  float64 `json:"width" example:"10"`
	Height float64 `json:"height" example:"10"`
	// Units is "metric" (kg/cm, default) or "imperial" (lb/in).
	Units string `json:"units" example:"metric"`
}

func (p PackageRequest) toDomain() (domain.Package, error) {
	if p.Weight <= 0 || p.Length < 0 || p.Width < 0 || p.Height < 0 {
		return domain.Package{}, errMissingPackage
	}
	return domain.NewPackage(p.Weight, p.Length, p.Width, p.Height, domain.ParseUnitSystem(p.Units)), nil
}

// RateRequest is the body of POST /rates.
type RateRequest struct {
	Carrier     string           `json:"carrier" example:"fedex"`
	Origin      domain.Location  `json:"origin"`
	Destination domain.Location  `json:"destination"`
	Shipper     *domain.Location `json:"shipper,omitempty"`
	Packages    []PackageRequest `json:"packages"`
	Options     map[string]any   `json:"options,omitempty"`
}

// PartyRequest is one end of a shipment. Contact accepts person_name,
// phone_number and company_name keys.
type PartyRequest struct {
	Contact  map[string]any  `json:"contact"`
	Location domain.Location `json:"location"`
}

func (p PartyRequest) toDomain() domain.Party {
	return domain.Party{
		Contact:  domain.ContactFrom(p.Contact),
		Location: p.Location,
	}
}

// ShipmentRequest is the body of POST /shipments.
type ShipmentRequest struct {
	Carrier   string         `json:"carrier" example:"fedex"`
	Shipper   PartyRequest   `json:"shipper"`
	Recipient PartyRequest   `json:"recipient"`
	Package   PackageRequest `json:"package"`
	Options   map[string]any `json:"options,omitempty"`
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

func carrierOrDefault(name string) string {
	if name == "" {
		return defaultCarrier
	}
	return name
}
