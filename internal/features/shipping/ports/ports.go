package ports

import (
	"context"

	"parcel-gateway/internal/features/shipping/domain"
)

// Carrier defines the operations every carrier adapter exposes.
type Carrier interface {
	// Name returns the carrier's display name.
	Name() string
	// SupportsCarrier returns true if this adapter serves the given carrier name.
	SupportsCarrier(carrierName string) bool
	// FindRates quotes every available service for the packages between origin and destination.
	FindRates(ctx context.Context, origin, destination domain.Location, packages []domain.Package, opts domain.ShipmentOptions) (*domain.RateResponse, error)
	// FindTrackingInfo retrieves the scan history for a previously shipped package.
	FindTrackingInfo(ctx context.Context, trackingNumber string, opts domain.ShipmentOptions) (*domain.TrackingResponse, error)
	// Ship books a single-package shipment and returns its label.
	Ship(ctx context.Context, shipper, recipient domain.Party, pkg domain.Package, opts domain.ShipmentOptions) (*domain.ShipResponse, error)
}

// Transport posts a serialized request to a carrier endpoint and returns the raw reply.
type Transport interface {
	Post(ctx context.Context, endpoint, body string) (string, error)
}

// ShipmentAuditRepository stores redacted shipment records.
type ShipmentAuditRepository interface {
	Save(ctx context.Context, record domain.ShipmentRecord) error
	Get(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error)
}

// ShippingService defines the primary port used by the HTTP handlers and the CLI.
type ShippingService interface {
	FindRates(ctx context.Context, carrier string, origin, destination domain.Location, packages []domain.Package, opts domain.ShipmentOptions) (*domain.RateResponse, error)
	TrackShipment(ctx context.Context, carrier, trackingNumber string, opts domain.ShipmentOptions) (*domain.TrackingResponse, error)
	CreateShipment(ctx context.Context, carrier string, shipper, recipient domain.Party, pkg domain.Package, opts domain.ShipmentOptions) (*domain.ShipResponse, error)
	GetShipmentRecord(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error)
}
