package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcel-gateway/internal/core/logger"
	"parcel-gateway/internal/features/shipping/domain"
	"parcel-gateway/internal/features/shipping/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrCarrierNotSupported is returned when no adapter serves the requested carrier.
	ErrCarrierNotSupported = errors.New("carrier not supported")
	// ErrShipmentNotFound is returned when no audit record exists for a tracking number.
	ErrShipmentNotFound = errors.New("shipment not found")
)

// ShippingService routes carrier operations to the adapter serving the requested carrier.
type ShippingService struct {
	carriers []ports.Carrier
	audit    ports.ShipmentAuditRepository
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

// NewShippingService creates a ShippingService. A nil audit repository disables shipment records.
func NewShippingService(carriers []ports.Carrier, audit ports.ShipmentAuditRepository) *ShippingService {
	return &ShippingService{
		carriers: carriers,
		audit:    audit,
		logger:   logger.For("shipping"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *ShippingService) carrierFor(name string) (ports.Carrier, error) {
	for _, carrier := range s.carriers {
		if carrier.SupportsCarrier(name) {
			return carrier, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCarrierNotSupported, name)
}

// FindRates quotes the packages with the named carrier.
func (s *ShippingService) FindRates(ctx context.Context, carrierName string, origin, destination domain.Location, packages []domain.Package, opts domain.ShipmentOptions) (*domain.RateResponse, error) {
	if len(packages) == 0 {
		return nil, domain.ErrNoPackages
	}

	carrier, err := s.carrierFor(carrierName)
	if err != nil {
		return nil, err
	}

	return carrier.FindRates(ctx, origin, destination, packages, opts)
}

// TrackShipment retrieves the scan history from the named carrier.
func (s *ShippingService) TrackShipment(ctx context.Context, carrierName, trackingNumber string, opts domain.ShipmentOptions) (*domain.TrackingResponse, error) {
	carrier, err := s.carrierFor(carrierName)
	if err != nil {
		return nil, err
	}

	return carrier.FindTrackingInfo(ctx, trackingNumber, opts)
}

// CreateShipment books a shipment and records its redacted reply.
// A failure to store the record is logged and does not fail the call.
func (s *ShippingService) CreateShipment(ctx context.Context, carrierName string, shipper, recipient domain.Party, pkg domain.Package, opts domain.ShipmentOptions) (*domain.ShipResponse, error) {
	carrier, err := s.carrierFor(carrierName)
	if err != nil {
		return nil, err
	}

	resp, err := carrier.Ship(ctx, shipper, recipient, pkg, opts)
	if err != nil {
		return nil, err
	}

	if s.audit == nil || resp.TrackingNumber == "" {
		return resp, nil
	}

	record := resp.Redacted()
	record.ID = s.newID()
	record.Carrier = carrier.Name()
	record.RecordedAt = s.now().UTC()

	if err := s.audit.Save(ctx, record); err != nil {
		s.logger.Error("Failed to store shipment record",
			zap.String("tracking_number", record.TrackingNumber),
			zap.String("carrier", record.Carrier),
			zap.Error(err),
		)
	}

	return resp, nil
}

// GetShipmentRecord returns the stored record for a tracking number.
func (s *ShippingService) GetShipmentRecord(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error) {
	if s.audit == nil {
		return nil, ErrShipmentNotFound
	}

	record, err := s.audit.Get(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get shipment record: %w", err)
	}
	if record == nil {
		return nil, ErrShipmentNotFound
	}
	return record, nil
}
