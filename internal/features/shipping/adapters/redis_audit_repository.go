package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcel-gateway/internal/core/cache"
	"parcel-gateway/internal/features/shipping/domain"

	"github.com/goccy/go-json"
)

const shipmentKeyPrefix = "shipment:"

// RedisAuditRepository implements ports.ShipmentAuditRepository on the cache.
type RedisAuditRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisAuditRepository creates a repository whose records expire after ttl.
func NewRedisAuditRepository(c cache.Cache, ttl time.Duration) *RedisAuditRepository {
	return &RedisAuditRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Save stores the record under its tracking number.
func (r *RedisAuditRepository) Save(ctx context.Context, record domain.ShipmentRecord) error {
	if record.TrackingNumber == "" {
		return errors.New("shipment record has no tracking number")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal shipment record: %w", err)
	}

	if err := r.cache.Set(ctx, shipmentKeyPrefix+record.TrackingNumber, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save shipment record: %w", err)
	}
	return nil
}

// Get returns the record for a tracking number, or nil when none is stored.
func (r *RedisAuditRepository) Get(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error) {
	data, err := r.cache.Get(ctx, shipmentKeyPrefix+trackingNumber)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment record: %w", err)
	}

	var record domain.ShipmentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipment record: %w", err)
	}
	return &record, nil
}
