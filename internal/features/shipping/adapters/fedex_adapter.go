package adapter

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"parcel-gateway/internal/core/config"
	"parcel-gateway/internal/core/logger"
	"parcel-gateway/internal/features/shipping/domain"
	"parcel-gateway/internal/features/shipping/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	fedexName    = "FedEx"
	fedexTestURL = "https://gatewaybeta.fedex.com:443/xml"
	fedexLiveURL = "https://gateway.fedex.com:443/xml"
)

// FedExAdapter talks to the FedEx XML gateway for rates, tracking and shipments.
type FedExAdapter struct {
	config    config.FedExConfig
	transport ports.Transport
	builder   requestBuilder
	mapper    fedexMapper
	logger    *zap.Logger
	last      atomic.Pointer[domain.Exchange]
}

// NewFedExAdapter creates a FedExAdapter with the given credentials and transport.
func NewFedExAdapter(cfg config.FedExConfig, transport ports.Transport) *FedExAdapter {
	log := logger.For("fedex")
	return &FedExAdapter{
		config:    cfg,
		transport: transport,
		builder: requestBuilder{
			credentials:   cfg,
			now:           time.Now,
			transactionID: uuid.NewString,
		},
		mapper: fedexMapper{logger: log},
		logger: log,
	}
}

// Endpoint returns the beta gateway in test mode and the production gateway otherwise.
func Endpoint(test bool) string {
	if test {
		return fedexTestURL
	}
	return fedexLiveURL
}

// Name returns the carrier display name.
func (a *FedExAdapter) Name() string {
	return fedexName
}

// SupportsCarrier returns true for "fedex" in any case.
func (a *FedExAdapter) SupportsCarrier(carrierName string) bool {
	return strings.EqualFold(strings.TrimSpace(carrierName), "fedex")
}

// LastExchange returns the most recent request and reply, or nil before the first call.
func (a *FedExAdapter) LastExchange() *domain.Exchange {
	return a.last.Load()
}

// FindRates quotes every available service for the packages.
func (a *FedExAdapter) FindRates(ctx context.Context, origin, destination domain.Location, packages []domain.Package, opts domain.ShipmentOptions) (*domain.RateResponse, error) {
	if len(packages) == 0 {
		return nil, domain.ErrNoPackages
	}
	opts = opts.WithDefaults()

	request, err := a.builder.rate(origin, destination, packages, opts)
	if err != nil {
		return nil, err
	}

	exchange, err := a.commit(ctx, rateService, request, opts)
	if err != nil {
		return nil, err
	}

	status, lines, err := parseRateReply(exchange.Response)
	if err != nil {
		return nil, err
	}

	a.logReply(opts, rateService, exchange.Response)
	return a.mapper.rateResponse(status, lines, origin, destination, packages, exchange), nil
}

// FindTrackingInfo retrieves the scan history for a package identifier.
func (a *FedExAdapter) FindTrackingInfo(ctx context.Context, trackingNumber string, opts domain.ShipmentOptions) (*domain.TrackingResponse, error) {
	opts = opts.WithDefaults()
	if _, ok := packageIdentifierType(opts.PackageIdentifierType); !ok {
		a.logger.Warn("Unknown package identifier type, using tracking number",
			zap.String("package_identifier_type", opts.PackageIdentifierType),
		)
	}

	request, err := a.builder.track(trackingNumber, opts)
	if err != nil {
		return nil, err
	}

	exchange, err := a.commit(ctx, trackService, request, opts)
	if err != nil {
		return nil, err
	}

	status, details, err := parseTrackReply(exchange.Response)
	if err != nil {
		return nil, err
	}

	a.logReply(opts, trackService, exchange.Response)
	return a.mapper.trackingResponse(status, details, exchange), nil
}

// Ship books a single-package shipment and returns its label.
func (a *FedExAdapter) Ship(ctx context.Context, shipper, recipient domain.Party, pkg domain.Package, opts domain.ShipmentOptions) (*domain.ShipResponse, error) {
	opts = opts.WithDefaults()
	if opts.PayorAccountNumber == "" {
		a.logger.Warn("Ship request has no payor account number; FedEx will reject it")
	}

	request, err := a.builder.ship(shipper, recipient, pkg, opts)
	if err != nil {
		return nil, err
	}

	exchange, err := a.commit(ctx, shipService, request, opts)
	if err != nil {
		return nil, err
	}

	reply, err := parseShipReply(exchange.Response)
	if err != nil {
		return nil, err
	}

	a.logReply(opts, shipService, reply.AuditXML)
	return a.mapper.shipResponse(reply, exchange), nil
}

// commit posts the request to the gateway selected by the test flag.
// Transport errors are returned as received.
func (a *FedExAdapter) commit(ctx context.Context, svc fedexService, request string, opts domain.ShipmentOptions) (domain.Exchange, error) {
	a.last.Store(&domain.Exchange{Request: request})

	endpoint := Endpoint(a.config.TestMode || opts.Test)
	a.logger.Debug("Posting FedEx request",
		zap.Stringer("service", svc),
		zap.String("endpoint", endpoint),
	)

	response, err := a.transport.Post(ctx, endpoint, request)
	if err != nil {
		return domain.Exchange{}, err
	}

	exchange := domain.Exchange{Request: request, Response: response}
	a.last.Store(&exchange)
	return exchange, nil
}

func (a *FedExAdapter) logReply(opts domain.ShipmentOptions, svc fedexService, document string) {
	if !a.config.LogXML && !opts.LogXML {
		return
	}
	a.logger.Info("FedEx reply",
		zap.Stringer("service", svc),
		zap.String("xml", document),
	)
}
