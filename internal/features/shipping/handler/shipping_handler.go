package handler

import (
	"errors"

	"parcel-gateway/internal/features/shipping/domain"
	"parcel-gateway/internal/features/shipping/ports"
	"parcel-gateway/internal/features/shipping/service"

	"github.com/gofiber/fiber/v2"
)

// trackingQueryOptions are the query parameters GET /tracking forwards as options.
var trackingQueryOptions = []string{
	"package_identifier_type",
	"ship_date_range_begin",
	"ship_date_range_end",
	"test",
	"log_xml",
}

// ShippingHandler handles HTTP requests for rates, tracking and shipments.
type ShippingHandler struct {
	service ports.ShippingService
}

// NewShippingHandler creates a new ShippingHandler.
func NewShippingHandler(svc ports.ShippingService) *ShippingHandler {
	return &ShippingHandler{
		service: svc,
	}
}

// Register mounts the shipping routes on the router.
func (h *ShippingHandler) Register(r fiber.Router) {
	r.Post("/rates", h.FindRates)
	r.Get("/tracking/:number", h.TrackShipment)
	r.Post("/shipments", h.CreateShipment)
	r.Get("/shipments/:tracking", h.GetShipmentRecord)
}

// FindRates godoc
// @Summary Quote shipping rates
// @Description Quotes every service the carrier offers for the packages between origin and destination
// @Tags rates
// @Accept json
// @Produce json
// @Param request body RateRequest true "Rate request"
// @Success 200 {object} domain.RateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /rates [post]
func (h *ShippingHandler) FindRates(c *fiber.Ctx) error {
	var req RateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}

	packages := make([]domain.Package, 0, len(req.Packages))
	for _, p := range req.Packages {
		pkg, err := p.toDomain()
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		packages = append(packages, pkg)
	}

	opts, err := domain.ParseOptions(req.Options)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	opts.Shipper = req.Shipper

	resp, err := h.service.FindRates(c.UserContext(), carrierOrDefault(req.Carrier), req.Origin, req.Destination, packages, opts)
	if err != nil {
		return carrierError(c, err)
	}

	return c.JSON(resp)
}

// TrackShipment godoc
// @Summary Get tracking history for a shipment
// @Description Retrieves the scan history and current status for a package identifier
// @Tags tracking
// @Produce json
// @Param number path string true "Tracking number or other package identifier"
// @Param carrier query string false "Carrier name" default(fedex)
// @Param package_identifier_type query string false "tracking_number, door_tag, rma, ground_shipment_id, ..."
// @Param ship_date_range_begin query string false "Earliest ship date (YYYY-MM-DD)"
// @Param ship_date_range_end query string false "Latest ship date (YYYY-MM-DD)"
// @Param test query bool false "Use the carrier test gateway"
// @Success 200 {object} domain.TrackingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /tracking/{number} [get]
func (h *ShippingHandler) TrackShipment(c *fiber.Ctx) error {
	trackingNumber := c.Params("number")
	if trackingNumber == "" {
		return errorJSON(c, fiber.StatusBadRequest, "tracking number is required")
	}

	raw := make(map[string]any)
	for _, key := range trackingQueryOptions {
		if v := c.Query(key); v != "" {
			raw[key] = v
		}
	}
	opts, err := domain.ParseOptions(raw)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := h.service.TrackShipment(c.UserContext(), carrierOrDefault(c.Query("carrier")), trackingNumber, opts)
	if err != nil {
		return carrierError(c, err)
	}

	return c.JSON(resp)
}

// CreateShipment godoc
// @Summary Create a shipment
// @Description Books a single-package shipment and returns its label and tracking number
// @Tags shipments
// @Accept json
// @Produce json
// @Param request body ShipmentRequest true "Shipment request"
// @Success 200 {object} domain.ShipResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /shipments [post]
func (h *ShippingHandler) CreateShipment(c *fiber.Ctx) error {
	var req ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}

	pkg, err := req.Package.toDomain()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	opts, err := domain.ParseOptions(req.Options)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := h.service.CreateShipment(c.UserContext(), carrierOrDefault(req.Carrier), req.Shipper.toDomain(), req.Recipient.toDomain(), pkg, opts)
	if err != nil {
		return carrierError(c, err)
	}

	return c.JSON(resp)
}

// GetShipmentRecord godoc
// @Summary Get a stored shipment record
// @Description Returns the redacted record kept for a shipment created through this API
// @Tags shipments
// @Produce json
// @Param tracking path string true "Tracking number"
// @Success 200 {object} domain.ShipmentRecord
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments/{tracking} [get]
func (h *ShippingHandler) GetShipmentRecord(c *fiber.Ctx) error {
	record, err := h.service.GetShipmentRecord(c.UserContext(), c.Params("tracking"))
	if err != nil {
		if errors.Is(err, service.ErrShipmentNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "shipment not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(record)
}

// carrierError maps errors from a carrier operation to an HTTP status.
func carrierError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoPackages), errors.Is(err, domain.ErrInvalidOption):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCarrierNotSupported):
		return errorJSON(c, fiber.StatusNotFound, "carrier not supported")
	default:
		return errorJSON(c, fiber.StatusBadGateway, err.Error())
	}
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	rayID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID,
	})
}
