package adapter

import (
	"sort"
	"time"

	"parcel-gateway/internal/features/shipping/domain"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const noRatesMessage = "No shipping rates could be found for the destination address"

// eventTimeLayouts are tried in order; the offset, when present, is discarded.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// fedexMapper converts parsed replies into domain results.
type fedexMapper struct {
	logger *zap.Logger
}

func (m fedexMapper) rateResponse(status fedexStatus, lines []rateLine, origin, destination domain.Location, packages []domain.Package, exchange domain.Exchange) *domain.RateResponse {
	rates := lo.Map(lines, func(line rateLine, _ int) domain.RateEstimate {
		delivery := m.wallClock(line.DeliveryTimestamp)
		return domain.RateEstimate{
			Origin:        origin,
			Destination:   destination,
			Carrier:       fedexName,
			ServiceName:   ServiceNameForCode(line.ServiceType),
			ServiceCode:   line.ServiceCode,
			TotalPrice:    line.Amount,
			Currency:      line.Currency,
			Packages:      packages,
			DeliveryRange: [2]time.Time{delivery, delivery},
		}
	})

	resp := &domain.RateResponse{
		Response: newResponse(status, exchange),
		Rates:    rates,
	}
	if len(rates) == 0 {
		resp.Success = false
		if status.Success() {
			resp.Message = noRatesMessage
		}
	}
	return resp
}

func (m fedexMapper) trackingResponse(status fedexStatus, details *trackDetails, exchange domain.Exchange) *domain.TrackingResponse {
	resp := &domain.TrackingResponse{
		Response: newResponse(status, exchange),
		Events:   []domain.ShipmentEvent{},
	}
	if !status.Success() || details == nil {
		return resp
	}

	resp.TrackingNumber = details.TrackingNumber
	resp.StatusCode = details.StatusCode
	resp.StatusDescription = details.StatusDescription
	resp.Status = m.globalStatus(details.StatusCode, details.StatusDescription)
	if details.Destination != nil {
		dest := locationFrom(*details.Destination)
		resp.Destination = &dest
	}

	for _, event := range details.Events {
		if event.Address.CountryCode == "" {
			continue
		}
		resp.Events = append(resp.Events, domain.ShipmentEvent{
			Description: event.Description,
			Time:        m.wallClock(event.Timestamp),
			Location:    locationFrom(event.Address),
		})
	}
	sort.SliceStable(resp.Events, func(i, j int) bool {
		return resp.Events[i].Time.Before(resp.Events[j].Time)
	})

	return resp
}

func (m fedexMapper) shipResponse(reply shipReply, exchange domain.Exchange) *domain.ShipResponse {
	resp := &domain.ShipResponse{
		Response: newResponse(reply.Status, exchange),
		AuditXML: reply.AuditXML,
	}

	if d := reply.Details; d != nil {
		resp.TrackingNumber = d.TrackingNumber
		resp.CarrierCode = d.CarrierCode
		resp.Currency = d.Currency
		resp.TotalPrice = d.Amount
		resp.BinaryBarcode = d.BinaryBarcode
		resp.StringBarcode = d.StringBarcode
		resp.Label = d.Label

		if d.CarrierCode != "" && !knownCarrierCode(d.CarrierCode) {
			m.logger.Warn("Unknown FedEx carrier code",
				zap.String("carrier_code", d.CarrierCode),
				zap.String("tracking_number", d.TrackingNumber),
			)
		}
	}

	if reply.PayloadErr != nil {
		m.logger.Error("Shipment reply could not be fully extracted",
			zap.String("status", reply.Status.String()),
			zap.String("tracking_number", resp.TrackingNumber),
			zap.Error(reply.PayloadErr),
		)
		resp.Success = false
		resp.Message = reply.Status.String() + " (" + reply.PayloadErr.Error() + ")"
	}

	return resp
}

// globalStatus maps a FedEx status code, logging codes it does not know.
func (m fedexMapper) globalStatus(code, description string) domain.TrackingStatus {
	if status, ok := fedexTrackStatuses[code]; ok {
		return status
	}
	if code != "" {
		m.logger.Warn("Unknown FedEx status code encountered",
			zap.String("code", code),
			zap.String("description", description),
		)
	}
	return domain.TrackingStatusProcessing
}

// wallClock parses a FedEx timestamp keeping its wall-clock fields and
// labelling them UTC. Unparseable values yield the zero time.
func (m fedexMapper) wallClock(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range eventTimeLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	}
	m.logger.Warn("Unparseable FedEx timestamp", zap.String("timestamp", s))
	return time.Time{}
}

func newResponse(status fedexStatus, exchange domain.Exchange) domain.Response {
	return domain.Response{
		Success:    status.Success(),
		Message:    status.String(),
		RawXML:     exchange.Response,
		RawRequest: exchange.Request,
	}
}

func locationFrom(a fedexAddress) domain.Location {
	return domain.Location{
		CountryCode: a.CountryCode,
		PostalCode:  a.PostalCode,
		City:        a.City,
		State:       a.State,
	}
}
