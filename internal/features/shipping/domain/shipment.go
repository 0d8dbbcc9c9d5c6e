package domain

import "time"

// ShipResponse is the result of a shipment creation request.
type ShipResponse struct {
	Response
	TrackingNumber string  `json:"tracking_number,omitempty"`
	CarrierCode    string  `json:"carrier_code,omitempty"`
	Currency       string  `json:"currency,omitempty"`
	TotalPrice     float64 `json:"total_price,omitempty"`
	BinaryBarcode  []byte  `json:"binary_barcode,omitempty"`
	StringBarcode  string  `json:"string_barcode,omitempty"`
	// Label is the decoded label image. It is never copied into ShipmentRecord.
	Label []byte `json:"label,omitempty"`
	// AuditXML is RawXML with the label image removed.
	AuditXML string `json:"-"`
}

// ShipmentRecord is the projection of a ShipResponse that is safe to store or log.
type ShipmentRecord struct {
	ID             string    `json:"id"`
	Carrier        string    `json:"carrier"`
	Success        bool      `json:"success"`
	Message        string    `json:"message"`
	TrackingNumber string    `json:"tracking_number"`
	CarrierCode    string    `json:"carrier_code"`
	Currency       string    `json:"currency"`
	TotalPrice     float64   `json:"total_price"`
	StringBarcode  string    `json:"string_barcode"`
	LabelSize      int       `json:"label_size"`
	Document       string    `json:"document"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// Redacted returns the storage projection of the response. It carries neither
// the label bytes nor the request, which holds credentials.
func (r *ShipResponse) Redacted() ShipmentRecord {
	return ShipmentRecord{
		Success:        r.Success,
		Message:        r.Message,
		TrackingNumber: r.TrackingNumber,
		CarrierCode:    r.CarrierCode,
		Currency:       r.Currency,
		TotalPrice:     r.TotalPrice,
		StringBarcode:  r.StringBarcode,
		LabelSize:      len(r.Label),
		Document:       r.AuditXML,
	}
}
