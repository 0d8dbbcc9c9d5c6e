package domain

import "time"

// TrackingStatus represents the current global status of a shipment.
type TrackingStatus string

const (
	// TrackingStatusProcessing indicates the shipment is moving through the network.
	TrackingStatusProcessing TrackingStatus = "PROCESSING"
	// TrackingStatusCompleted indicates the shipment has been delivered.
	TrackingStatusCompleted TrackingStatus = "COMPLETED"
	// TrackingStatusReturn indicates the shipment is going back to the sender.
	TrackingStatusReturn TrackingStatus = "RETURN"
	// TrackingStatusIncidence indicates a delivery exception or cancellation.
	TrackingStatusIncidence TrackingStatus = "INCIDENCE"
)

// ShipmentEvent is a single scan in the shipment's history.
type ShipmentEvent struct {
	// Description is the carrier's text for the scan.
	Description string `json:"description"`
	// Time is the scan's wall-clock time, expressed in UTC.
	Time time.Time `json:"time"`
	// Location is where the scan happened.
	Location Location `json:"location"`
}

// TrackingResponse is the result of a tracking request.
type TrackingResponse struct {
	Response
	TrackingNumber    string          `json:"tracking_number,omitempty"`
	Destination       *Location       `json:"destination,omitempty"`
	Status            TrackingStatus  `json:"status,omitempty"`
	StatusCode        string          `json:"status_code,omitempty"`
	StatusDescription string          `json:"status_description,omitempty"`
	Events            []ShipmentEvent `json:"events"`
}
