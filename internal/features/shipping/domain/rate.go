package domain

import "time"

// RateEstimate is one priced service option for moving packages between two locations.
type RateEstimate struct {
	Origin      Location  `json:"origin"`
	Destination Location  `json:"destination"`
	Carrier     string    `json:"carrier"`
	ServiceName string    `json:"service_name"`
	ServiceCode string    `json:"service_code"`
	TotalPrice  float64   `json:"total_price"`
	Currency    string    `json:"currency"`
	Packages    []Package `json:"packages"`
	// DeliveryRange holds the earliest and latest expected delivery; both ends
	// are zero when the carrier gives no commitment.
	DeliveryRange [2]time.Time `json:"delivery_range"`
}

// RateResponse is the result of a rate request.
type RateResponse struct {
	Response
	Rates []RateEstimate `json:"rates"`
}
