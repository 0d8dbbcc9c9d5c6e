package domain

// Response carries the outcome every carrier operation reports, together with
// the wire payloads it was derived from.
type Response struct {
	// Success is false when the carrier reported a failure.
	Success bool `json:"success"`
	// Message is the human-readable status returned by the carrier.
	Message string `json:"message"`
	// RawXML is the reply exactly as received.
	RawXML string `json:"-"`
	// RawRequest is the request exactly as sent.
	RawRequest string `json:"-"`
}

// Exchange is a single request/reply pair kept for diagnostics.
type Exchange struct {
	Request  string
	Response string
}
