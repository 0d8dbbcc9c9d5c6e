package domain

import "strings"

// AddressType classifies a delivery point as commercial or residential.
type AddressType string

const (
	// AddressTypeUnspecified means the caller did not classify the address.
	AddressTypeUnspecified AddressType = ""
	// AddressTypeCommercial marks a business address.
	AddressTypeCommercial AddressType = "commercial"
	// AddressTypeResidential marks an address explicitly flagged as non-commercial.
	AddressTypeResidential AddressType = "residential"
)

// Location is an origin, destination or scan location of a shipment.
type Location struct {
	// CountryCode is the ISO 3166 alpha-2 country code.
	CountryCode string `json:"country_code"`
	// PostalCode is the postal or ZIP code.
	PostalCode string `json:"postal_code,omitempty"`
	// City is the city name.
	City string `json:"city,omitempty"`
	// State is the state or province code.
	State string `json:"state,omitempty"`
	// Address1 is the first street line.
	Address1 string `json:"address1,omitempty"`
	// Address2 is the optional second street line.
	Address2 string `json:"address2,omitempty"`
	// AddressType tells whether the address is commercial or residential.
	AddressType AddressType `json:"address_type,omitempty"`
}

// Country returns the upper-cased country code.
func (l Location) Country() string {
	return strings.ToUpper(strings.TrimSpace(l.CountryCode))
}

// Residential reports whether the location was explicitly marked non-commercial.
func (l Location) Residential() bool {
	return l.AddressType == AddressTypeResidential
}

// Commercial reports whether the location was explicitly marked commercial.
func (l Location) Commercial() bool {
	return l.AddressType == AddressTypeCommercial
}

// Party couples a contact with the location it ships from or to.
type Party struct {
	Contact  Contact  `json:"contact"`
	Location Location `json:"location"`
}
