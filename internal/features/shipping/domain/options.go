package domain

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// Defaults applied to ShipmentOptions fields left empty by the caller.
const (
	DefaultDropoffType           = "REGULAR_PICKUP"
	DefaultPackagingType         = "YOUR_PACKAGING"
	DefaultServiceType           = "GROUND_HOME_DELIVERY"
	DefaultPaymentType           = "SENDER"
	DefaultImageType             = "PDF"
	DefaultLabelStockType        = "PAPER_8.5X11_TOP_HALF_LABEL"
	DefaultPackageIdentifierType = "tracking_number"
)

// ShipmentOptions holds every per-call option the carrier operations recognize.
// The zero value is valid; WithDefaults fills the documented defaults.
type ShipmentOptions struct {
	DropoffType           string
	PackagingType         string
	ServiceType           string
	PaymentType           string
	PayorAccountNumber    string
	SaturdayDelivery      bool
	Alcohol               bool
	AdultSignature        bool
	ImageType             string
	LabelStockType        string
	PONumber              string
	InvoiceNumber         string
	ShipTimestamp         time.Time
	ShipperEmail          string
	RecipientEmail        string
	PackageIdentifierType string
	ShipDateRangeBegin    time.Time
	ShipDateRangeEnd      time.Time
	Test                  bool
	LogXML                bool

	// Shipper overrides the rate request shipper when it differs from the origin.
	Shipper *Location
}

// WithDefaults returns a copy with every empty defaulted field filled in.
func (o ShipmentOptions) WithDefaults() ShipmentOptions {
	if o.DropoffType == "" {
		o.DropoffType = DefaultDropoffType
	}
	if o.PackagingType == "" {
		o.PackagingType = DefaultPackagingType
	}
	if o.ServiceType == "" {
		o.ServiceType = DefaultServiceType
	}
	if o.PaymentType == "" {
		o.PaymentType = DefaultPaymentType
	}
	if o.ImageType == "" {
		o.ImageType = DefaultImageType
	}
	if o.LabelStockType == "" {
		o.LabelStockType = DefaultLabelStockType
	}
	if o.PackageIdentifierType == "" {
		o.PackageIdentifierType = DefaultPackageIdentifierType
	}
	return o
}

// ParseOptions converts a loosely typed option bag into ShipmentOptions.
// Unknown keys and nil values are ignored. A recognized key holding a value
// that cannot be coerced to its type yields ErrInvalidOption.
func ParseOptions(raw map[string]any) (ShipmentOptions, error) {
	var o ShipmentOptions

	for key, value := range raw {
		if value == nil {
			continue
		}

		var err error
		switch key {
		case "dropoff_type":
			o.DropoffType, err = cast.ToStringE(value)
		case "packaging_type":
			o.PackagingType, err = cast.ToStringE(value)
		case "service_type":
			o.ServiceType, err = cast.ToStringE(value)
		case "payment_type":
			o.PaymentType, err = cast.ToStringE(value)
		case "payor_account_number":
			o.PayorAccountNumber, err = cast.ToStringE(value)
		case "saturday_delivery":
			o.SaturdayDelivery, err = cast.ToBoolE(value)
		case "alcohol":
			o.Alcohol, err = cast.ToBoolE(value)
		case "adult_signature":
			o.AdultSignature, err = cast.ToBoolE(value)
		case "image_type":
			o.ImageType, err = cast.ToStringE(value)
		case "label_stock_type":
			o.LabelStockType, err = cast.ToStringE(value)
		case "po_number":
			o.PONumber, err = cast.ToStringE(value)
		case "invoice_number":
			o.InvoiceNumber, err = cast.ToStringE(value)
		case "ship_timestamp":
			o.ShipTimestamp, err = cast.ToTimeE(value)
		case "shipper_email":
			o.ShipperEmail, err = cast.ToStringE(value)
		case "recipient_email":
			o.RecipientEmail, err = cast.ToStringE(value)
		case "package_identifier_type":
			o.PackageIdentifierType, err = cast.ToStringE(value)
		case "ship_date_range_begin":
			o.ShipDateRangeBegin, err = cast.ToTimeE(value)
		case "ship_date_range_end":
			o.ShipDateRangeEnd, err = cast.ToTimeE(value)
		case "test":
			o.Test, err = cast.ToBoolE(value)
		case "log_xml":
			o.LogXML, err = cast.ToBoolE(value)
		default:
			continue
		}

		if err != nil {
			return ShipmentOptions{}, fmt.Errorf("%w: %s: %v", ErrInvalidOption, key, err)
		}
	}

	return o, nil
}
