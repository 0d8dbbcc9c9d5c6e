package adapter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"parcel-gateway/internal/core/config"
	"parcel-gateway/internal/features/shipping/domain"

	"github.com/beevik/etree"
	"github.com/samber/lo"
)

// fedexService identifies one versioned FedEx web service.
type fedexService struct {
	root         string
	namespace    string
	id           string
	major        string
	intermediate string
	minor        string
}

var (
	rateService  = fedexService{root: "RateRequest", namespace: "http://fedex.com/ws/rate/v6", id: "crs", major: "6", intermediate: "0", minor: "0"}
	trackService = fedexService{root: "TrackRequest", namespace: "http://fedex.com/ws/track/v3", id: "trck", major: "3", intermediate: "0", minor: "0"}
	shipService  = fedexService{root: "ProcessShipmentRequest", namespace: "http://fedex.com/ws/ship/v10", id: "ship", major: "10", intermediate: "0", minor: "0"}
)

const (
	thermalDocTabStock  = "STOCK_4X6.75_LEADING_DOC_TAB"
	shipDateRangeLayout = "2006-01-02"
)

// requestBuilder serializes the three FedEx request kinds.
type requestBuilder struct {
	credentials   config.FedExConfig
	now           func() time.Time
	transactionID func() string
}

// newDocument starts a request document with the credential header and version block.
func (b requestBuilder) newDocument(svc fedexService, opts domain.ShipmentOptions) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(svc.root)
	root.CreateAttr("xmlns", svc.namespace)

	b.writeHeader(root, opts)

	version := root.CreateElement("Version")
	addText(version, "ServiceId", svc.id)
	addText(version, "Major", svc.major)
	addText(version, "Intermediate", svc.intermediate)
	addText(version, "Minor", svc.minor)

	return doc, root
}

func (b requestBuilder) writeHeader(root *etree.Element, opts domain.ShipmentOptions) {
	credential := root.CreateElement("WebAuthenticationDetail").CreateElement("UserCredential")
	addText(credential, "Key", b.credentials.Key)
	addText(credential, "Password", b.credentials.Password)

	client := root.CreateElement("ClientDetail")
	addText(client, "AccountNumber", b.credentials.AccountNumber)
	addText(client, "MeterNumber", b.credentials.MeterNumber)

	transactionID := opts.PONumber
	if transactionID == "" {
		transactionID = b.transactionID()
	}
	addText(root.CreateElement("TransactionDetail"), "CustomerTransactionId", transactionID)
}

// rate builds a RateRequest quoting every service for the given packages.
func (b requestBuilder) rate(origin, destination domain.Location, packages []domain.Package, opts domain.ShipmentOptions) (string, error) {
	units := UnitSystemFor(origin.Country())
	doc, root := b.newDocument(rateService, opts)

	addText(root, "ReturnTransitAndCommit", "true")
	addText(root, "VariableOptions", saturdayDelivery)

	rs := root.CreateElement("RequestedShipment")
	addText(rs, "ShipTimestamp", b.now().Format(time.RFC3339))
	addText(rs, "DropoffType", wireCode(fedexDropoffTypes, opts.DropoffType))
	addText(rs, "PackagingType", wireCode(fedexPackagingTypes, opts.PackagingType))

	shipper := origin
	if opts.Shipper != nil {
		shipper = *opts.Shipper
	}
	writeShortLocation(rs, "Shipper", shipper)
	writeShortLocation(rs, "Recipient", destination)
	if opts.Shipper != nil && *opts.Shipper != origin {
		writeShortLocation(rs, "Origin", origin)
	}

	addText(rs, "RateRequestTypes", "ACCOUNT")
	addText(rs, "PackageCount", strconv.Itoa(len(packages)))
	for _, pkg := range packages {
		line := rs.CreateElement("RequestedPackages")
		writeMeasurements(line, pkg, units)
		if opts.AdultSignature {
			services := line.CreateElement("SpecialServicesRequested")
			addText(services, "SpecialServiceTypes", "SIGNATURE_OPTION")
			addText(services.CreateElement("SignatureOptionDetail"), "OptionType", "ADULT")
		}
	}

	return doc.WriteToString()
}

// track builds a TrackRequest for one package identifier.
func (b requestBuilder) track(identifier string, opts domain.ShipmentOptions) (string, error) {
	doc, root := b.newDocument(trackService, opts)

	pkg := root.CreateElement("PackageIdentifier")
	addText(pkg, "Value", identifier)
	identifierType, _ := packageIdentifierType(opts.PackageIdentifierType)
	addText(pkg, "Type", identifierType)

	if !opts.ShipDateRangeBegin.IsZero() {
		addText(root, "ShipDateRangeBegin", opts.ShipDateRangeBegin.Format(shipDateRangeLayout))
	}
	if !opts.ShipDateRangeEnd.IsZero() {
		addText(root, "ShipDateRangeEnd", opts.ShipDateRangeEnd.Format(shipDateRangeLayout))
	}
	addText(root, "IncludeDetailedScans", "1")

	return doc.WriteToString()
}

// ship builds a ProcessShipmentRequest for a single package.
func (b requestBuilder) ship(shipper, recipient domain.Party, pkg domain.Package, opts domain.ShipmentOptions) (string, error) {
	units := UnitSystemFor(shipper.Location.Country())
	doc, root := b.newDocument(shipService, opts)

	shipTime := opts.ShipTimestamp
	if shipTime.IsZero() {
		shipTime = b.now()
	}

	rs := root.CreateElement("RequestedShipment")
	addText(rs, "ShipTimestamp", shipTime.Format(time.RFC3339))
	addText(rs, "DropoffType", wireCode(fedexDropoffTypes, opts.DropoffType))
	addText(rs, "ServiceType", opts.ServiceType)
	addText(rs, "PackagingType", wireCode(fedexPackagingTypes, opts.PackagingType))

	writeParty(rs, "Shipper", shipper)
	writeParty(rs, "Recipient", recipient)

	payment := rs.CreateElement("ShippingChargesPayment")
	addText(payment, "PaymentType", wireCode(fedexPaymentTypes, opts.PaymentType))
	payor := payment.CreateElement("Payor")
	addText(payor, "AccountNumber", opts.PayorAccountNumber)
	addText(payor, "CountryCode", shipper.Location.Country())

	services := rs.CreateElement("SpecialServicesRequested")
	if opts.SaturdayDelivery {
		addText(services, "SpecialServiceTypes", saturdayDelivery)
	}
	addText(services, "SpecialServiceTypes", "EMAIL_NOTIFICATION")
	notify := services.CreateElement("EMailNotificationDetail").CreateElement("Recipients")
	addText(notify, "EMailNotificationRecipientType", "RECIPIENT")
	addText(notify, "EMailAddress", opts.ShipperEmail)
	addText(notify, "NotificationEventsRequested", "ON_SHIPMENT")
	addText(notify, "Format", "HTML")
	addText(notify.CreateElement("Localization"), "LanguageCode", "EN")

	label := rs.CreateElement("LabelSpecification")
	addText(label, "LabelFormatType", "COMMON2D")
	addText(label, "ImageType", opts.ImageType)
	addText(label, "LabelStockType", opts.LabelStockType)
	if opts.LabelStockType == thermalDocTabStock {
		addText(label, "LabelPrintingOrientation", "TOP_EDGE_OF_TEXT_FIRST")
	}

	addText(rs, "RateRequestTypes", "ACCOUNT")
	addText(rs, "PackageCount", "1")

	line := rs.CreateElement("RequestedPackageLineItems")
	addText(line, "SequenceNumber", "1")
	writeMeasurements(line, pkg, units)
	if opts.PONumber != "" {
		writeCustomerReference(line, "P_O_NUMBER", opts.PONumber)
	}
	if opts.InvoiceNumber != "" {
		writeCustomerReference(line, "INVOICE_NUMBER", opts.InvoiceNumber)
	}
	if opts.Alcohol {
		addText(line.CreateElement("SpecialServicesRequested"), "SpecialServiceTypes", "ALCOHOL")
	}

	return doc.WriteToString()
}

func addText(parent *etree.Element, tag, text string) *etree.Element {
	el := parent.CreateElement(tag)
	el.SetText(text)
	return el
}

// writeMeasurements emits the Weight and Dimensions blocks in the given units.
func writeMeasurements(parent *etree.Element, pkg domain.Package, units domain.UnitSystem) {
	weight := parent.CreateElement("Weight")
	addText(weight, "Units", weightUnits(units))
	addText(weight, "Value", formatWeight(pkg.Weight(units)))

	dims := pkg.Dimensions(units)
	dimensions := parent.CreateElement("Dimensions")
	for i, axis := range []string{"Length", "Width", "Height"} {
		addText(dimensions, axis, strconv.Itoa(roundDimension(dims[i])))
	}
	addText(dimensions, "Units", dimensionUnits(units))
}

func writeShortLocation(parent *etree.Element, name string, loc domain.Location) {
	address := parent.CreateElement(name).CreateElement("Address")
	addText(address, "PostalCode", loc.PostalCode)
	addText(address, "CountryCode", loc.Country())
	if loc.Residential() {
		addText(address, "Residential", "true")
	}
}

func writeParty(parent *etree.Element, name string, party domain.Party) {
	node := parent.CreateElement(name)

	contact := node.CreateElement("Contact")
	addText(contact, "PersonName", party.Contact.PersonName())
	if company := party.Contact.CompanyName(); company != "" {
		addText(contact, "CompanyName", company)
	}
	addText(contact, "PhoneNumber", party.Contact.PhoneNumber())

	loc := party.Location
	address := node.CreateElement("Address")
	addText(address, "StreetLines", loc.Address1)
	if loc.Address2 != "" {
		addText(address, "StreetLines", loc.Address2)
	}
	addText(address, "City", loc.City)
	addText(address, "StateOrProvinceCode", loc.State)
	addText(address, "PostalCode", loc.PostalCode)
	addText(address, "CountryCode", loc.Country())
	if loc.Residential() {
		addText(address, "Residential", "true")
	}
}

func writeCustomerReference(parent *etree.Element, kind, value string) {
	ref := parent.CreateElement("CustomerReferences")
	addText(ref, "CustomerReferenceType", kind)
	addText(ref, "Value", value)
}

// packageIdentifierType resolves a friendly identifier name or wire code.
// Unknown values fall back to a tracking number lookup and report false.
func packageIdentifierType(value string) (string, bool) {
	if code, ok := fedexPackageIdentifierTypes[strings.ToLower(value)]; ok {
		return code, true
	}
	if lo.Contains(lo.Values(fedexPackageIdentifierTypes), value) {
		return value, true
	}
	return fedexPackageIdentifierTypes[domain.DefaultPackageIdentifierType], false
}

// String describes the service for log fields.
func (s fedexService) String() string {
	return fmt.Sprintf("%s v%s.%s.%s", s.id, s.major, s.intermediate, s.minor)
}
