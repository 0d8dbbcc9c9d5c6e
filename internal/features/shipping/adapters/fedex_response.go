package adapter

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"parcel-gateway/internal/features/shipping/domain"

	"github.com/beevik/etree"
	"github.com/samber/lo"
)

// successSeverities are the notification severities that still carry a usable reply.
var successSeverities = []string{"SUCCESS", "WARNING", "NOTE"}

var (
	errMissingShipmentDetail = errors.New("reply has no CompletedShipmentDetail")
	errMissingLabel          = errors.New("reply has no label image")
)

// fedexStatus is the first Notifications block of a reply.
type fedexStatus struct {
	Severity string
	Code     string
	Message  string
}

func (s fedexStatus) Success() bool {
	return lo.Contains(successSeverities, s.Severity)
}

func (s fedexStatus) String() string {
	return fmt.Sprintf("%s - %s: %s", s.Severity, s.Code, s.Message)
}

// fedexAddress is an Address or DestinationAddress node.
type fedexAddress struct {
	City        string
	State       string
	PostalCode  string
	CountryCode string
}

type rateLine struct {
	ServiceCode       string
	ServiceType       string
	Amount            float64
	Currency          string
	DeliveryTimestamp string
}

type trackEvent struct {
	Description string
	Timestamp   string
	Address     fedexAddress
}

type trackDetails struct {
	TrackingNumber    string
	StatusCode        string
	StatusDescription string
	Destination       *fedexAddress
	Events            []trackEvent
}

type shipDetails struct {
	TrackingNumber string
	CarrierCode    string
	Amount         float64
	Currency       string
	BinaryBarcode  []byte
	StringBarcode  string
	Label          []byte
}

// shipReply is a parsed ProcessShipmentReply. PayloadErr is set when the
// status reported success but the shipment detail could not be extracted.
type shipReply struct {
	Status     fedexStatus
	Details    *shipDetails
	PayloadErr error
	AuditXML   string
}

// parseReply reads a reply document, checks its root element and extracts
// its status. Element names are matched without regard to namespace prefix.
func parseReply(raw, rootTag string) (*etree.Document, *etree.Element, fedexStatus, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return nil, nil, fedexStatus{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, nil, fedexStatus{}, fmt.Errorf("%w: empty document", domain.ErrMalformedResponse)
	}
	if root.Tag != rootTag {
		return nil, nil, fedexStatus{}, fmt.Errorf("%w: expected %s, got %s", domain.ErrMalformedResponse, rootTag, root.Tag)
	}

	notification := root.SelectElement("Notifications")
	if notification == nil {
		return nil, nil, fedexStatus{}, fmt.Errorf("%w: %s has no Notifications", domain.ErrMalformedResponse, rootTag)
	}

	status := fedexStatus{
		Severity: textAt(notification, "Severity"),
		Code:     textAt(notification, "Code"),
		Message:  textAt(notification, "Message"),
	}
	return doc, root, status, nil
}

func parseRateReply(raw string) (fedexStatus, []rateLine, error) {
	_, root, status, err := parseReply(raw, "RateReply")
	if err != nil {
		return status, nil, err
	}

	var lines []rateLine
	for _, detail := range root.SelectElements("RateReplyDetails") {
		code := textAt(detail, "ServiceType")
		serviceType := code
		if appliesSaturdayDelivery(detail) {
			serviceType = code + "_" + saturdayDelivery
		}

		charge := detail.FindElement("RatedShipmentDetails/ShipmentRateDetail/TotalNetCharge")
		lines = append(lines, rateLine{
			ServiceCode:       code,
			ServiceType:       serviceType,
			Amount:            parseAmount(textAt(charge, "Amount")),
			Currency:          normalizeCurrency(textAt(charge, "Currency")),
			DeliveryTimestamp: textAt(detail, "DeliveryTimestamp"),
		})
	}

	return status, lines, nil
}

func appliesSaturdayDelivery(detail *etree.Element) bool {
	return lo.ContainsBy(detail.SelectElements("AppliedOptions"), func(el *etree.Element) bool {
		return strings.TrimSpace(el.Text()) == saturdayDelivery
	})
}

func parseTrackReply(raw string) (fedexStatus, *trackDetails, error) {
	_, root, status, err := parseReply(raw, "TrackReply")
	if err != nil || !status.Success() {
		return status, nil, err
	}

	node := root.SelectElement("TrackDetails")
	if node == nil {
		return status, &trackDetails{}, nil
	}

	details := &trackDetails{
		TrackingNumber:    textAt(node, "TrackingNumber"),
		StatusCode:        textAt(node, "StatusCode"),
		StatusDescription: textAt(node, "StatusDescription"),
	}
	if dest := node.SelectElement("DestinationAddress"); dest != nil {
		address := readAddress(dest)
		details.Destination = &address
	}

	for _, event := range node.SelectElements("Events") {
		details.Events = append(details.Events, trackEvent{
			Description: textAt(event, "EventDescription"),
			Timestamp:   textAt(event, "Timestamp"),
			Address:     readAddress(event.SelectElement("Address")),
		})
	}

	return status, details, nil
}

// parseShipReply extracts the completed shipment. Every label part image is
// removed from AuditXML whether or not extraction succeeded.
func parseShipReply(raw string) (shipReply, error) {
	doc, root, status, err := parseReply(raw, "ProcessShipmentReply")
	if err != nil {
		return shipReply{}, err
	}

	reply := shipReply{Status: status}
	if status.Success() {
		reply.Details, reply.PayloadErr = readShipDetails(root)
	}

	for _, image := range root.FindElements("CompletedShipmentDetail/CompletedPackageDetails/Label/Parts/Image") {
		image.SetText("")
	}
	reply.AuditXML, err = doc.WriteToString()
	if err != nil {
		return shipReply{}, fmt.Errorf("failed to serialize redacted reply: %w", err)
	}

	return reply, nil
}

// readShipDetails returns whatever it extracted before failing.
func readShipDetails(root *etree.Element) (*shipDetails, error) {
	completed := root.SelectElement("CompletedShipmentDetail")
	if completed == nil {
		return &shipDetails{}, errMissingShipmentDetail
	}

	charge := completed.FindElement("ShipmentRating/ShipmentRateDetails/TotalNetCharge")
	details := &shipDetails{
		TrackingNumber: textAt(completed, "CompletedPackageDetails/TrackingIds/TrackingNumber"),
		CarrierCode:    textAt(completed, "CarrierCode"),
		Amount:         parseAmount(textAt(charge, "Amount")),
		Currency:       normalizeCurrency(textAt(charge, "Currency")),
		StringBarcode:  textAt(completed, "CompletedPackageDetails/OperationalDetail/Barcodes/StringBarcodes/Value"),
	}

	barcode, err := decodeBase64(textAt(completed, "CompletedPackageDetails/OperationalDetail/Barcodes/BinaryBarcodes/Value"))
	if err != nil {
		return details, fmt.Errorf("binary barcode: %w", err)
	}
	details.BinaryBarcode = barcode

	image := textAt(completed, "CompletedPackageDetails/Label/Parts/Image")
	if image == "" {
		return details, errMissingLabel
	}
	label, err := decodeBase64(image)
	if err != nil {
		return details, fmt.Errorf("label image: %w", err)
	}
	details.Label = label

	return details, nil
}

func readAddress(el *etree.Element) fedexAddress {
	return fedexAddress{
		City:        textAt(el, "City"),
		State:       textAt(el, "StateOrProvinceCode"),
		PostalCode:  textAt(el, "PostalCode"),
		CountryCode: textAt(el, "CountryCode"),
	}
}

// textAt returns the trimmed text at path below el, or "" when either is absent.
func textAt(el *etree.Element, path string) string {
	if el == nil {
		return ""
	}
	child := el.FindElement(path)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// decodeBase64 tolerates the line breaks FedEx inserts into long payloads.
func decodeBase64(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
	return base64.StdEncoding.DecodeString(s)
}
