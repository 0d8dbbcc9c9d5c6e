package adapter

import (
	"strings"

	"parcel-gateway/internal/features/shipping/domain"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const saturdayDelivery = "SATURDAY_DELIVERY"

// fedexServiceNames maps service codes to display names.
var fedexServiceNames = map[string]string{
	"PRIORITY_OVERNIGHT":                       "FedEx Priority Overnight",
	"PRIORITY_OVERNIGHT_SATURDAY_DELIVERY":     "FedEx Priority Overnight Saturday Delivery",
	"FEDEX_2_DAY":                              "FedEx 2 Day",
	"FEDEX_2_DAY_SATURDAY_DELIVERY":            "FedEx 2 Day Saturday Delivery",
	"STANDARD_OVERNIGHT":                       "FedEx Standard Overnight",
	"FIRST_OVERNIGHT":                          "FedEx First Overnight",
	"FIRST_OVERNIGHT_SATURDAY_DELIVERY":        "FedEx First Overnight Saturday Delivery",
	"FEDEX_EXPRESS_SAVER":                      "FedEx Express Saver",
	"FEDEX_1_DAY_FREIGHT":                      "FedEx 1 Day Freight",
	"FEDEX_1_DAY_FREIGHT_SATURDAY_DELIVERY":    "FedEx 1 Day Freight Saturday Delivery",
	"FEDEX_2_DAY_FREIGHT":                      "FedEx 2 Day Freight",
	"FEDEX_2_DAY_FREIGHT_SATURDAY_DELIVERY":    "FedEx 2 Day Freight Saturday Delivery",
	"FEDEX_3_DAY_FREIGHT":                      "FedEx 3 Day Freight",
	"FEDEX_3_DAY_FREIGHT_SATURDAY_DELIVERY":    "FedEx 3 Day Freight Saturday Delivery",
	"INTERNATIONAL_PRIORITY":                   "FedEx International Priority",
	"INTERNATIONAL_PRIORITY_SATURDAY_DELIVERY": "FedEx International Priority Saturday Delivery",
	"INTERNATIONAL_ECONOMY":                    "FedEx International Economy",
	"INTERNATIONAL_FIRST":                      "FedEx International First",
	"INTERNATIONAL_PRIORITY_FREIGHT":           "FedEx International Priority Freight",
	"INTERNATIONAL_ECONOMY_FREIGHT":            "FedEx International Economy Freight",
	"GROUND_HOME_DELIVERY":                     "FedEx Ground Home Delivery",
	"FEDEX_GROUND":                             "FedEx Ground",
	"INTERNATIONAL_GROUND":                     "FedEx International Ground",
}

var fedexPackagingTypes = map[string]string{
	"fedex_envelope":  "FEDEX_ENVELOPE",
	"fedex_pak":       "FEDEX_PAK",
	"fedex_box":       "FEDEX_BOX",
	"fedex_tube":      "FEDEX_TUBE",
	"fedex_10_kg_box": "FEDEX_10KG_BOX",
	"fedex_25_kg_box": "FEDEX_25KG_BOX",
	"your_packaging":  "YOUR_PACKAGING",
}

var fedexDropoffTypes = map[string]string{
	"regular_pickup":          "REGULAR_PICKUP",
	"request_courier":         "REQUEST_COURIER",
	"dropbox":                 "DROP_BOX",
	"business_service_center": "BUSINESS_SERVICE_CENTER",
	"station":                 "STATION",
}

var fedexPaymentTypes = map[string]string{
	"sender":      "SENDER",
	"recipient":   "RECIPIENT",
	"third_party": "THIRD_PARTY",
	"collect":     "COLLECT",
}

var fedexPackageIdentifierTypes = map[string]string{
	"tracking_number":           "TRACKING_NUMBER_OR_DOORTAG",
	"door_tag":                  "TRACKING_NUMBER_OR_DOORTAG",
	"rma":                       "RMA",
	"ground_shipment_id":        "GROUND_SHIPMENT_ID",
	"ground_invoice_number":     "GROUND_INVOICE_NUMBER",
	"ground_customer_reference": "GROUND_CUSTOMER_REFERENCE",
	"ground_po":                 "GROUND_PO",
	"express_reference":         "EXPRESS_REFERENCE",
	"express_mps_master":        "EXPRESS_MPS_MASTER",
}

// fedexCarrierCodes maps operating companies to their carrier codes.
var fedexCarrierCodes = map[string]string{
	"fedex_ground":  "FDXG",
	"fedex_express": "FDXE",
}

// knownCarrierCode reports whether code belongs to a FedEx operating company.
func knownCarrierCode(code string) bool {
	return lo.Contains(lo.Values(fedexCarrierCodes), code)
}

// ServiceNameForCode returns the display name for a FedEx service code,
// deriving one from the code itself when it is not in the table.
func ServiceNameForCode(code string) string {
	if name, ok := fedexServiceNames[code]; ok {
		return name
	}
	words := strings.ReplaceAll(strings.ToLower(code), "_", " ")
	name := cases.Title(language.English).String(words)
	return "FedEx " + strings.Replace(name, "Fedex ", "", 1)
}

// normalizeCurrency maps FedEx's pound sterling code to ISO 4217.
func normalizeCurrency(code string) string {
	if strings.EqualFold(strings.TrimSpace(code), "UKL") {
		return "GBP"
	}
	return code
}

// wireCode resolves a friendly alias to its wire code; unknown values pass through.
func wireCode(aliases map[string]string, value string) string {
	if code, ok := aliases[strings.ToLower(value)]; ok {
		return code
	}
	return value
}

// fedexTrackStatuses maps TrackDetails/StatusCode to the global shipment status.
var fedexTrackStatuses = map[string]domain.TrackingStatus{
	"PU": domain.TrackingStatusProcessing, // Picked up
	"OC": domain.TrackingStatusProcessing, // Order created
	"IT": domain.TrackingStatusProcessing, // In transit
	"AR": domain.TrackingStatusProcessing, // At destination sort facility
	"DP": domain.TrackingStatusProcessing, // Departed FedEx location
	"OD": domain.TrackingStatusProcessing, // On FedEx vehicle for delivery
	"AF": domain.TrackingStatusProcessing, // At FedEx facility
	"FD": domain.TrackingStatusProcessing, // At FedEx destination
	"PM": domain.TrackingStatusProcessing, // In progress
	"HL": domain.TrackingStatusProcessing, // Hold at location
	"SP": domain.TrackingStatusProcessing, // Split status
	"DL": domain.TrackingStatusCompleted,  // Delivered
	"RS": domain.TrackingStatusReturn,     // Return to shipper
	"DE": domain.TrackingStatusIncidence,  // Delivery exception
	"CA": domain.TrackingStatusIncidence,  // Shipment cancelled
	"SE": domain.TrackingStatusIncidence,  // Shipment exception
	"CD": domain.TrackingStatusIncidence,  // Clearance delay
}
