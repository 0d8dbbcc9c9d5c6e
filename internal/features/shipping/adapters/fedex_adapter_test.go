package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"parcel-gateway/internal/core/config"
	"parcel-gateway/internal/features/shipping/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// stubTransport records the last post and answers with a canned reply.
type stubTransport struct {
	reply    string
	err      error
	endpoint string
	body     string
	calls    int
}

func (s *stubTransport) Post(_ context.Context, endpoint, body string) (string, error) {
	s.calls++
	s.endpoint = endpoint
	s.body = body
	return s.reply, s.err
}

func newTestAdapter(cfg config.FedExConfig, transport *stubTransport) (*FedExAdapter, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := NewFedExAdapter(cfg, transport)
	a.builder = newTestBuilder()
	a.logger = zap.New(core)
	a.mapper = fedexMapper{logger: a.logger}
	return a, logs
}

func TestFedExAdapter_FindRates_RoundTrip(t *testing.T) {
	transport := &stubTransport{reply: rateReplyOneLine}
	a, _ := newTestAdapter(testCredentials, transport)

	origin := domain.Location{CountryCode: "DE", PostalCode: "10115"}
	destination := domain.Location{CountryCode: "FR", PostalCode: "75001"}
	packages := []domain.Package{domain.NewPackage(2, 10, 10, 10, domain.Metric)}

	resp, err := a.FindRates(context.Background(), origin, destination, packages, domain.ShipmentOptions{})
	require.NoError(t, err)

	root := readRequest(t, transport.body)
	line := root.FindElement("RequestedShipment/RequestedPackages")
	require.NotNil(t, line)
	assert.Equal(t, "KG", line.FindElement("Weight/Units").Text())
	assert.Equal(t, "2", line.FindElement("Weight/Value").Text())
	assert.Equal(t, []string{"10", "10", "10", "CM"}, allText(line, "Dimensions/*"))

	assert.True(t, resp.Success)
	assert.Equal(t, "SUCCESS - 0: Request was successfully processed.", resp.Message)
	assert.Equal(t, rateReplyOneLine, resp.RawXML)
	assert.Equal(t, transport.body, resp.RawRequest)

	require.Len(t, resp.Rates, 1)
	rate := resp.Rates[0]
	assert.Equal(t, 15.50, rate.TotalPrice)
	assert.Equal(t, "EUR", rate.Currency)
	assert.Equal(t, "FedEx", rate.Carrier)
	assert.Equal(t, "INTERNATIONAL_PRIORITY", rate.ServiceCode)
	assert.Equal(t, "FedEx International Priority", rate.ServiceName)
	assert.Equal(t, origin, rate.Origin)
	assert.Equal(t, destination, rate.Destination)
	assert.Equal(t, packages, rate.Packages)

	delivery := time.Date(2026, 10, 20, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, [2]time.Time{delivery, delivery}, rate.DeliveryRange)
}

func TestFedExAdapter_FindRates_SaturdayAndCurrency(t *testing.T) {
	a, _ := newTestAdapter(testCredentials, &stubTransport{reply: rateReplyMixed})

	resp, err := a.FindRates(context.Background(), toronto, denver, []domain.Package{{Kilograms: 1}}, domain.ShipmentOptions{})
	require.NoError(t, err)

	assert.True(t, resp.Success, "WARNING still counts as success")
	require.Len(t, resp.Rates, 2)
	assert.Equal(t, "FedEx 2 Day Saturday Delivery", resp.Rates[0].ServiceName)
	assert.Equal(t, "FEDEX_2_DAY", resp.Rates[0].ServiceCode)
	assert.Equal(t, "GBP", resp.Rates[0].Currency)
	assert.Equal(t, "FedEx New Service", resp.Rates[1].ServiceName)
	assert.True(t, resp.Rates[1].DeliveryRange[0].IsZero())
}

func TestFedExAdapter_FindRates_NoRates(t *testing.T) {
	a, _ := newTestAdapter(testCredentials, &stubTransport{reply: rateReplyEmpty})

	resp, err := a.FindRates(context.Background(), toronto, denver, []domain.Package{{Kilograms: 1}}, domain.ShipmentOptions{})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, noRatesMessage, resp.Message)
	assert.Empty(t, resp.Rates)
}

func TestFedExAdapter_FindRates_CarrierFailure(t *testing.T) {
	a, _ := newTestAdapter(testCredentials, &stubTransport{reply: rateReplyError})

	resp, err := a.FindRates(context.Background(), toronto, denver, []domain.Package{{Kilograms: 1}}, domain.ShipmentOptions{})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "ERROR - 1000: Authentication Failed", resp.Message)
}

func TestFedExAdapter_FindRates_NoPackages(t *testing.T) {
	transport := &stubTransport{reply: rateReplyOneLine}
	a, _ := newTestAdapter(testCredentials, transport)

	_, err := a.FindRates(context.Background(), toronto, denver, nil, domain.ShipmentOptions{})
	assert.ErrorIs(t, err, domain.ErrNoPackages)
	assert.Zero(t, transport.calls)
}

func TestFedExAdapter_FindRates_Malformed(t *testing.T) {
	a, _ := newTestAdapter(testCredentials, &stubTransport{reply: "<html>Service Unavailable</html>"})

	resp, err := a.FindRates(context.Background(), toronto, denver, []domain.Package{{Kilograms: 1}}, domain.ShipmentOptions{})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestFedExAdapter_TransportErrorPropagates(t *testing.T) {
	transportErr := errors.New("connection reset by peer")
	a, _ := newTestAdapter(testCredentials, &stubTransport{err: transportErr})

	_, err := a.FindTrackingInfo(context.Background(), "123", domain.ShipmentOptions{})
	assert.Same(t, transportErr, err)

	_, err = a.FindRates(context.Background(), toronto, denver, []domain.Package{{Kilograms: 1}}, domain.ShipmentOptions{})
	assert.Same(t, transportErr, err)

	_, err = a.Ship(context.Background(), domain.Party{}, domain.Party{}, domain.Package{}, domain.ShipmentOptions{})
	assert.Same(t, transportErr, err)

	exchange := a.LastExchange()
	require.NotNil(t, exchange)
	assert.NotEmpty(t, exchange.Request)
	assert.Empty(t, exchange.Response)
}

func TestFedExAdapter_EndpointSelection(t *testing.T) {
	transport := &stubTransport{reply: trackReplyNotFound}

	a, _ := newTestAdapter(testCredentials, transport)
	_, err := a.FindTrackingInfo(context.Background(), "123", domain.ShipmentOptions{})
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.fedex.com:443/xml", transport.endpoint)

	_, err = a.FindTrackingInfo(context.Background(), "123", domain.ShipmentOptions{Test: true})
	require.NoError(t, err)
	assert.Equal(t, "https://gatewaybeta.fedex.com:443/xml", transport.endpoint)

	testMode := testCredentials
	testMode.TestMode = true
	a, _ = newTestAdapter(testMode, transport)
	_, err = a.FindTrackingInfo(context.Background(), "123", domain.ShipmentOptions{})
	require.NoError(t, err)
	assert.Equal(t, "https://gatewaybeta.fedex.com:443/xml", transport.endpoint)
}

func TestFedExAdapter_FindTrackingInfo(t *testing.T) {
	a, _ := newTestAdapter(testCredentials, &stubTransport{reply: trackReply})

	resp, err := a.FindTrackingInfo(context.Background(), "123456789012", domain.ShipmentOptions{})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "123456789012", resp.TrackingNumber)
	assert.Equal(t, domain.TrackingStatusCompleted, resp.Status)
	assert.Equal(t, "DL", resp.StatusCode)
	assert.Equal(t, "Delivered", resp.StatusDescription)
	require.NotNil(t, resp.Destination)
	assert.Equal(t, domain.Location{CountryCode: "US", City: "DENVER", State: "CO"}, *resp.Destination)

	require.Len(t, resp.Events, 3, "the event with a blank country is dropped")
	assert.Equal(t, "Picked up", resp.Events[0].Description)
	assert.Equal(t, "In transit", resp.Events[1].Description)
	assert.Equal(t, "Delivered", resp.Events[2].Description)

	assert.Equal(t, time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC), resp.Events[0].Time)
	assert.Equal(t, time.Date(2026, 10, 13, 7, 10, 0, 0, time.UTC), resp.Events[1].Time)
	assert.Equal(t, time.Date(2026, 10, 14, 16, 20, 0, 0, time.UTC), resp.Events[2].Time)

	assert.Equal(t, domain.Location{CountryCode: "US", PostalCode: "38118", City: "MEMPHIS", State: "TN"}, resp.Events[0].Location)
}

func TestFedExAdapter_FindTrackingInfo_NotFound(t *testing.T) {
	a, _ := newTestAdapter(testCredentials, &stubTransport{reply: trackReplyNotFound})

	resp, err := a.FindTrackingInfo(context.Background(), "000", domain.ShipmentOptions{})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "ERROR - 6035: Invalid tracking numbers.", resp.Message)
	assert.Empty(t, resp.TrackingNumber)
	assert.Nil(t, resp.Destination)
	assert.Empty(t, resp.Events)
}

func TestFedExAdapter_FindTrackingInfo_UnknownIdentifierType(t *testing.T) {
	transport := &stubTransport{reply: trackReplyNotFound}
	a, logs := newTestAdapter(testCredentials, transport)

	_, err := a.FindTrackingInfo(context.Background(), "1", domain.ShipmentOptions{PackageIdentifierType: "barcode"})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessageSnippet("Unknown package identifier type").Len())
	assert.Equal(t, "TRACKING_NUMBER_OR_DOORTAG", readRequest(t, transport.body).FindElement("PackageIdentifier/Type").Text())
}

func TestFedExAdapter_Ship(t *testing.T) {
	a, _ := newTestAdapter(testCredentials, &stubTransport{reply: shipReplySuccess})

	shipper := domain.Party{Contact: domain.Contact{Name: "Ada", Phone: "1"}, Location: beverly}
	recipient := domain.Party{Contact: domain.Contact{Name: "Charles", Phone: "2"}, Location: denver}

	resp, err := a.Ship(context.Background(), shipper, recipient, domain.Package{Kilograms: 1}, domain.ShipmentOptions{PayorAccountNumber: "510087000"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "NOTE - 8522: Saturday delivery applied.", resp.Message)
	assert.Equal(t, "794698557200", resp.TrackingNumber)
	assert.Equal(t, "FDXG", resp.CarrierCode)
	assert.Equal(t, "GBP", resp.Currency)
	assert.Equal(t, 23.75, resp.TotalPrice)
	assert.Equal(t, []byte{1, 2, 3}, resp.BinaryBarcode)
	assert.Equal(t, "9612019794698557200", resp.StringBarcode)
	assert.Equal(t, []byte("%PDF-1.4"), resp.Label)
	assert.Equal(t, shipReplySuccess, resp.RawXML)

	record := resp.Redacted()
	assert.Equal(t, len("%PDF-1.4"), record.LabelSize)
	assert.NotContains(t, record.Document, labelImage)
	assert.NotContains(t, record.Document, testCredentials.Password)
}

func TestFedExAdapter_Ship_PartialPayload(t *testing.T) {
	a, logs := newTestAdapter(testCredentials, &stubTransport{reply: shipReplyNoLabel})

	resp, err := a.Ship(context.Background(), domain.Party{}, domain.Party{}, domain.Package{}, domain.ShipmentOptions{PayorAccountNumber: "1"})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "SUCCESS - 0000: Success")
	assert.Contains(t, resp.Message, errMissingLabel.Error())
	assert.Equal(t, "794698557299", resp.TrackingNumber)
	assert.Nil(t, resp.Label)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestFedExAdapter_Ship_Failure(t *testing.T) {
	a, logs := newTestAdapter(testCredentials, &stubTransport{reply: shipReplyError})

	resp, err := a.Ship(context.Background(), domain.Party{}, domain.Party{}, domain.Package{}, domain.ShipmentOptions{})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "ERROR - 3058: Recipient Postal code or routing code is required", resp.Message)
	assert.Empty(t, resp.TrackingNumber)
	assert.Empty(t, resp.CarrierCode)
	assert.Nil(t, resp.Label)
	assert.Nil(t, resp.BinaryBarcode)
	assert.Equal(t, 1, logs.FilterMessageSnippet("no payor account number").Len())
}

func TestFedExAdapter_LogXML(t *testing.T) {
	a, logs := newTestAdapter(testCredentials, &stubTransport{reply: shipReplySuccess})

	_, err := a.Ship(context.Background(), domain.Party{}, domain.Party{}, domain.Package{}, domain.ShipmentOptions{LogXML: true, PayorAccountNumber: "1"})
	require.NoError(t, err)

	entries := logs.FilterMessage("FedEx reply").All()
	require.Len(t, entries, 1)
	logged := entries[0].ContextMap()["xml"].(string)
	assert.Contains(t, logged, "794698557200")
	assert.NotContains(t, logged, labelImage)

	for _, entry := range logs.All() {
		for _, v := range entry.ContextMap() {
			if s, ok := v.(string); ok {
				assert.NotContains(t, s, testCredentials.Password)
			}
		}
	}
}

func TestFedExAdapter_LastExchange(t *testing.T) {
	a, _ := newTestAdapter(testCredentials, &stubTransport{reply: trackReply})
	assert.Nil(t, a.LastExchange())

	_, err := a.FindTrackingInfo(context.Background(), "123456789012", domain.ShipmentOptions{})
	require.NoError(t, err)

	exchange := a.LastExchange()
	require.NotNil(t, exchange)
	assert.Contains(t, exchange.Request, "123456789012")
	assert.Equal(t, trackReply, exchange.Response)
}

func TestFedExAdapter_Identity(t *testing.T) {
	a := NewFedExAdapter(testCredentials, &stubTransport{})
	assert.Equal(t, "FedEx", a.Name())
	assert.True(t, a.SupportsCarrier("fedex"))
	assert.True(t, a.SupportsCarrier("FedEx"))
	assert.False(t, a.SupportsCarrier("ups"))
	assert.Equal(t, "https://gatewaybeta.fedex.com:443/xml", Endpoint(true))
	assert.Equal(t, "https://gateway.fedex.com:443/xml", Endpoint(false))
}
