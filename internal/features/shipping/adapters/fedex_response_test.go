package adapter

import (
	"testing"

	"parcel-gateway/internal/features/shipping/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFedExStatus(t *testing.T) {
	for _, severity := range []string{"SUCCESS", "WARNING", "NOTE"} {
		assert.True(t, fedexStatus{Severity: severity}.Success(), severity)
	}
	for _, severity := range []string{"ERROR", "FAILURE", "success", ""} {
		assert.False(t, fedexStatus{Severity: severity}.Success(), severity)
	}
	assert.Equal(t, "ERROR - 1000: Authentication Failed", fedexStatus{Severity: "ERROR", Code: "1000", Message: "Authentication Failed"}.String())
}

func TestParseReply_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not xml", "gateway timeout"},
		{"empty", ""},
		{"truncated", "<RateReply><Notifications><Severity>SUCCESS"},
		{"wrong root", "<TrackReply><Notifications><Severity>SUCCESS</Severity></Notifications></TrackReply>"},
		{"no notifications", "<RateReply><HighestSeverity>SUCCESS</HighestSeverity></RateReply>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseRateReply(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedResponse)
		})
	}
}

func TestParseRateReply(t *testing.T) {
	status, lines, err := parseRateReply(rateReplyMixed)
	require.NoError(t, err)

	assert.True(t, status.Success())
	assert.Equal(t, "556", status.Code)
	require.Len(t, lines, 2)

	assert.Equal(t, "FEDEX_2_DAY", lines[0].ServiceCode)
	assert.Equal(t, "FEDEX_2_DAY_SATURDAY_DELIVERY", lines[0].ServiceType)
	assert.Equal(t, "GBP", lines[0].Currency)
	assert.InDelta(t, 42.10, lines[0].Amount, 0.0001)

	assert.Equal(t, "FEDEX_NEW_SERVICE", lines[1].ServiceType)
	assert.Equal(t, "USD", lines[1].Currency)
	assert.Zero(t, lines[1].Amount)
	assert.Empty(t, lines[1].DeliveryTimestamp)
}

func TestParseTrackReply_NotSuccessful(t *testing.T) {
	status, details, err := parseTrackReply(trackReplyNotFound)
	require.NoError(t, err)
	assert.False(t, status.Success())
	assert.Nil(t, details)
}

func TestParseShipReply(t *testing.T) {
	reply, err := parseShipReply(shipReplySuccess)
	require.NoError(t, err)
	require.NoError(t, reply.PayloadErr)
	require.NotNil(t, reply.Details)

	assert.Equal(t, "794698557200", reply.Details.TrackingNumber)
	assert.Equal(t, "FDXG", reply.Details.CarrierCode)
	assert.Equal(t, "GBP", reply.Details.Currency)
	assert.InDelta(t, 23.75, reply.Details.Amount, 0.0001)
	assert.Equal(t, []byte{1, 2, 3}, reply.Details.BinaryBarcode)
	assert.Equal(t, "9612019794698557200", reply.Details.StringBarcode)
	assert.Equal(t, []byte("%PDF-1.4"), reply.Details.Label)

	assert.NotContains(t, reply.AuditXML, labelImage)
	assert.Contains(t, reply.AuditXML, "794698557200")
	assert.Contains(t, reply.AuditXML, barcodeImage)
}

func TestParseShipReply_RedactsEveryLabelPart(t *testing.T) {
	// "PARTONE" and "PARTTWO"
	const partOne, partTwo = "UEFSVE9ORQ==", "UEFSVFRXTw=="
	raw := `<ProcessShipmentReply>
  <Notifications><Severity>SUCCESS</Severity><Code>0</Code><Message>ok</Message></Notifications>
  <CompletedShipmentDetail>
    <CarrierCode>FDXE</CarrierCode>
    <CompletedPackageDetails>
      <TrackingIds><TrackingNumber>794698557201</TrackingNumber></TrackingIds>
      <Label>
        <Parts><DocumentPartSequenceNumber>1</DocumentPartSequenceNumber><Image>` + partOne + `</Image></Parts>
        <Parts><DocumentPartSequenceNumber>2</DocumentPartSequenceNumber><Image>` + partTwo + `</Image></Parts>
      </Label>
    </CompletedPackageDetails>
  </CompletedShipmentDetail>
</ProcessShipmentReply>`

	reply, err := parseShipReply(raw)
	require.NoError(t, err)
	require.NoError(t, reply.PayloadErr)

	assert.Equal(t, []byte("PARTONE"), reply.Details.Label)
	assert.NotContains(t, reply.AuditXML, partOne)
	assert.NotContains(t, reply.AuditXML, partTwo)
	assert.Contains(t, reply.AuditXML, "794698557201")
}

func TestParseShipReply_MissingLabel(t *testing.T) {
	reply, err := parseShipReply(shipReplyNoLabel)
	require.NoError(t, err)

	assert.ErrorIs(t, reply.PayloadErr, errMissingLabel)
	require.NotNil(t, reply.Details)
	assert.Equal(t, "794698557299", reply.Details.TrackingNumber)
	assert.Equal(t, "FDXE", reply.Details.CarrierCode)
	assert.NotEmpty(t, reply.AuditXML)
}

func TestParseShipReply_BadBase64(t *testing.T) {
	raw := `<ProcessShipmentReply>
  <Notifications><Severity>SUCCESS</Severity><Code>0</Code><Message>ok</Message></Notifications>
  <CompletedShipmentDetail>
    <CompletedPackageDetails>
      <Label><Parts><Image>%%%not-base64%%%</Image></Parts></Label>
    </CompletedPackageDetails>
  </CompletedShipmentDetail>
</ProcessShipmentReply>`

	reply, err := parseShipReply(raw)
	require.NoError(t, err)
	require.Error(t, reply.PayloadErr)
	assert.Contains(t, reply.PayloadErr.Error(), "label image")
	assert.NotContains(t, reply.AuditXML, "not-base64")
}

func TestParseShipReply_MissingDetail(t *testing.T) {
	raw := `<ProcessShipmentReply><Notifications><Severity>SUCCESS</Severity><Code>0</Code><Message>ok</Message></Notifications></ProcessShipmentReply>`

	reply, err := parseShipReply(raw)
	require.NoError(t, err)
	assert.ErrorIs(t, reply.PayloadErr, errMissingShipmentDetail)
}

func TestParseShipReply_Failure(t *testing.T) {
	reply, err := parseShipReply(shipReplyError)
	require.NoError(t, err)
	assert.False(t, reply.Status.Success())
	assert.Nil(t, reply.Details)
	assert.NoError(t, reply.PayloadErr)
}

func TestDecodeBase64_WrappedLines(t *testing.T) {
	got, err := decodeBase64("JVBE\nRi0x\r\nLjQ=")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), got)

	got, err = decodeBase64("")
	require.NoError(t, err)
	assert.Nil(t, got)
}
