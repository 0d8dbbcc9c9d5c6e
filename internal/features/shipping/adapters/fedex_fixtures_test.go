package adapter

const rateReplyOneLine = `<?xml version="1.0" encoding="UTF-8"?>
<v6:RateReply xmlns:v6="http://fedex.com/ws/rate/v6">
  <v6:HighestSeverity>SUCCESS</v6:HighestSeverity>
  <v6:Notifications>
    <v6:Severity>SUCCESS</v6:Severity>
    <v6:Source>crs</v6:Source>
    <v6:Code>0</v6:Code>
    <v6:Message>Request was successfully processed.</v6:Message>
  </v6:Notifications>
  <v6:RateReplyDetails>
    <v6:ServiceType>INTERNATIONAL_PRIORITY</v6:ServiceType>
    <v6:PackagingType>YOUR_PACKAGING</v6:PackagingType>
    <v6:DeliveryTimestamp>2026-10-20T10:30:00</v6:DeliveryTimestamp>
    <v6:RatedShipmentDetails>
      <v6:ShipmentRateDetail>
        <v6:TotalNetCharge>
          <v6:Currency>EUR</v6:Currency>
          <v6:Amount>15.50</v6:Amount>
        </v6:TotalNetCharge>
      </v6:ShipmentRateDetail>
    </v6:RatedShipmentDetails>
  </v6:RateReplyDetails>
</v6:RateReply>`

const rateReplyMixed = `<RateReply xmlns="http://fedex.com/ws/rate/v6">
  <HighestSeverity>WARNING</HighestSeverity>
  <Notifications>
    <Severity>WARNING</Severity>
    <Code>556</Code>
    <Message>There are no valid services available.</Message>
  </Notifications>
  <RateReplyDetails>
    <ServiceType>FEDEX_2_DAY</ServiceType>
    <AppliedOptions>SATURDAY_DELIVERY</AppliedOptions>
    <RatedShipmentDetails>
      <ShipmentRateDetail>
        <TotalNetCharge><Currency>ukl</Currency><Amount>42.10</Amount></TotalNetCharge>
      </ShipmentRateDetail>
    </RatedShipmentDetails>
  </RateReplyDetails>
  <RateReplyDetails>
    <ServiceType>FEDEX_NEW_SERVICE</ServiceType>
    <RatedShipmentDetails>
      <ShipmentRateDetail>
        <TotalNetCharge><Currency>USD</Currency><Amount>n/a</Amount></TotalNetCharge>
      </ShipmentRateDetail>
    </RatedShipmentDetails>
  </RateReplyDetails>
</RateReply>`

const rateReplyEmpty = `<ns:RateReply xmlns:ns="http://fedex.com/ws/rate/v6">
  <ns:HighestSeverity>SUCCESS</ns:HighestSeverity>
  <ns:Notifications>
    <ns:Severity>SUCCESS</ns:Severity>
    <ns:Code>0</ns:Code>
    <ns:Message>Request was successfully processed.</ns:Message>
  </ns:Notifications>
</ns:RateReply>`

const rateReplyError = `<v6:RateReply xmlns:v6="http://fedex.com/ws/rate/v6">
  <v6:HighestSeverity>ERROR</v6:HighestSeverity>
  <v6:Notifications>
    <v6:Severity>ERROR</v6:Severity>
    <v6:Code>1000</v6:Code>
    <v6:Message>Authentication Failed</v6:Message>
  </v6:Notifications>
</v6:RateReply>`

const trackReply = `<?xml version="1.0" encoding="UTF-8"?>
<v3:TrackReply xmlns:v3="http://fedex.com/ws/track/v3">
  <v3:HighestSeverity>SUCCESS</v3:HighestSeverity>
  <v3:Notifications>
    <v3:Severity>SUCCESS</v3:Severity>
    <v3:Code>0</v3:Code>
    <v3:Message>Request was successfully processed.</v3:Message>
  </v3:Notifications>
  <v3:TrackDetails>
    <v3:TrackingNumber>123456789012</v3:TrackingNumber>
    <v3:StatusCode>DL</v3:StatusCode>
    <v3:StatusDescription>Delivered</v3:StatusDescription>
    <v3:DestinationAddress>
      <v3:City>DENVER</v3:City>
      <v3:StateOrProvinceCode>CO</v3:StateOrProvinceCode>
      <v3:CountryCode>US</v3:CountryCode>
    </v3:DestinationAddress>
    <v3:Events>
      <v3:Timestamp>2026-10-14T16:20:00-06:00</v3:Timestamp>
      <v3:EventDescription>Delivered</v3:EventDescription>
      <v3:Address>
        <v3:City>DENVER</v3:City>
        <v3:StateOrProvinceCode>CO</v3:StateOrProvinceCode>
        <v3:PostalCode>80202</v3:PostalCode>
        <v3:CountryCode>US</v3:CountryCode>
      </v3:Address>
    </v3:Events>
    <v3:Events>
      <v3:Timestamp>2026-10-12T09:00:00-04:00</v3:Timestamp>
      <v3:EventDescription>Picked up</v3:EventDescription>
      <v3:Address>
        <v3:City>MEMPHIS</v3:City>
        <v3:StateOrProvinceCode>TN</v3:StateOrProvinceCode>
        <v3:PostalCode>38118</v3:PostalCode>
        <v3:CountryCode>US</v3:CountryCode>
      </v3:Address>
    </v3:Events>
    <v3:Events>
      <v3:Timestamp>2026-10-13T05:45:00</v3:Timestamp>
      <v3:EventDescription>Shipment information sent to FedEx</v3:EventDescription>
      <v3:Address>
        <v3:CountryCode></v3:CountryCode>
      </v3:Address>
    </v3:Events>
    <v3:Events>
      <v3:Timestamp>2026-10-13T07:10:00-05:00</v3:Timestamp>
      <v3:EventDescription>In transit</v3:EventDescription>
      <v3:Address>
        <v3:City>KANSAS CITY</v3:City>
        <v3:StateOrProvinceCode>MO</v3:StateOrProvinceCode>
        <v3:CountryCode>US</v3:CountryCode>
      </v3:Address>
    </v3:Events>
  </v3:TrackDetails>
</v3:TrackReply>`

const trackReplyNotFound = `<TrackReply xmlns="http://fedex.com/ws/track/v3">
  <HighestSeverity>ERROR</HighestSeverity>
  <Notifications>
    <Severity>ERROR</Severity>
    <Code>6035</Code>
    <Message>Invalid tracking numbers.</Message>
  </Notifications>
</TrackReply>`

// labelImage is "%PDF-1.4" and barcodeImage is 0x01 0x02 0x03.
const (
	labelImage   = "JVBERi0xLjQ="
	barcodeImage = "AQID"
)

const shipReplySuccess = `<?xml version="1.0" encoding="UTF-8"?>
<v10:ProcessShipmentReply xmlns:v10="http://fedex.com/ws/ship/v10">
  <v10:HighestSeverity>NOTE</v10:HighestSeverity>
  <v10:Notifications>
    <v10:Severity>NOTE</v10:Severity>
    <v10:Code>8522</v10:Code>
    <v10:Message>Saturday delivery applied.</v10:Message>
  </v10:Notifications>
  <v10:CompletedShipmentDetail>
    <v10:CarrierCode>FDXG</v10:CarrierCode>
    <v10:ShipmentRating>
      <v10:ShipmentRateDetails>
        <v10:TotalNetCharge><v10:Currency>UKL</v10:Currency><v10:Amount>23.75</v10:Amount></v10:TotalNetCharge>
      </v10:ShipmentRateDetails>
    </v10:ShipmentRating>
    <v10:CompletedPackageDetails>
      <v10:TrackingIds><v10:TrackingNumber>794698557200</v10:TrackingNumber></v10:TrackingIds>
      <v10:OperationalDetail>
        <v10:Barcodes>
          <v10:BinaryBarcodes><v10:Type>COMMON_2D</v10:Type><v10:Value>` + barcodeImage + `</v10:Value></v10:BinaryBarcodes>
          <v10:StringBarcodes><v10:Type>GROUND</v10:Type><v10:Value>9612019794698557200</v10:Value></v10:StringBarcodes>
        </v10:Barcodes>
      </v10:OperationalDetail>
      <v10:Label>
        <v10:Type>OUTBOUND_LABEL</v10:Type>
        <v10:Parts><v10:DocumentPartSequenceNumber>1</v10:DocumentPartSequenceNumber><v10:Image>` + labelImage + `</v10:Image></v10:Parts>
      </v10:Label>
    </v10:CompletedPackageDetails>
  </v10:CompletedShipmentDetail>
</v10:ProcessShipmentReply>`

const shipReplyNoLabel = `<ProcessShipmentReply>
  <Notifications><Severity>SUCCESS</Severity><Code>0000</Code><Message>Success</Message></Notifications>
  <CompletedShipmentDetail>
    <CarrierCode>FDXE</CarrierCode>
    <CompletedPackageDetails>
      <TrackingIds><TrackingNumber>794698557299</TrackingNumber></TrackingIds>
    </CompletedPackageDetails>
  </CompletedShipmentDetail>
</ProcessShipmentReply>`

const shipReplyError = `<v10:ProcessShipmentReply xmlns:v10="http://fedex.com/ws/ship/v10">
  <v10:Notifications>
    <v10:Severity>ERROR</v10:Severity>
    <v10:Code>3058</v10:Code>
    <v10:Message>Recipient Postal code or routing code is required</v10:Message>
  </v10:Notifications>
</v10:ProcessShipmentReply>`
