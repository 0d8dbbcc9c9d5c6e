// Package swagger holds the OpenAPI document served at /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/rates": {
            "post": {
                "description": "Quotes every service the carrier offers for the packages between origin and destination",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Quote shipping rates",
                "parameters": [
                    {
                        "description": "Rate request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.RateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.RateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/tracking/{number}": {
            "get": {
                "description": "Retrieves the scan history and current status for a package identifier",
                "produces": ["application/json"],
                "tags": ["tracking"],
                "summary": "Get tracking history for a shipment",
                "parameters": [
                    {"type": "string", "description": "Tracking number or other package identifier", "name": "number", "in": "path", "required": true},
                    {"type": "string", "default": "fedex", "description": "Carrier name", "name": "carrier", "in": "query"},
                    {"type": "string", "description": "tracking_number, door_tag, rma, ground_shipment_id, ...", "name": "package_identifier_type", "in": "query"},
                    {"type": "string", "description": "Earliest ship date (YYYY-MM-DD)", "name": "ship_date_range_begin", "in": "query"},
                    {"type": "string", "description": "Latest ship date (YYYY-MM-DD)", "name": "ship_date_range_end", "in": "query"},
                    {"type": "boolean", "description": "Use the carrier test gateway", "name": "test", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.TrackingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/shipments": {
            "post": {
                "description": "Books a single-package shipment and returns its label and tracking number",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "Create a shipment",
                "parameters": [
                    {
                        "description": "Shipment request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.ShipmentRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ShipResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/shipments/{tracking}": {
            "get": {
                "description": "Returns the redacted record kept for a shipment created through this API",
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "Get a stored shipment record",
                "parameters": [
                    {"type": "string", "description": "Tracking number", "name": "tracking", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ShipmentRecord"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Location": {
            "type": "object",
            "properties": {
                "country_code": {"type": "string"},
                "postal_code": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "address1": {"type": "string"},
                "address2": {"type": "string"},
                "address_type": {"type": "string", "enum": ["commercial", "residential"]}
            }
        },
        "domain.Package": {
            "type": "object",
            "properties": {
                "kilograms": {"type": "number"},
                "length_cm": {"type": "number"},
                "width_cm": {"type": "number"},
                "height_cm": {"type": "number"}
            }
        },
        "domain.RateEstimate": {
            "type": "object",
            "properties": {
                "origin": {"$ref": "#/definitions/domain.Location"},
                "destination": {"$ref": "#/definitions/domain.Location"},
                "carrier": {"type": "string"},
                "service_name": {"type": "string"},
                "service_code": {"type": "string"},
                "total_price": {"type": "number"},
                "currency": {"type": "string"},
                "packages": {"type": "array", "items": {"$ref": "#/definitions/domain.Package"}},
                "delivery_range": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.RateResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "rates": {"type": "array", "items": {"$ref": "#/definitions/domain.RateEstimate"}}
            }
        },
        "domain.ShipmentEvent": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "time": {"type": "string"},
                "location": {"$ref": "#/definitions/domain.Location"}
            }
        },
        "domain.TrackingResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "tracking_number": {"type": "string"},
                "destination": {"$ref": "#/definitions/domain.Location"},
                "status": {"type": "string", "enum": ["PROCESSING", "COMPLETED", "RETURN", "INCIDENCE"]},
                "status_code": {"type": "string"},
                "status_description": {"type": "string"},
                "events": {"type": "array", "items": {"$ref": "#/definitions/domain.ShipmentEvent"}}
            }
        },
        "domain.ShipResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "tracking_number": {"type": "string"},
                "carrier_code": {"type": "string"},
                "currency": {"type": "string"},
                "total_price": {"type": "number"},
                "binary_barcode": {"type": "string", "format": "byte"},
                "string_barcode": {"type": "string"},
                "label": {"type": "string", "format": "byte"}
            }
        },
        "domain.ShipmentRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "carrier": {"type": "string"},
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "tracking_number": {"type": "string"},
                "carrier_code": {"type": "string"},
                "currency": {"type": "string"},
                "total_price": {"type": "number"},
                "string_barcode": {"type": "string"},
                "label_size": {"type": "integer"},
                "document": {"type": "string"},
                "recorded_at": {"type": "string"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "ray_id": {"type": "string"}
            }
        },
        "handler.PackageRequest": {
            "type": "object",
            "properties": {
                "weight": {"type": "number", "example": 2},
                "length": {"type": "number", "example": 10},
                "width": {"type": "number", "example": 10},
                "height": {"type": "number", "example": 10},
                "units": {"type": "string", "example": "metric"}
            }
        },
        "handler.PartyRequest": {
            "type": "object",
            "properties": {
                "contact": {"type": "object", "additionalProperties": true},
                "location": {"$ref": "#/definitions/domain.Location"}
            }
        },
        "handler.RateRequest": {
            "type": "object",
            "properties": {
                "carrier": {"type": "string", "example": "fedex"},
                "origin": {"$ref": "#/definitions/domain.Location"},
                "destination": {"$ref": "#/definitions/domain.Location"},
                "shipper": {"$ref": "#/definitions/domain.Location"},
                "packages": {"type": "array", "items": {"$ref": "#/definitions/handler.PackageRequest"}},
                "options": {"type": "object", "additionalProperties": true}
            }
        },
        "handler.ShipmentRequest": {
            "type": "object",
            "properties": {
                "carrier": {"type": "string", "example": "fedex"},
                "shipper": {"$ref": "#/definitions/handler.PartyRequest"},
                "recipient": {"$ref": "#/definitions/handler.PartyRequest"},
                "package": {"$ref": "#/definitions/handler.PackageRequest"},
                "options": {"type": "object", "additionalProperties": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Parcel Gateway API",
	Description:      "Rate quotes, tracking and label creation against the FedEx XML gateway.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
