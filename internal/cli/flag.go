package cli

var flgs = &Flags{}

// Flags holds every value the shipctl commands read from the command line.
type Flags struct {
	ConfigPath string
	Carrier    string
	Test       bool
	LogXML     bool

	IdentifierType string

	FromCountry string
	FromPostal  string
	ToCountry   string
	ToPostal    string
	WeightKg    float64
	LengthCm    float64
	WidthCm     float64
	HeightCm    float64
}

var flagMap = FlagMap{
	ConfigPath: FlagSet[string]{
		Name:  "config",
		Usage: "Directory holding the .env file.",
		Value: ".",
	},
	Carrier: FlagSet[string]{
		Name:  "carrier",
		Usage: "Carrier to query.",
		Value: "fedex",
	},
	Test: FlagSet[bool]{
		Name:  "test",
		Usage: "Send the request to the carrier's test gateway.",
		Value: false,
	},
	LogXML: FlagSet[bool]{
		Name:  "log-xml",
		Usage: "Log the carrier's reply document.",
		Value: false,
	},
	IdentifierType: FlagSet[string]{
		Name:  "type",
		Usage: "Package identifier type (tracking_number, door_tag, rma, ...).",
		Value: "",
	},
	FromCountry: FlagSet[string]{
		Name:  "from-country",
		Usage: "Origin country code.",
		Value: "",
	},
	FromPostal: FlagSet[string]{
		Name:  "from-postal",
		Usage: "Origin postal code.",
		Value: "",
	},
	ToCountry: FlagSet[string]{
		Name:  "to-country",
		Usage: "Destination country code.",
		Value: "",
	},
	ToPostal: FlagSet[string]{
		Name:  "to-postal",
		Usage: "Destination postal code.",
		Value: "",
	},
	WeightKg: FlagSet[float64]{
		Name:  "weight-kg",
		Usage: "Package weight in kilograms.",
		Value: 0,
	},
	LengthCm: FlagSet[float64]{
		Name:  "length-cm",
		Usage: "Package length in centimetres.",
		Value: 0,
	},
	WidthCm: FlagSet[float64]{
		Name:  "width-cm",
		Usage: "Package width in centimetres.",
		Value: 0,
	},
	HeightCm: FlagSet[float64]{
		Name:  "height-cm",
		Usage: "Package height in centimetres.",
		Value: 0,
	},
}

type FlagSet[T any] struct {
	Name  string
	Usage string
	Value T
}

type FlagMap struct {
	ConfigPath     FlagSet[string]
	Carrier        FlagSet[string]
	Test           FlagSet[bool]
	LogXML         FlagSet[bool]
	IdentifierType FlagSet[string]
	FromCountry    FlagSet[string]
	FromPostal     FlagSet[string]
	ToCountry      FlagSet[string]
	ToPostal       FlagSet[string]
	WeightKg       FlagSet[float64]
	LengthCm       FlagSet[float64]
	WidthCm        FlagSet[float64]
	HeightCm       FlagSet[float64]
}
