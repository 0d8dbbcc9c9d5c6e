package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"parcel-gateway/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// FedEx holds the carrier credentials and transport settings.
	FedEx FedExConfig `mapstructure:",squash"`

	// Redis holds the audit store connection.
	Redis RedisConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound proxy.
	Proxy proxy.Settings `mapstructure:",squash"`
}

// FedExConfig holds the credentials issued by FedEx for the XML gateway.
type FedExConfig struct {
	// Key is the developer key.
	Key string `mapstructure:"FEDEX_KEY" required:"true"`
	// Password is the developer password.
	Password string `mapstructure:"FEDEX_PASSWORD" required:"true"`
	// AccountNumber is the shipping account number.
	AccountNumber string `mapstructure:"FEDEX_ACCOUNT" required:"true"`
	// MeterNumber is the meter (login) number.
	MeterNumber string `mapstructure:"FEDEX_METER" required:"true"`
	// TestMode sends every request to the beta gateway.
	TestMode bool `mapstructure:"FEDEX_TEST_MODE" default:"false"`
	// LogXML logs every reply document.
	LogXML bool `mapstructure:"FEDEX_LOG_XML" default:"false"`
	// TimeoutSeconds bounds a single gateway round trip.
	TimeoutSeconds int `mapstructure:"FEDEX_TIMEOUT_SECONDS" default:"30"`
}

// Timeout returns the gateway timeout as a duration.
func (c FedExConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RedisConfig holds the Redis connection used for shipment audit records.
type RedisConfig struct {
	// URL is the redis:// connection string.
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// AuditTTLHours is how long a shipment record is kept.
	AuditTTLHours int `mapstructure:"AUDIT_TTL_HOURS" default:"720"`
}

// AuditTTL returns the record lifetime as a duration.
func (c RedisConfig) AuditTTL() time.Duration {
	return time.Duration(c.AuditTTLHours) * time.Hour
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds their env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
