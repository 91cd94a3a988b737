package recordstore

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/go-arrower/recordstore/alog"
)

// Config is a structure used for service configuration.
// It is intended to be mapped by viper.
type Config struct {
	ApplicationName string `mapstructure:"application_name"`
	InstanceName    string `mapstructure:"instance_name"`

	Environment Environment `mapstructure:"environment"`

	HTTP HTTP `mapstructure:"http"`
	OTEL OTEL `mapstructure:"otel"`
	Log  Log  `mapstructure:"log"`
	Seed Seed `mapstructure:"seed"`
}

const (
	LocalEnv       Environment = "local"
	TestEnv        Environment = "test"
	DevelopmentEnv Environment = "dev"
	ProductionEnv  Environment = "prod"
)

// Environments is the list of all supported environments.
func Environments() []Environment {
	return []Environment{LocalEnv, TestEnv, DevelopmentEnv, ProductionEnv}
}

type Environment string

type (
	HTTP struct {
		Port                  int  `mapstructure:"port"                    json:"port"`
		StatusEndpointEnabled bool `mapstructure:"status_endpoint_enabled" json:"-"`
		StatusEndpointPort    int  `mapstructure:"status_endpoint_port"    json:"-"`
	}

	OTEL struct {
		// Enabled exports traces via OTLP. Metrics are always served on the status endpoint.
		Enabled  bool   `mapstructure:"enabled"  json:"enabled"`
		Host     string `mapstructure:"host"     json:"host"`
		Port     int    `mapstructure:"port"     json:"port"`
		Hostname string `mapstructure:"hostname" json:"hostname"`
	}

	Log struct {
		Level slog.Level `mapstructure:"level" json:"level"`
	}

	// Seed controls the records every context starts with.
	// Empty file names use the records shipped with the binary.
	Seed struct {
		Enabled    bool   `mapstructure:"enabled"     json:"enabled"`
		ShopFile   string `mapstructure:"shop_file"   json:"shopFile"`
		SchoolFile string `mapstructure:"school_file" json:"schoolFile"`
	}
)

const envPrefix = "RECORDSTORE"

// DefaultViper returns a new viper instance with all default values
// from Config set. Every value can be overwritten by an environment variable,
// e.g. RECORDSTORE_HTTP_PORT=8000.
func DefaultViper() *Viper {
	vip := viper.New()

	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	vip.SetDefault("application_name", "recordstore")
	vip.SetDefault("instance_name", "")

	vip.SetDefault("environment", "local")

	vip.SetDefault("http.port", 8080)
	vip.SetDefault("http.status_endpoint_enabled", true)
	vip.SetDefault("http.status_endpoint_port", 2223)

	vip.SetDefault("otel.enabled", false)
	vip.SetDefault("otel.host", "localhost")
	vip.SetDefault("otel.port", 4317)
	vip.SetDefault("otel.hostname", "")

	vip.SetDefault("log.level", "info")

	vip.SetDefault("seed.enabled", true)
	vip.SetDefault("seed.shop_file", "")
	vip.SetDefault("seed.school_file", "")

	return &Viper{Viper: vip}
}

var errConfigLoadFailed = errors.New("loading configuration failed")

// Viper is a wrapper around viper.Viper for configuration loading.
// The only purpose is to overwrite the Unmarshal method,
// so that the custom types of Config are validated and decoded
// without the developer having to think about it.
type Viper struct {
	*viper.Viper
}

func (vip *Viper) Unmarshal(rawVal any, opts ...viper.DecoderConfigOption) error {
	opts = append(opts, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		allowedEnvironmentHookFunc(),
		logLevelHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)))

	if err := vip.Viper.Unmarshal(rawVal, opts...); err != nil {
		return fmt.Errorf("%w: could not decode configuration into struct: %v", errConfigLoadFailed, err) //nolint:errorlint,lll // prevent err in api
	}

	return nil
}

func allowedEnvironmentHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(Environment("")) {
			return data, nil
		}

		s, _ := data.(string)

		env := Environments()
		if slices.Contains(env, Environment(s)) {
			return data, nil
		}

		e := make([]string, 0, len(env))
		for _, env := range env {
			e = append(e, string(env))
		}

		return data, fmt.Errorf("value is not allowed, use one of: %s", strings.Join(e, ", ")) //nolint:err113 // accept dynamic error
	}
}

func logLevelHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(slog.Level(0)) || f.Kind() != reflect.String {
			return data, nil
		}

		level, err := alog.ParseLevel(data.(string)) //nolint:forcetypeassert // checked by the kind
		if err != nil {
			return data, err //nolint:wrapcheck // wrapped by Unmarshal
		}

		return level, nil
	}
}
