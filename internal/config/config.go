// Package config resolves output settings from flags, environment and an
// optional beamprops.yaml using viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/beamprops/internal/rational"
	"github.com/alexiusacademia/beamprops/internal/shape"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. BEAMPROPS_FORMAT=decimal
const EnvPrefix = "BEAMPROPS"

// DefaultPrecision is the number of decimal places in decimal output
const DefaultPrecision = 6

// Format selects how exact values are rendered
type Format string

const (
	FormatFraction Format = "fraction"
	FormatDecimal  Format = "decimal"
)

// Output holds the resolved output settings
type Output struct {
	Format    Format `mapstructure:"format"`
	Precision int32  `mapstructure:"precision"`
	Verbose   bool   `mapstructure:"verbose"`
}

// New creates a viper instance with defaults, environment binding and the
// config file. An explicit configFile must exist; the default
// beamprops.yaml is optional.
//
// Precedence, highest first: bound flags, BEAMPROPS_* environment, config
// file, BEAMPROPS_* entries of ./.env, built-in defaults.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("format", string(FormatFraction))
	v.SetDefault("precision", DefaultPrecision)
	v.SetDefault("verbose", false)

	if err := loadDotEnv(v, ".env"); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("beamprops")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "beamprops"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return v, nil
}

// loadDotEnv reads prefixed keys from a dotenv file as defaults. The process
// environment is left untouched. A missing file is not an error.
func loadDotEnv(v *viper.Viper, path string) error {
	vars, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	for key, value := range vars {
		name, ok := strings.CutPrefix(key, EnvPrefix+"_")
		if !ok {
			continue
		}
		v.SetDefault(strings.ToLower(name), value)
	}
	return nil
}

// BindFlags lets command-line flags override file and environment values.
// Flags missing from the set are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{"format", "precision", "verbose"} {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// Load decodes and validates the output settings
func Load(v *viper.Viper) (*Output, error) {
	var out Output
	if err := v.Unmarshal(&out); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate checks the format name and precision range
func (o *Output) Validate() error {
	switch o.Format {
	case FormatFraction, FormatDecimal:
	default:
		return fmt.Errorf("invalid format %q (want %s or %s)", o.Format, FormatFraction, FormatDecimal)
	}
	if o.Precision < 0 || o.Precision > 30 {
		return fmt.Errorf("precision must be between 0 and 30, got %d", o.Precision)
	}
	return nil
}

// Render formats q in the configured style
func (o *Output) Render(q shape.Quantity) string {
	if o.Format == FormatDecimal {
		return q.DecimalString(o.Precision)
	}
	return q.FractionString()
}

// RenderRational formats a plain rational in the configured style
func (o *Output) RenderRational(r rational.Rational) string {
	return o.Render(shape.Plain(r))
}
