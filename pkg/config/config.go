// Package config loads the comparison profile from an optional YAML
// file. Every knob has a default, so the tool runs without any profile
// at all.
package config

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/pyhub-apps/ordercheck-golang/pkg/compare"
	"github.com/pyhub-apps/ordercheck-golang/pkg/errs"
)

// Profile is the file form of compare.Options.
type Profile struct {
	KeyOrderColumn      int           `mapstructure:"key_order_column"`
	KeyInvoiceField     string        `mapstructure:"key_invoice_field"`
	TrimUnderscoreAfter int           `mapstructure:"trim_underscore_after"`
	Tolerance           float64       `mapstructure:"tolerance"`
	Fields              []FieldConfig `mapstructure:"fields"`
}

// FieldConfig maps one invoice field to its order file column.
type FieldConfig struct {
	Name        string `mapstructure:"name"`
	OrderColumn int    `mapstructure:"order_column"`
}

// Load reads the profile at path and returns the resulting comparison
// options. An empty path skips the file and returns the defaults.
func Load(path string) (compare.Options, error) {
	defaults := compare.DefaultOptions()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("key_order_column", defaults.KeyOrderColumn)
	v.SetDefault("key_invoice_field", defaults.KeyInvoiceField)
	v.SetDefault("trim_underscore_after", defaults.TrimUnderscoreAfter)
	v.SetDefault("tolerance", 0.0)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return compare.Options{}, errs.Access("open config", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return compare.Options{}, errs.Parse("parse config", path, err)
		}
	}

	var profile Profile
	if err := v.Unmarshal(&profile); err != nil {
		return compare.Options{}, errs.Parse("decode config", path, err)
	}

	opts := compare.Options{
		KeyOrderColumn:      profile.KeyOrderColumn,
		KeyInvoiceField:     profile.KeyInvoiceField,
		TrimUnderscoreAfter: profile.TrimUnderscoreAfter,
		Tolerance:           decimal.NewFromFloat(profile.Tolerance),
	}
	for i, fc := range profile.Fields {
		if fc.Name == "" || fc.OrderColumn < 1 {
			return compare.Options{}, errs.Schemaf("validate config", path,
				"field %d needs a name and a positive order_column", i+1)
		}
		opts.Fields = append(opts.Fields, compare.FieldMapping{
			Name:        fc.Name,
			OrderColumn: fc.OrderColumn,
		})
	}
	if len(opts.Fields) == 0 {
		opts.Fields = defaults.Fields
	}
	return opts, nil
}

// ParseTolerance reads a tolerance given on the command line. The value
// overrides the profile's tolerance when set.
func ParseTolerance(raw string) (decimal.Decimal, error) {
	tolerance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errs.Parse("parse tolerance flag", "", err)
	}
	return tolerance, nil
}
