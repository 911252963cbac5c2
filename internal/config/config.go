// internal/config/config.go
// Layered configuration: flags override PHICHAIN_* environment variables,
// which override an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"phichain-core/phimath"
)

// Config is the resolved runtime configuration.
type Config struct {
	// SnapshotPath is where the ledger snapshot is read and written.
	SnapshotPath string `mapstructure:"snapshot"`

	// Output selects the rendering format: text, json, jsonl, or pretty.
	Output string `mapstructure:"output"`

	// Precision is the decimal precision used to derive the scaling
	// constant. Changing it invalidates existing snapshots.
	Precision int `mapstructure:"precision"`

	// NoColor disables ANSI colors in pretty output.
	NoColor bool `mapstructure:"no-color"`

	// Quiet suppresses warnings on stderr.
	Quiet bool `mapstructure:"quiet"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		SnapshotPath: "phichain.snap",
		Output:       "text",
		Precision:    phimath.DefaultPrecision,
	}
}

// Load resolves the configuration from file, environment, and the given
// flag set. An empty file path skips file loading; a named file that is
// missing is an error.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("snapshot", d.SnapshotPath)
	v.SetDefault("output", d.Output)
	v.SetDefault("precision", d.Precision)
	v.SetDefault("no-color", d.NoColor)
	v.SetDefault("quiet", d.Quiet)

	v.SetEnvPrefix("PHICHAIN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.validate()
}

// validate checks only what every command needs. Output format names are
// the CLI's concern; it owns the writer registry.
func (c Config) validate() error {
	if c.Precision < phimath.MinPrecision {
		return fmt.Errorf("config: precision %d below minimum %d", c.Precision, phimath.MinPrecision)
	}
	return nil
}
