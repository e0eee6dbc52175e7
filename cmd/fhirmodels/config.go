package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gofhir/models/pkg/logger"
)

const envPrefix = "FHIRMODELS"

// Output format constants.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds CLI configuration merged from flags, FHIRMODELS_* variables
// and an optional config file.
type Config struct {
	Output   string   `mapstructure:"output" validate:"oneof=text json yaml"`
	LogLevel string   `mapstructure:"log-level" validate:"oneof=debug info warn error none"`
	Strict   bool     `mapstructure:"strict"`
	Skip     []string `mapstructure:"skip" validate:"dive,required"`
	Workers  int      `mapstructure:"workers" validate:"gte=0,lte=256"`
}

var validate = validator.New()

// loadConfig reads the configuration visible through flags.
func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("output", OutputText)
	v.SetDefault("log-level", logger.LevelWarn.String())
	v.SetDefault("workers", 0)

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Output = strings.ToLower(cfg.Output)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
