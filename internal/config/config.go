package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	chaterrors "github.com/mosaicmc/chatrender/pkg/errors"
)

// Config holds viewer settings for the chatrender CLI. The core rendering
// limits (depth, text length, palette) are fixed constants and deliberately
// absent here.
type Config struct {
	// Locale is the path to a YAML translation table. Empty means no
	// translations: translate components fall back to their keys.
	Locale string `yaml:"locale,omitempty"`

	// Output selects the encoding of rendered messages.
	Output string `yaml:"output,omitempty" validate:"omitempty,oneof=text ansi html"`

	Log Log `yaml:"log,omitempty"`

	// ObfuscationIntervalMS is the re-scramble cadence for obfuscated text
	// in the interactive preview.
	ObfuscationIntervalMS int `yaml:"obfuscation_interval_ms,omitempty" validate:"omitempty,min=10,max=5000"`
}

// Log configures the diagnostics channel.
type Log struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,loglevel"`
	Human bool   `yaml:"human,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Output:                "ansi",
		Log:                   Log{Level: "info"},
		ObfuscationIntervalMS: 80,
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	logLevelPattern = regexp.MustCompile(`^(trace|debug|info|warn|error|fatal|panic)$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
			return logLevelPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Load reads and validates a viewer configuration file. Fields absent from
// the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, chaterrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, chaterrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate performs schema validation on the configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return chaterrors.NewValidationError([]string{"config"}, "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return chaterrors.NewValidationError([]string{field}, msg, err)
	}

	return chaterrors.NewValidationError([]string{"config"}, err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
