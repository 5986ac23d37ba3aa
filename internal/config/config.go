// Package config loads regcheck settings from YAML and validates them.
//
// Settings are layered: DefaultConfig, then a YAML file, then command-line
// flags applied by the caller.
//
// Example file:
//
//	alphabet: [a, b]
//	max_length: 8
//	workers: 4
//	report:
//	  full: true
//	  lang: ja
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/coregx/regcheck"
	"github.com/coregx/regcheck/matcher"
	"github.com/coregx/regcheck/report"
	"github.com/coregx/regcheck/universe"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds every tunable of a run.
type Config struct {
	// Alphabet lists the symbols strings are built from.
	Alphabet []string `yaml:"alphabet"`

	// MaxLength is the length bound L.
	MaxLength int `yaml:"max_length"`

	// LengthCap is the largest MaxLength accepted. Check cost grows
	// exponentially with the bound and there is no way to abort a check,
	// so the cap is the only wall-clock guard.
	LengthCap int `yaml:"length_cap"`

	// MaxUniverse caps the number of generated strings.
	MaxUniverse int `yaml:"max_universe"`

	// Engine is "coregex" or "stdlib".
	Engine string `yaml:"engine"`

	// MaxDFAStates sizes the coregex DFA cache; 0 keeps the engine default.
	MaxDFAStates uint32 `yaml:"max_dfa_states"`

	// Workers is the classification parallelism; 0 means one per CPU.
	Workers int `yaml:"workers"`

	// CacheSize is the number of candidate results remembered in a batch.
	CacheSize int `yaml:"cache_size"`

	Report ReportConfig `yaml:"report"`
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	Full            bool   `yaml:"full"`
	TrailingNewline bool   `yaml:"trailing_newline"`
	Lang            string `yaml:"lang"`
	Color           string `yaml:"color"`
	EmptyMarker     string `yaml:"empty_marker"`
	Format          string `yaml:"format"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		MaxLength:   regcheck.DefaultMaxLength,
		LengthCap:   20,
		MaxUniverse: universe.DefaultMaxSize,
		Engine:      string(matcher.EngineCoregex),
		Workers:     1,
		CacheSize:   regcheck.DefaultCacheSize,
		Report: ReportConfig{
			TrailingNewline: true,
			Lang:            string(report.LangEnglish),
			Color:           ColorAuto,
			EmptyMarker:     "ε",
			Format:          FormatText,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Keys absent from data keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
//
// Valid ranges:
//   - LengthCap: 0 to 64
//   - MaxLength: 0 to LengthCap
//   - MaxUniverse: 0 or more (0 means the universe default)
//   - MaxDFAStates: 0, or 1 to 1,000,000
//   - Workers: 0 to 1,024
//   - CacheSize: 0 or more
func (c *Config) Validate() error {
	if _, err := universe.NewAlphabet(c.Alphabet...); err != nil {
		return &ConfigError{Field: "alphabet", Message: err.Error()}
	}
	if c.LengthCap < 0 || c.LengthCap > 64 {
		return &ConfigError{Field: "length_cap", Message: "must be between 0 and 64"}
	}
	if c.MaxLength < 0 || c.MaxLength > c.LengthCap {
		return &ConfigError{
			Field:   "max_length",
			Message: fmt.Sprintf("must be between 0 and length_cap (%d)", c.LengthCap),
		}
	}
	if c.MaxUniverse < 0 {
		return &ConfigError{Field: "max_universe", Message: "must not be negative"}
	}
	if _, err := matcher.ParseEngine(c.Engine); err != nil {
		return &ConfigError{Field: "engine", Message: err.Error()}
	}
	if c.MaxDFAStates > 1_000_000 {
		return &ConfigError{Field: "max_dfa_states", Message: "must not exceed 1,000,000"}
	}
	if c.Workers < 0 || c.Workers > 1024 {
		return &ConfigError{Field: "workers", Message: "must be between 0 and 1,024"}
	}
	if c.CacheSize < 0 {
		return &ConfigError{Field: "cache_size", Message: "must not be negative"}
	}
	if _, err := report.ParseLang(c.Report.Lang); err != nil {
		return &ConfigError{Field: "report.lang", Message: err.Error()}
	}
	switch c.Report.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &ConfigError{Field: "report.color", Message: "must be auto, always or never"}
	}
	switch c.Report.Format {
	case FormatText, FormatJSON:
	default:
		return &ConfigError{Field: "report.format", Message: "must be text or json"}
	}
	return nil
}

// CheckOptions converts the configuration into check options.
// Call Validate first.
func (c *Config) CheckOptions() (regcheck.Options, error) {
	alphabet, err := universe.NewAlphabet(c.Alphabet...)
	if err != nil {
		return regcheck.Options{}, &ConfigError{Field: "alphabet", Message: err.Error()}
	}
	engine, err := matcher.ParseEngine(c.Engine)
	if err != nil {
		return regcheck.Options{}, &ConfigError{Field: "engine", Message: err.Error()}
	}
	workers := c.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	return regcheck.Options{
		Alphabet:     alphabet,
		MaxLength:    c.MaxLength,
		MaxUniverse:  c.MaxUniverse,
		Engine:       engine,
		MaxDFAStates: c.MaxDFAStates,
		Workers:      workers,
		CacheSize:    c.CacheSize,
	}, nil
}

// ReportOptions converts the report settings into text report options.
// isTerminal tells whether the output is a terminal, for color "auto".
func (c *Config) ReportOptions(isTerminal bool) report.Options {
	lang, _ := report.ParseLang(c.Report.Lang)
	color := c.Report.Color == ColorAlways || (c.Report.Color == ColorAuto && isTerminal)
	return report.Options{
		Full:            c.Report.Full,
		TrailingNewline: c.Report.TrailingNewline,
		Lang:            lang,
		Color:           color,
		EmptyMarker:     c.Report.EmptyMarker,
	}
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regcheck: invalid config: " + e.Field + ": " + e.Message
}
