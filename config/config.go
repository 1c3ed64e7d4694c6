package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/banachtech/mcoption/payoff"
	"github.com/banachtech/mcoption/pricer"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvFile         = ".env"
	DefaultAddress  = ":8080"
	DefaultMaxPaths = 5000000

	DefaultMaxSamplePaths = 1000
	DefaultMaxSteps       = 10000
)

// Preset holds the default pricing controls, optionally read from a YAML file.
type Preset struct {
	Spot        float64 `yaml:"spot" json:"spot"`
	Strike      float64 `yaml:"strike" json:"strike"`
	Maturity    float64 `yaml:"maturity" json:"maturity"`
	Rate        float64 `yaml:"rate" json:"rate"`
	Volatility  float64 `yaml:"volatility" json:"volatility"`
	OptionType  string  `yaml:"option_type" json:"option_type"`
	Paths       int     `yaml:"paths" json:"paths"`
	SamplePaths int     `yaml:"sample_paths" json:"sample_paths"`
	Steps       int     `yaml:"steps" json:"steps"`
	Bins        int     `yaml:"bins" json:"bins"`
}

// Reset values of the interactive controls.
func DefaultPreset() Preset {
	return Preset{
		Spot:        100.0,
		Strike:      100.0,
		Maturity:    1.0,
		Rate:        0.05,
		Volatility:  0.2,
		OptionType:  "call",
		Paths:       10000,
		SamplePaths: 5,
		Steps:       pricer.DefaultSteps,
		Bins:        pricer.DefaultBins,
	}
}

// Parameters converts the preset into pricer input. Range checks are left to pricer.Simulate.
func (p Preset) Parameters() (pricer.Parameters, error) {
	option, err := payoff.ParseOptionType(p.OptionType)
	if err != nil {
		return pricer.Parameters{}, err
	}
	return pricer.Parameters{
		Spot:        p.Spot,
		Strike:      p.Strike,
		Maturity:    p.Maturity,
		Rate:        p.Rate,
		Volatility:  p.Volatility,
		Paths:       p.Paths,
		Type:        option,
		SamplePaths: p.SamplePaths,
		Steps:       p.Steps,
	}, nil
}

// Config is the runtime configuration. MaxSamplePaths and MaxSteps bound the display paths served over HTTP,
// which cost SamplePaths*(Steps+1) floats.
type Config struct {
	Env            string
	Address        string
	LogLevel       string
	APIKeyHash     string
	MaxPaths       int
	MaxSamplePaths int
	MaxSteps       int
	Preset         Preset
}

// Load reads .env if present, then the environment, then the optional YAML preset file.
func Load(presetFile string) (Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s file: %w", EnvFile, err)
	}

	cfg := Config{
		Env:        getenv("GO_ENV", "development"),
		Address:    getenv("MCOPTION_ADDR", DefaultAddress),
		LogLevel:   getenv("MCOPTION_LOG_LEVEL", "info"),
		APIKeyHash: os.Getenv("MCOPTION_API_KEY_HASH"),
		Preset:     DefaultPreset(),
	}

	var err error
	if cfg.MaxPaths, err = getenvInt("MCOPTION_MAX_PATHS", DefaultMaxPaths); err != nil {
		return Config{}, err
	}
	if cfg.MaxSamplePaths, err = getenvInt("MCOPTION_MAX_SAMPLE_PATHS", DefaultMaxSamplePaths); err != nil {
		return Config{}, err
	}
	if cfg.MaxSteps, err = getenvInt("MCOPTION_MAX_STEPS", DefaultMaxSteps); err != nil {
		return Config{}, err
	}

	if presetFile != "" {
		preset, err := LoadPreset(presetFile)
		if err != nil {
			return Config{}, err
		}
		cfg.Preset = preset
	}
	return cfg, nil
}

// LoadPreset reads a YAML preset. Fields missing from the file keep their reset values.
func LoadPreset(filename string) (Preset, error) {
	file, err := os.ReadFile(filename)
	if err != nil {
		return Preset{}, err
	}
	preset := DefaultPreset()
	if err := yaml.Unmarshal(file, &preset); err != nil {
		return Preset{}, fmt.Errorf("parse preset %s: %w", filename, err)
	}
	return preset, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
