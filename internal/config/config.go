package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"distplot/internal"
	"distplot/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Output   OutputConfig
	Analysis AnalysisConfig
	LogLevel internal.LogLevel
}

// OutputConfig holds image output settings
type OutputConfig struct {
	Path     string
	DPIScale float64
	WidthIn  float64
	HeightIn float64
}

// AnalysisConfig holds outlier and density settings
type AnalysisConfig struct {
	ZThreshold float64
	GridPoints int
}

const maxDPIScale = 10

// Default returns the configuration used when the environment is empty
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Path:     "kde.png",
			DPIScale: 2,
			WidthIn:  6.4,
			HeightIn: 4.8,
		},
		Analysis: AnalysisConfig{
			ZThreshold: 3.0,
			GridPoints: 200,
		},
		LogLevel: internal.LogLevelWarn,
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := Default()

	output, err := loadOutputConfig(config.Output)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load output configuration")
	}
	config.Output = *output

	analysis, err := loadAnalysisConfig(config.Analysis)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load analysis configuration")
	}
	config.Analysis = *analysis

	config.LogLevel = internal.ParseLogLevel(os.Getenv("LOG_LEVEL"), config.LogLevel)

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadOutputConfig(def OutputConfig) (*OutputConfig, error) {
	scale, err := getEnvFloatOrDefault("DISTPLOT_DPI_SCALE", def.DPIScale)
	if err != nil {
		return nil, err
	}
	width, err := getEnvFloatOrDefault("DISTPLOT_WIDTH_IN", def.WidthIn)
	if err != nil {
		return nil, err
	}
	height, err := getEnvFloatOrDefault("DISTPLOT_HEIGHT_IN", def.HeightIn)
	if err != nil {
		return nil, err
	}

	return &OutputConfig{
		Path:     getEnvOrDefault("DISTPLOT_OUTPUT", def.Path),
		DPIScale: scale,
		WidthIn:  width,
		HeightIn: height,
	}, nil
}

func loadAnalysisConfig(def AnalysisConfig) (*AnalysisConfig, error) {
	threshold, err := getEnvFloatOrDefault("DISTPLOT_Z_THRESHOLD", def.ZThreshold)
	if err != nil {
		return nil, err
	}
	points, err := getEnvIntOrDefault("DISTPLOT_GRID_POINTS", def.GridPoints)
	if err != nil {
		return nil, err
	}

	return &AnalysisConfig{
		ZThreshold: threshold,
		GridPoints: points,
	}, nil
}

func validateConfig(config *Config) error {
	for name, v := range map[string]float64{
		"DPI scale":         config.Output.DPIScale,
		"figure width":      config.Output.WidthIn,
		"figure height":     config.Output.HeightIn,
		"z-score threshold": config.Analysis.ZThreshold,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.ConfigInvalid(fmt.Sprintf("%s must be a finite number", name))
		}
	}
	if config.Output.Path == "" {
		return errors.ConfigInvalid("output path is required")
	}
	if config.Output.DPIScale <= 0 || config.Output.DPIScale > maxDPIScale {
		return errors.ConfigInvalid(fmt.Sprintf("DPI scale must be in (0, %d]", maxDPIScale))
	}
	if config.Output.WidthIn <= 0 || config.Output.HeightIn <= 0 {
		return errors.ConfigInvalid("figure size must be positive")
	}
	if config.Analysis.ZThreshold <= 0 {
		return errors.ConfigInvalid("z-score threshold must be positive")
	}
	if config.Analysis.GridPoints < 2 {
		return errors.ConfigInvalid("at least two grid points are required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.ConfigInvalid(fmt.Sprintf("%s=%q is not an integer", key, value))
	}
	return intValue, nil
}

func getEnvFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.ConfigInvalid(fmt.Sprintf("%s=%q is not a number", key, value))
	}
	return floatValue, nil
}
