package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the editor process.
type Config struct {
	Environment string
	ListenAddr  string

	// DataDir is where the durable invoice cache lives. The invoice
	// document is the only thing persisted; customization is not.
	DataDir   string
	StoreName string

	ExportRateLimit  int
	ExportRateWindow time.Duration

	Tracing TracingConfig
}

// TracingConfig configures the OTLP trace exporter.
type TracingConfig struct {
	Enabled          bool
	ServiceVersion   string
	ExporterEndpoint string
	SamplingRatio    float64
}

// Load reads configuration from the environment. A .env file is honored
// when present so local runs need no exported variables.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Environment: os.Getenv("FACTURE_ENV"),
		ListenAddr:  os.Getenv("FACTURE_LISTEN_ADDR"),
		DataDir:     os.Getenv("FACTURE_DATA_DIR"),
		StoreName:   os.Getenv("FACTURE_STORE_NAME"),
		Tracing: TracingConfig{
			Enabled:          parseBool(os.Getenv("FACTURE_TRACING_ENABLED")),
			ServiceVersion:   os.Getenv("FACTURE_VERSION"),
			ExporterEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			SamplingRatio:    parseFloat(os.Getenv("FACTURE_TRACING_SAMPLING_RATIO")),
		},
	}
	cfg.ExportRateLimit = parseInt(os.Getenv("FACTURE_EXPORT_RATE_LIMIT"))
	cfg.ExportRateWindow = parseDuration(os.Getenv("FACTURE_EXPORT_RATE_WINDOW"))
	return cfg.withDefaults()
}

func DefaultConfig() Config {
	return Config{
		Environment:      "development",
		ListenAddr:       ":8980",
		DataDir:          defaultDataDir(),
		StoreName:        "invoice-storage",
		ExportRateLimit:  10,
		ExportRateWindow: time.Minute,
		Tracing: TracingConfig{
			SamplingRatio: 0.1,
		},
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if strings.TrimSpace(c.Environment) == "" {
		c.Environment = defaults.Environment
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		c.ListenAddr = defaults.ListenAddr
	}
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = defaults.DataDir
	}
	if strings.TrimSpace(c.StoreName) == "" {
		c.StoreName = defaults.StoreName
	}
	if c.ExportRateLimit <= 0 {
		c.ExportRateLimit = defaults.ExportRateLimit
	}
	if c.ExportRateWindow <= 0 {
		c.ExportRateWindow = defaults.ExportRateWindow
	}
	if c.Tracing.SamplingRatio <= 0 {
		c.Tracing.SamplingRatio = defaults.Tracing.SamplingRatio
	}
	return c
}

// StorePath returns the sqlite file backing the durable invoice cache.
func (c Config) StorePath() string {
	return filepath.Join(c.DataDir, "facture.db")
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".facture")
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && parsed
}

func parseInt(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return parsed
}

func parseFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseDuration(value string) time.Duration {
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return parsed
}
