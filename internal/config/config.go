package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
)

// Skybox face size bounds in pixels.
const (
	MinFaceSize = 16
	MaxFaceSize = 8192
)

// Config holds all run settings, populated from environment variables.
type Config struct {
	CatalogPath    string
	ColorTablePath string
	StarfilePath   string

	// ParquetPath enables the full catalog export when set.
	ParquetPath        string
	ParquetCompression string

	// MetricsTextfile enables the Prometheus textfile dump when set.
	MetricsTextfile string

	// Skybox rendering.
	SkyboxOut             string
	SkyboxFaceSize        int
	SkyboxMagnitudeWeight float64
	SkyboxBackground      string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is loaded first when
// present; variables already set in the environment take precedence.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit .env path. An empty path means ".env"
// in the working directory, which may be absent; an explicit path must exist.
func LoadFile(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	faceSize, err := parseFaceSize()
	if err != nil {
		return nil, err
	}
	weight, err := parseMagnitudeWeight()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		CatalogPath:           sharedcfg.EnvOrDefault("STARSEER_CATALOG", "bsc5.dat"),
		ColorTablePath:        sharedcfg.EnvOrDefault("STARSEER_COLOR_TABLE", "TempToColor.dat"),
		StarfilePath:          sharedcfg.EnvOrDefault("STARSEER_STARFILE", "starfile.txt"),
		ParquetPath:           os.Getenv("STARSEER_PARQUET"),
		ParquetCompression:    strings.ToUpper(sharedcfg.EnvOrDefault("PARQUET_COMPRESSION", "SNAPPY")),
		MetricsTextfile:       os.Getenv("METRICS_TEXTFILE"),
		SkyboxOut:             sharedcfg.EnvOrDefault("SKYBOX_OUT", "skybox.png"),
		SkyboxFaceSize:        faceSize,
		SkyboxMagnitudeWeight: weight,
		SkyboxBackground:      sharedcfg.EnvOrDefault("SKYBOX_BACKGROUND", "#000000"),
		LogLevel:              strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:             strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "text")),
	}

	if cfg.CatalogPath == "" {
		return nil, errors.New("STARSEER_CATALOG is required")
	}
	if cfg.ColorTablePath == "" {
		return nil, errors.New("STARSEER_COLOR_TABLE is required")
	}
	if cfg.StarfilePath == "" {
		return nil, errors.New("STARSEER_STARFILE is required")
	}
	switch cfg.ParquetCompression {
	case "SNAPPY", "GZIP", "NONE":
	default:
		return nil, fmt.Errorf("invalid PARQUET_COMPRESSION %q: want SNAPPY, GZIP or NONE", cfg.ParquetCompression)
	}
	if _, err := colorful.Hex(cfg.SkyboxBackground); err != nil {
		return nil, fmt.Errorf("invalid SKYBOX_BACKGROUND %q: %w", cfg.SkyboxBackground, err)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func parseFaceSize() (int, error) {
	s := sharedcfg.EnvOrDefault("SKYBOX_FACE_SIZE", "512")
	n, err := strconv.Atoi(s)
	if err != nil || n < MinFaceSize || n > MaxFaceSize {
		return 0, fmt.Errorf("invalid SKYBOX_FACE_SIZE %q: want an integer in [%d, %d]", s, MinFaceSize, MaxFaceSize)
	}
	return n, nil
}

func parseMagnitudeWeight() (float64, error) {
	s := sharedcfg.EnvOrDefault("SKYBOX_MAGNITUDE_WEIGHT", "1.0")
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w <= 0 {
		return 0, fmt.Errorf("invalid SKYBOX_MAGNITUDE_WEIGHT %q: want a positive number", s)
	}
	return w, nil
}
