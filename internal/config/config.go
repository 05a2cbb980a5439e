package config

import (
	"errors"
	"fmt"
	"net"

	"provincemap/internal/geodata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerHost string `mapstructure:"SERVER_HOST"`
	Port       string `mapstructure:"PORT"`
	GinMode    string `mapstructure:"GIN_MODE"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	DataDir           string `mapstructure:"DATA_DIR"`
	DataArchive       string `mapstructure:"DATA_ARCHIVE"`
	BoundariesFile    string `mapstructure:"BOUNDARIES_FILE"`
	POIFile           string `mapstructure:"POI_FILE"`
	BoundaryNameField string `mapstructure:"BOUNDARY_NAME_FIELD"`
	POINameField      string `mapstructure:"POI_NAME_FIELD"`

	ArchiveS3Bucket   string `mapstructure:"ARCHIVE_S3_BUCKET"`
	ArchiveS3Key      string `mapstructure:"ARCHIVE_S3_KEY"`
	ArchiveS3Region   string `mapstructure:"ARCHIVE_S3_REGION"`
	ArchiveS3Endpoint string `mapstructure:"ARCHIVE_S3_ENDPOINT"`

	DBSource    string `mapstructure:"DB_SOURCE"`
	MatchSource string `mapstructure:"MATCH_SOURCE"`
}

const (
	MatchSourceCompute  = "compute"
	MatchSourcePostgres = "postgres"
)

var defaults = map[string]string{
	"SERVER_HOST":         "0.0.0.0",
	"PORT":                "8050",
	"GIN_MODE":            "release",
	"LOG_LEVEL":           "info",
	"DATA_DIR":            "data",
	"DATA_ARCHIVE":        "data.zip",
	"BOUNDARIES_FILE":     "geoBoundaries-CAN-ADM1_simplified.geojson",
	"POI_FILE":            "./hotosm_can_points_of_interest_points_geojson.geojson",
	"BOUNDARY_NAME_FIELD": "shapeName",
	"POI_NAME_FIELD":      "name",
	"ARCHIVE_S3_BUCKET":   "",
	"ARCHIVE_S3_KEY":      "",
	"ARCHIVE_S3_REGION":   "us-east-1",
	"ARCHIVE_S3_ENDPOINT": "",
	"DB_SOURCE":           "",
	"MATCH_SOURCE":        MatchSourceCompute,
}

// LoadConfig reads configuration from app.env in path, then applies environment overrides.
// A missing app.env is not an error; defaults and the environment are enough to run.
func LoadConfig(path string) (config Config, err error) {
	// .env is a local convenience only.
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	// Every key needs a default so that Unmarshal picks up its environment override.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if err = config.validate(); err != nil {
		return config, err
	}
	return config, nil
}

// ServerAddress is the address the HTTP server binds to.
func (c Config) ServerAddress() string {
	return net.JoinHostPort(c.ServerHost, c.Port)
}

// GeoSources maps the data settings onto loader sources. S3 is only set when a bucket is configured.
func (c Config) GeoSources() geodata.Sources {
	src := geodata.Sources{
		DataDir:           c.DataDir,
		Archive:           c.DataArchive,
		BoundariesFile:    c.BoundariesFile,
		POIFile:           c.POIFile,
		BoundaryNameField: c.BoundaryNameField,
		POINameField:      c.POINameField,
	}
	if c.ArchiveS3Bucket != "" {
		src.S3 = &geodata.S3Source{
			Bucket:   c.ArchiveS3Bucket,
			Key:      c.ArchiveS3Key,
			Region:   c.ArchiveS3Region,
			Endpoint: c.ArchiveS3Endpoint,
		}
	}
	return src
}

func (c Config) validate() error {
	switch c.MatchSource {
	case MatchSourceCompute:
	case MatchSourcePostgres:
		if c.DBSource == "" {
			return fmt.Errorf("config: MATCH_SOURCE=%s requires DB_SOURCE", c.MatchSource)
		}
	default:
		return fmt.Errorf("config: unknown MATCH_SOURCE %q", c.MatchSource)
	}
	if c.ArchiveS3Bucket != "" && c.ArchiveS3Key == "" {
		return fmt.Errorf("config: ARCHIVE_S3_BUCKET requires ARCHIVE_S3_KEY")
	}
	return nil
}
