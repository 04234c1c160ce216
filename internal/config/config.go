// Package config provides types for handling configuration parameters.
package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config handles server-related constants and parameters.
type Config struct {
	ServerAddress     string        `env:"SERVER_ADDRESS" json:"server_address"`
	BaseURL           string        `env:"BASE_URL" json:"base_url"`
	DatabaseDSN       string        `env:"DATABASE_DSN" json:"database_dsn"`
	ExtrasBackend     string        `env:"EXTRAS_BACKEND" json:"extras_backend"`
	ExtrasFilePath    string        `env:"EXTRAS_FILE_PATH" json:"extras_file_path"`
	ExtrasSQLitePath  string        `env:"EXTRAS_SQLITE_PATH" json:"extras_sqlite_path"`
	RedisAddress      string        `env:"REDIS_ADDRESS" json:"redis_address"`
	ImageStoragePath  string        `env:"IMAGE_STORAGE_PATH" json:"image_storage_path"`
	UserKey           string        `env:"USER_KEY" json:"-"`
	AuthKey           string        `env:"AUTH_KEY" json:"auth_key"`
	DefaultLocale     string        `env:"DEFAULT_LOCALE" json:"default_locale"`
	TrustedSubnet     string        `env:"TRUSTED_SUBNET" json:"trusted_subnet"`
	LogLevel          string        `env:"LOG_LEVEL" json:"log_level"`
	DeleteGracePeriod time.Duration `env:"DELETE_GRACE_PERIOD" json:"delete_grace_period"`
	AmazonAccessKey   string        `env:"AMAZON_ACCESS_KEY" json:"-"`
	AmazonSecretKey   string        `env:"AMAZON_SECRET_KEY" json:"-"`
	AmazonPartnerTag  string        `env:"AMAZON_PARTNER_TAG" json:"amazon_partner_tag"`
	AmazonHost        string        `env:"AMAZON_HOST" json:"amazon_host"`
	AmazonRegion      string        `env:"AMAZON_REGION" json:"amazon_region"`
}

// Extras store backends.
const (
	ExtrasBackendFile   = "file"
	ExtrasBackendSQLite = "sqlite"
	ExtrasBackendRedis  = "redis"
	ExtrasBackendMemory = "memory"
)

// NewDefaultConfiguration sets up a configuration with default parameters.
func NewDefaultConfiguration() *Config {
	return &Config{
		ServerAddress:     ":8080",
		BaseURL:           "http://localhost:8080",
		ExtrasBackend:     ExtrasBackendFile,
		ExtrasFilePath:    "storage/extras/wishes_extra.json",
		ExtrasSQLitePath:  "storage/extras/wishes_extra.db",
		RedisAddress:      "localhost:6379",
		ImageStoragePath:  "storage/images",
		AuthKey:           "user",
		DefaultLocale:     "en",
		LogLevel:          "info",
		DeleteGracePeriod: 5 * time.Second,
		AmazonHost:        "webservices.amazon.com",
		AmazonRegion:      "us-east-1",
	}
}

// Parse reads command line arguments, the optional JSON config file and the environment,
// flags take precedence over environment, environment over the file, the file over defaults.
func (c *Config) Parse() error {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	a := fs.String("a", "", "Server address")
	b := fs.String("b", "", "Base url")
	f := fs.String("f", "", "Extras file storage path")
	d := fs.String("d", "", "Database DSN")
	cfgPath := fs.String("c", "", "JSON config file path")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	return c.assignValues(a, b, f, d, cfgPath)
}

// assignValues layers the config file, the environment and flag values over the defaults.
func (c *Config) assignValues(a, b, f, d, cfgPath *string) error {
	if *cfgPath == "" {
		*cfgPath = os.Getenv("CONFIG")
	}
	if *cfgPath != "" {
		// ReadConfig reads the file then overlays environment variables
		if err := cleanenv.ReadConfig(*cfgPath, c); err != nil {
			return err
		}
	} else if err := cleanenv.ReadEnv(c); err != nil {
		return err
	}
	if *a != "" {
		c.ServerAddress = *a
	}
	if *b != "" {
		c.BaseURL = *b
	}
	if *f != "" {
		c.ExtrasFilePath = *f
	}
	if *d != "" {
		c.DatabaseDSN = *d
	}
	return nil
}
