// Package config resolves service settings. Sources are applied in order,
// later ones winning: built-in defaults, the YAML file, the .env file and
// process environment, then command-line flags (applied by the cli package).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vvka-141/movieapi/pkg/movieapi"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// DefaultFileName is read from the working directory when present.
const DefaultFileName = "movieapi.yaml"

// DefaultEnvFile is loaded into the environment when present. Variables
// already set in the environment are never overridden.
const DefaultEnvFile = ".env"

type DatabaseConfig struct {
	Source            string `yaml:"source" env:"SOURCE" validate:"oneof=postgresql postgres"`
	Username          string `yaml:"username" env:"USERNAME" validate:"required"`
	Password          string `yaml:"password" env:"PASSWORD"`
	Host              string `yaml:"host" env:"DB_HOSTNAME" validate:"required_unless=AuthMethod google"`
	Port              int    `yaml:"port" env:"PORT" validate:"min=1,max=65535"`
	Name              string `yaml:"name" env:"DATABASE_NAME" validate:"required"`
	SSLMode           string `yaml:"sslmode" env:"SSLMODE" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	AuthMethod        string `yaml:"auth_method" env:"AUTH_METHOD" validate:"oneof=standard aws azure google"`
	AWSRegion         string `yaml:"aws_region,omitempty" env:"AWS_REGION" validate:"required_if=AuthMethod aws"`
	GoogleInstance    string `yaml:"google_instance,omitempty" env:"GOOGLE_INSTANCE" validate:"required_if=AuthMethod google"`
	AzureTenantID     string `yaml:"azure_tenant_id,omitempty" env:"AZURE_TENANT_ID"`
	AzureClientID     string `yaml:"azure_client_id,omitempty" env:"AZURE_CLIENT_ID"`
	AzureClientSecret string `yaml:"-" env:"AZURE_CLIENT_SECRET"`
	ConnectRetries    int    `yaml:"connect_retries" env:"CONNECT_RETRIES" validate:"min=0,max=20"`
}

type ServerConfig struct {
	ListenAddr         string   `yaml:"listen_addr" env:"LISTEN_ADDR" validate:"required,hostname_port"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" validate:"min=1"`
}

type LoaderConfig struct {
	CSVPath        string `yaml:"csv_path" env:"CSV_PATH" validate:"required"`
	PushGatewayURL string `yaml:"pushgateway_url,omitempty" env:"PUSHGATEWAY_URL" validate:"omitempty,url"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"LOG_FORMAT" validate:"oneof=json console"`
}

// Settings is the complete service configuration.
type Settings struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Loader   LoaderConfig   `yaml:"loader"`
	Log      LogConfig      `yaml:"log"`
}

// Defaults returns settings suitable for a local PostgreSQL.
func Defaults() *Settings {
	return &Settings{
		Database: DatabaseConfig{
			Source:     "postgresql",
			Username:   "postgres",
			Password:   "123",
			Host:       "localhost",
			Port:       5432,
			Name:       "movies_db",
			SSLMode:    "disable",
			AuthMethod: "standard",

			ConnectRetries: movieapi.DefaultRetryMaxAttempts,
		},
		Server: ServerConfig{
			ListenAddr:         "0.0.0.0:5000",
			CORSAllowedOrigins: []string{"*"},
		},
		Loader: LoaderConfig{CSVPath: "data/imdb_top_1000.csv"},
		Log:    LogConfig{Level: "info", Format: "json"},
	}
}

// Load builds settings from defaults, the YAML file at path and the
// environment. An empty path means DefaultFileName, which may be absent;
// an explicit path must exist.
func Load(path string) (*Settings, error) {
	s := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}
	if err := s.mergeFile(path); err != nil {
		if !errors.Is(err, ErrConfigNotFound) || explicit {
			return nil, err
		}
	}

	if err := LoadDotEnv(DefaultEnvFile); err != nil {
		return nil, err
	}
	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return err
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings with any variables lookup reports as set.
// Empty values are ignored.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	str := func(key string, dst *string) {
		if v, ok := get(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := get(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q is not an integer: %w", key, v, movieapi.ErrInvalidConfig)
		}
		*dst = n
		return nil
	}

	db := &s.Database
	str("SOURCE", &db.Source)
	str("USERNAME", &db.Username)
	str("PASSWORD", &db.Password)
	str("DB_HOSTNAME", &db.Host)
	str("DATABASE_NAME", &db.Name)
	str("SSLMODE", &db.SSLMode)
	str("AUTH_METHOD", &db.AuthMethod)
	str("AWS_REGION", &db.AWSRegion)
	str("GOOGLE_INSTANCE", &db.GoogleInstance)
	str("AZURE_TENANT_ID", &db.AzureTenantID)
	str("AZURE_CLIENT_ID", &db.AzureClientID)
	str("AZURE_CLIENT_SECRET", &db.AzureClientSecret)
	if err := num("PORT", &db.Port); err != nil {
		return err
	}
	if err := num("CONNECT_RETRIES", &db.ConnectRetries); err != nil {
		return err
	}

	str("LISTEN_ADDR", &s.Server.ListenAddr)
	if v, ok := get("CORS_ALLOWED_ORIGINS"); ok {
		s.Server.CORSAllowedOrigins = SplitList(v)
	}
	str("CSV_PATH", &s.Loader.CSVPath)
	str("PUSHGATEWAY_URL", &s.Loader.PushGatewayURL)
	str("LOG_LEVEL", &s.Log.Level)
	str("LOG_FORMAT", &s.Log.Format)
	return nil
}

// SplitList splits a comma-separated value, dropping blanks.
func SplitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
