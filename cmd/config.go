package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	passwordPlaceholder = "${DB_PASSWORD}"
)

var (
	ErrUnknownStorageDriver  = errors.New("unknown storage driver")
	ErrDatabaseNotConfigured = errors.New("database connection is not configured")
)

// Config is read from the environment with envconfig. A .env file, when
// present, is loaded into the environment first.
type Config struct {
	HTTPPort         string        `envconfig:"HTTP_PORT" default:"8080"`
	HTTPReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"10s"`
	HTTPWriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`

	Environment string `envconfig:"APP_ENV" default:"Production"`
	Version     string `envconfig:"APP_VERSION"`

	StorageDriver        string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	StorageProbeSchedule string `envconfig:"STORAGE_PROBE_SCHEDULE" default:"@every 30s"`

	DBHost     string `envconfig:"DB_HOST"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	// DBDsn wins over the DB_* parts. ${DB_PASSWORD} inside it is replaced
	// with DBPassword so the secret can live in its own variable.
	DBDsn string `envconfig:"DB_DSN"`

	CORSAllowOrigins string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,https://yourdomain.com"`

	LogEnabled bool   `envconfig:"LOG_ENABLED" default:"true"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat  string `envconfig:"LOG_FORMAT" default:"json"`
}

// DSN returns the postgres connection string, or "" when neither DB_DSN nor
// DB_HOST is set.
func (c Config) DSN() string {
	if c.DBDsn != "" {
		return strings.ReplaceAll(c.DBDsn, passwordPlaceholder, c.DBPassword)
	}
	if c.DBHost == "" {
		return ""
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	if c.DBUser != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	}
	q := url.Values{}
	if c.DBSslMode != "" {
		q.Set("sslmode", c.DBSslMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Validate checks combinations envconfig cannot express.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.DSN() == "" {
			return fmt.Errorf("%w: set DB_DSN or DB_HOST", ErrDatabaseNotConfigured)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, c.StorageDriver)
	}
	if c.HTTPPort == "" {
		return errors.New("HTTP_PORT must not be empty")
	}
	return nil
}
