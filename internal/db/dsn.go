package db

import (
	"net"
	"net/url"
	"strconv"

	"github.com/vvka-141/movieapi/pkg/movieapi"
)

// BuildConnectionString renders a ConnectionConfig as a postgresql:// URL
// suitable for pgxpool.ParseConfig. Credentials are percent-encoded.
func BuildConnectionString(config *movieapi.ConnectionConfig) string {
	u := &url.URL{
		Scheme: "postgresql",
		Host:   net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		Path:   "/" + config.Database,
	}

	if config.Username != "" {
		if config.Password != "" {
			u.User = url.UserPassword(config.Username, config.Password)
		} else {
			u.User = url.User(config.Username)
		}
	}

	query := url.Values{}
	if config.SSLMode != "" {
		query.Set("sslmode", config.SSLMode)
	}
	if config.AppName != "" {
		query.Set("application_name", config.AppName)
	}
	if config.ConnectTimeout > 0 {
		query.Set("connect_timeout", strconv.Itoa(int(config.ConnectTimeout.Seconds())))
	}

	u.RawQuery = query.Encode()
	return u.String()
}

// MaskedConnectionString is BuildConnectionString with the password hidden,
// for log output.
func MaskedConnectionString(config *movieapi.ConnectionConfig) string {
	masked := *config
	if masked.Password != "" {
		masked.Password = "xxxxx"
	}
	return BuildConnectionString(&masked)
}
