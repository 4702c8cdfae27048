package movieapi

import (
	"fmt"
	"strings"
	"time"
)

// ConnectionConfig represents resolved connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// AuthMethod indicates the authentication mechanism to use
	AuthMethod AuthMethod

	AppName        string
	ConnectTimeout time.Duration

	// ConnectRetries is the number of retries after a transient connection failure.
	ConnectRetries int

	// AWSRegion is used when AuthMethod is AuthMethodAWSIAM.
	AWSRegion string

	// GoogleInstance is the Cloud SQL instance connection name (project:region:instance).
	GoogleInstance string

	// Azure Entra ID parameters. If all three are provided, Service Principal
	// authentication is used; otherwise the DefaultAzureCredential chain.
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string
}

// WithDatabase returns a copy of the config pointed at another database.
func (c *ConnectionConfig) WithDatabase(name string) *ConnectionConfig {
	clone := *c
	clone.Database = name
	return &clone
}

// AuthMethod represents the type of authentication to use.
type AuthMethod int

const (
	AuthMethodStandard     AuthMethod = iota // Username/Password
	AuthMethodAWSIAM                         // AWS RDS IAM Database Authentication
	AuthMethodGoogleIAM                      // Google Cloud SQL IAM
	AuthMethodAzureEntraID                   // Azure Active Directory (Entra ID)
)

// String returns a human-readable string representation of the AuthMethod.
func (a AuthMethod) String() string {
	switch a {
	case AuthMethodStandard:
		return "Standard"
	case AuthMethodAWSIAM:
		return "AWS IAM"
	case AuthMethodGoogleIAM:
		return "Google IAM"
	case AuthMethodAzureEntraID:
		return "Azure Entra ID"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// ParseAuthMethod maps the configuration keyword to an AuthMethod.
// The empty string selects standard authentication.
func ParseAuthMethod(s string) (AuthMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return AuthMethodStandard, nil
	case "aws":
		return AuthMethodAWSIAM, nil
	case "google":
		return AuthMethodGoogleIAM, nil
	case "azure":
		return AuthMethodAzureEntraID, nil
	default:
		return AuthMethodStandard, fmt.Errorf("auth method %q: %w", s, ErrUnsupportedAuthMethod)
	}
}
