package movieapi_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/movieapi/pkg/movieapi"
)

func TestParseAuthMethod(t *testing.T) {
	tests := []struct {
		in   string
		want movieapi.AuthMethod
	}{
		{"", movieapi.AuthMethodStandard},
		{"standard", movieapi.AuthMethodStandard},
		{"AWS", movieapi.AuthMethodAWSIAM},
		{" google ", movieapi.AuthMethodGoogleIAM},
		{"azure", movieapi.AuthMethodAzureEntraID},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := movieapi.ParseAuthMethod(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAuthMethod_Unknown(t *testing.T) {
	_, err := movieapi.ParseAuthMethod("kerberos")
	assert.True(t, errors.Is(err, movieapi.ErrUnsupportedAuthMethod))
}

func TestAuthMethod_String(t *testing.T) {
	assert.Equal(t, "Standard", movieapi.AuthMethodStandard.String())
	assert.Equal(t, "AWS IAM", movieapi.AuthMethodAWSIAM.String())
	assert.Equal(t, "Google IAM", movieapi.AuthMethodGoogleIAM.String())
	assert.Equal(t, "Azure Entra ID", movieapi.AuthMethodAzureEntraID.String())
	assert.Equal(t, "Unknown(99)", movieapi.AuthMethod(99).String())
}

func TestConnectionConfig_WithDatabase(t *testing.T) {
	cfg := &movieapi.ConnectionConfig{Host: "db", Port: 5432, Database: "movies_db"}
	other := cfg.WithDatabase("postgres")
	assert.Equal(t, "postgres", other.Database)
	assert.Equal(t, "movies_db", cfg.Database)
	assert.Equal(t, "db", other.Host)
}
