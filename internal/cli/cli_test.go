package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/movieapi/internal/config"
	"github.com/vvka-141/movieapi/pkg/movieapi"
)

// isolate runs the test from an empty directory with the settings
// environment cleared.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, k := range []string{"DB_HOSTNAME", "PORT", "USERNAME", "PASSWORD", "DATABASE_NAME", "SSLMODE",
		"AUTH_METHOD", "CONNECT_RETRIES", "LISTEN_ADDR", "CSV_PATH", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "x"}
	addSettingsFlags(cmd.Flags())
	cmd.Flags().String("listen", "", "")
	cmd.Flags().String("csv", "", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestRootRegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "load", "createdb", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	s := config.Defaults()
	cmd := newFlagCmd(t, "--host", "db.internal", "-d", "films", "--listen", "127.0.0.1:8080", "--connect-retries", "3")

	applyFlags(cmd, s)

	assert.Equal(t, "db.internal", s.Database.Host)
	assert.Equal(t, "films", s.Database.Name)
	assert.Equal(t, "127.0.0.1:8080", s.Server.ListenAddr)
	assert.Equal(t, 3, s.Database.ConnectRetries)
	assert.Equal(t, 5432, s.Database.Port)
	assert.Equal(t, "postgres", s.Database.Username)
	assert.Equal(t, "data/imdb_top_1000.csv", s.Loader.CSVPath)
	assert.Equal(t, "info", s.Log.Level)
}

func TestApplyFlags_VerboseRaisesLogLevel(t *testing.T) {
	s := config.Defaults()
	cmd := newFlagCmd(t, "-v")

	applyFlags(cmd, s)
	assert.Equal(t, "debug", s.Log.Level)
}

func TestLoadSettings_InvalidFlagIsConfigError(t *testing.T) {
	isolate(t)
	cmd := newFlagCmd(t, "--port", "0")

	_, err := loadSettings(cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, movieapi.ErrInvalidConfig)
	assert.Equal(t, movieapi.ExitConfigError, movieapi.ExitCodeForError(err))
}

func TestLoadSettings_MissingExplicitConfig(t *testing.T) {
	isolate(t)
	cmd := newFlagCmd(t, "--config", "nope.yaml")

	_, err := loadSettings(cmd)
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestSubcommandsRejectArgs(t *testing.T) {
	for _, c := range []*cobra.Command{serveCmd, loadCmd, createdbCmd, versionCmd} {
		err := c.Args(c, []string{"extra"})
		require.Error(t, err, c.Name())
		assert.Equal(t, movieapi.ExitUsageError, movieapi.ExitCodeForError(err), c.Name())
	}
}

func TestVersionOutput(t *testing.T) {
	var buf bytes.Buffer
	printVersionInfo(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "movieapi "), buf.String())
}

func TestResolveVersionInfo_LdflagsOverride(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	version, commit, date = "1.2.3", "abc123", "2024-01-01"
	v, c, d := resolveVersionInfo()
	assert.Equal(t, "1.2.3", v)
	assert.Equal(t, "abc123", c)
	assert.Equal(t, "2024-01-01", d)
}
