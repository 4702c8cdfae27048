package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/movieapi/pkg/movieapi"
)

var (
	_ movieapi.Logger = (*ConsoleLogger)(nil)
	_ movieapi.Logger = (*StructuredLogger)(nil)
	_ movieapi.Logger = (*NullLogger)(nil)
)

func TestConsoleLogger_Prefixes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(true).WithOutput(&buf)

	logger.Verbose("connected to %s", "localhost")
	logger.Info("File %s does not exist.", "data/x.csv")
	logger.Error("copy failed")

	assert.Equal(t,
		"[VERBOSE] connected to localhost\nFile data/x.csv does not exist.\n[ERROR] copy failed\n",
		buf.String())
}

func TestConsoleLogger_VerboseDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(false).WithOutput(&buf)

	logger.Verbose("hidden")

	assert.Empty(t, buf.String())
}

func TestConsoleLogger_PercentWithoutArgs(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleLogger(false).WithOutput(&buf).Info("100% loaded")

	assert.Equal(t, "100% loaded\n", buf.String())
}

func TestConsoleLogger_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(true).WithOutput(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Info("line %d", n)
		}(i)
	}
	wg.Wait()

	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 50)
}

func TestStructuredLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(Config{Level: "info", Format: "json", Output: &buf})

	logger.Verbose("dropped at info level")
	logger.Info("listening on %s", "0.0.0.0:5000")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "listening on 0.0.0.0:5000", entry["message"])
}

func TestStructuredLogger_DebugEnablesVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(Config{Level: "debug", Output: &buf})

	logger.Verbose("pool ready")

	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}
