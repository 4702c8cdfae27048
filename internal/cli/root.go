package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vvka-141/movieapi/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "movieapi",
	Short: "Movie catalog REST API over PostgreSQL",
	Long: `movieapi serves a catalog of movies over HTTP and bulk loads it from CSV.

Settings come from movieapi.yaml, then .env and the environment
(DB_HOSTNAME, PORT, USERNAME, PASSWORD, DATABASE_NAME, ...), then flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Database connection failed
  13 - Bulk load failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	addSettingsFlags(rootCmd.PersistentFlags())
}

// addSettingsFlags registers the flags that override resolved settings.
func addSettingsFlags(pf *pflag.FlagSet) {
	pf.String("config", "", "Path to a YAML settings file (default ./movieapi.yaml when present)")
	pf.BoolP("verbose", "v", false, "Enable verbose output for all commands")
	pf.String("host", "", "PostgreSQL host")
	pf.Int("port", 0, "PostgreSQL port")
	pf.StringP("username", "U", "", "PostgreSQL user")
	pf.StringP("database", "d", "", "Database name")
	pf.String("sslmode", "", "SSL mode (disable, require, verify-full, ...)")
	pf.String("auth-method", "", "Authentication: standard, aws, azure or google")
	pf.Int("connect-retries", -1, "Retries for transient connection failures")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// loadSettings resolves settings and applies explicitly set flags on top.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	s, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func applyFlags(cmd *cobra.Command, s *config.Settings) {
	f := cmd.Flags()
	if f.Changed("host") {
		s.Database.Host, _ = f.GetString("host")
	}
	if f.Changed("port") {
		s.Database.Port, _ = f.GetInt("port")
	}
	if f.Changed("username") {
		s.Database.Username, _ = f.GetString("username")
	}
	if f.Changed("database") {
		s.Database.Name, _ = f.GetString("database")
	}
	if f.Changed("sslmode") {
		s.Database.SSLMode, _ = f.GetString("sslmode")
	}
	if f.Changed("auth-method") {
		s.Database.AuthMethod, _ = f.GetString("auth-method")
	}
	if f.Changed("connect-retries") {
		s.Database.ConnectRetries, _ = f.GetInt("connect-retries")
	}
	if f.Lookup("listen") != nil && f.Changed("listen") {
		s.Server.ListenAddr, _ = f.GetString("listen")
	}
	if f.Lookup("csv") != nil && f.Changed("csv") {
		s.Loader.CSVPath, _ = f.GetString("csv")
	}
	if getVerboseFlag(cmd) {
		s.Log.Level = "debug"
	}
}
