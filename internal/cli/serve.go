package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vvka-141/movieapi/internal/api"
	"github.com/vvka-141/movieapi/internal/logging"
	"github.com/vvka-141/movieapi/internal/movies"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Connects to PostgreSQL, creates the movies table if needed and serves the
catalog until SIGINT or SIGTERM. In-flight requests are drained before exit.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("listen", "", "Listen address (default 0.0.0.0:5000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewStructuredLogger(logging.Config{
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	connCfg, err := settings.ConnectionConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, release, err := connect(ctx, connCfg, logger)
	if err != nil {
		return err
	}
	defer release()

	store := movies.NewStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("prepare schema: %w", err)
	}

	router := api.NewRouter(store, logger.Zerolog(), api.RouterConfig{
		CORSAllowedOrigins: settings.Server.CORSAllowedOrigins,
	})
	srv := api.NewServer(api.DefaultServerConfig(settings.Server.ListenAddr), router, logger)
	return srv.Run(ctx)
}

// commandContext returns cmd's context, or Background when run outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
