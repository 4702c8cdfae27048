package cli

import (
	"github.com/spf13/cobra"
	"github.com/vvka-141/movieapi/internal/db"
	"github.com/vvka-141/movieapi/internal/db/manager"
	"github.com/vvka-141/movieapi/internal/logging"
	"github.com/vvka-141/movieapi/pkg/movieapi"
)

var createdbCmd = &cobra.Command{
	Use:   "createdb",
	Short: "Create the configured database if it does not exist",
	Long: `Connects to the postgres management database with the configured
credentials and creates the database named by DATABASE_NAME (or --database).`,
	Args: cobra.NoArgs,
	RunE: runCreateDB,
}

func init() {
	rootCmd.AddCommand(createdbCmd)
}

func runCreateDB(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd)).WithOutput(cmd.ErrOrStderr())

	connCfg, err := settings.ConnectionConfig()
	if err != nil {
		return err
	}
	target := connCfg.Database

	ctx := commandContext(cmd)
	pool, release, err := connect(ctx, connCfg.WithDatabase(movieapi.DefaultManagementDB), logger)
	if err != nil {
		return err
	}
	defer release()

	created, err := manager.Ensure(ctx, manager.New(), db.NewPoolAdapter(pool), target)
	if err != nil {
		return err
	}
	if created {
		logger.Info("Database %s created.", target)
	} else {
		logger.Info("Database %s already exists.", target)
	}
	return nil
}
