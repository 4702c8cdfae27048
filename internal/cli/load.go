package cli

import (
	"github.com/spf13/cobra"
	"github.com/vvka-141/movieapi/internal/loader"
	"github.com/vvka-141/movieapi/internal/logging"
	"github.com/vvka-141/movieapi/internal/metrics"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Bulk load movies from a CSV file",
	Long: `Creates the movies table if needed and appends every row of the CSV in
a single COPY. A missing CSV is reported and skipped. On failure nothing is
committed. When PUSHGATEWAY_URL is set, row count and duration are pushed
to that Prometheus Pushgateway. Loading twice appends duplicates, and running two loads at once
against the same table is unsupported.`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().String("csv", "", "CSV file to load (default data/imdb_top_1000.csv)")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd)).WithOutput(cmd.ErrOrStderr())

	connCfg, err := settings.ConnectionConfig()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	pool, release, err := connect(ctx, connCfg, logger)
	if err != nil {
		return err
	}
	defer release()

	res, err := loader.New(pool, logger).Load(ctx, settings.Loader.CSVPath)
	if err != nil {
		return err
	}
	if res.Skipped {
		return nil
	}
	logger.Verbose("loaded %d rows", res.Rows)

	if url := settings.Loader.PushGatewayURL; url != "" {
		if err := metrics.PushLoad(ctx, url); err != nil {
			logger.Error("%v", err)
		}
	}
	return nil
}
