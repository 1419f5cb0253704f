package main

import (
	"fmt"
	"strings"

	"chorep/internal/db"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var recordCmd = &cobra.Command{
	Use:   "record [report_path]",
	Short: "Save the report totals to the run history",
	Long: `Appends the aggregated totals of the resolved report to the history
store, so trends across runs can be inspected with "chorep history".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
}

// openStore is a var so tests can swap the backend.
var openStore = func() (db.Store, error) {
	return db.NewStore(db.StoreConfig{
		Type:             viper.GetString("history.backend"),
		ConnectionString: historyConnString(),
	})
}

func historyConnString() string {
	backend := strings.ToLower(viper.GetString("history.backend"))
	if backend == "postgres" || backend == "postgresql" {
		return viper.GetString("history.postgres_dsn")
	}
	return viper.GetString("history.path")
}

func runRecord(cmd *cobra.Command, args []string) error {
	agg, resolved, err := loadAggregation(cmd, args)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	run := db.Run{
		Report:   resolved,
		Tests:    agg.Totals.Tests,
		Failures: agg.Totals.Failures,
		TimeS:    agg.Totals.TimeS,
	}
	if err := store.SaveRun(run); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded run: tests=%d failures=%d time_s=%g\n",
		run.Tests, run.Failures, run.TimeS)
	return nil
}
