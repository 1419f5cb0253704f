package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"chorep/internal/report"
	"chorep/internal/telemetry"
	"chorep/internal/ui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

var (
	summaryJSON   bool
	summaryStrict bool
)

// rootCmd doubles as the summarize operation: `chorep [report_path]`.
var rootCmd = &cobra.Command{
	Use:   "chorep [report_path]",
	Short: "Summarize choreo JSON test reports",
	Long: `chorep reads a choreo test report file (or picks the newest matching
file in a directory), sums the per-feature totals and lists every step
whose status was not "passed".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSummary,
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	bindRootFlags(rootCmd.PersistentFlags())

	rootCmd.Flags().BoolVar(&summaryJSON, "json", false, "Output the summary as JSON")
	rootCmd.Flags().BoolVar(&summaryStrict, "strict", false, "Exit non-zero when any failing step exists")
}

func bindRootFlags(fs *pflag.FlagSet) {
	viper.BindPFlag("verbose", fs.Lookup("verbose"))
}

// initConfig reads in the config file and CHOREP_* environment variables.
func initConfig() {
	// explicit .env loading; missing files are fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("CHOREP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("report_path", "reports")
	viper.SetDefault("pattern", report.DefaultPattern)
	viper.SetDefault("verbose", false)
	viper.SetDefault("history.backend", "sqlite")
	viper.SetDefault("history.path", ".chorep.db")
	viper.SetDefault("history.postgres_dsn", "")
	viper.SetDefault("notifications.slack.enabled", os.Getenv("SLACK_BOT_USER_TOKEN") != "")
	viper.SetDefault("notifications.slack.channel", "#ci")
	viper.SetDefault("notifications.webhook.url", "")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	telemetry.InitLogger(viper.GetBool("verbose"), "")
}

// loadAggregation resolves, loads and aggregates the report named by the
// optional positional argument. The resolved path is announced on stderr
// so stdout stays machine-readable.
func loadAggregation(cmd *cobra.Command, args []string) (report.Aggregation, string, error) {
	path := viper.GetString("report_path")
	if path == "" {
		path = "reports"
	}
	if len(args) > 0 {
		path = args[0]
	}

	resolved, err := report.Locate(path, viper.GetString("pattern"))
	if err != nil {
		return report.Aggregation{}, "", err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Report: %s\n", resolved)
	slog.Debug("resolved report", "path", resolved)

	features, err := report.Load(resolved)
	if err != nil {
		return report.Aggregation{}, "", err
	}
	return report.Aggregate(features), resolved, nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	agg, resolved, err := loadAggregation(cmd, args)
	if err != nil {
		return err
	}

	if summaryJSON {
		doc := struct {
			report.Aggregation
			Report string `json:"report"`
		}{agg, resolved}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Totals(agg.Totals))
		if len(agg.FailingSteps) == 0 {
			fmt.Fprintln(out, "No failing steps.")
		} else {
			fmt.Fprintln(out, ui.FailingHeader())
			for _, fs := range agg.FailingSteps {
				fmt.Fprintln(out, ui.FailingStep(fs))
			}
		}
	}

	if summaryStrict && len(agg.FailingSteps) > 0 {
		return fmt.Errorf("%d failing steps", len(agg.FailingSteps))
	}
	return nil
}
