package main

import (
	"fmt"

	"chorep/internal/notify"
	"chorep/internal/ui"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify [report_path]",
	Short: "Send the report summary to the configured notifier",
	Long: `Sends a one-message summary (totals plus the first failing steps) to
Slack or to a generic JSON webhook, whichever is configured.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNotify,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
}

// newNotifier is a var so tests can inject a fake.
var newNotifier = notify.FromConfig

func runNotify(cmd *cobra.Command, args []string) error {
	agg, resolved, err := loadAggregation(cmd, args)
	if err != nil {
		return err
	}

	n, err := newNotifier()
	if err != nil {
		return err
	}

	msg := ui.NotifyMessage(agg, resolved)
	if err := n.Notify(cmd.Context(), msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Notification sent.")
	return nil
}
