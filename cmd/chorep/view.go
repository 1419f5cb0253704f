package main

import (
	"fmt"

	"chorep/internal/ui"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var viewRaw bool

var viewCmd = &cobra.Command{
	Use:   "view [report_path]",
	Short: "Render the report summary as markdown in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVar(&viewRaw, "raw", false, "Print the markdown source without rendering")
}

func runView(cmd *cobra.Command, args []string) error {
	agg, resolved, err := loadAggregation(cmd, args)
	if err != nil {
		return err
	}

	md := ui.Markdown(agg, resolved)
	if viewRaw {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		// Fall back to the plain markdown source
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
