package ui

import (
	"fmt"
	"strings"

	"chorep/internal/report"
)

// Totals renders the one-line human summary.
func Totals(t report.Totals) string {
	return fmt.Sprintf("tests=%d failures=%d time_s=%g", t.Tests, t.Failures, t.TimeS)
}

// FailingHeader renders the heading printed above the failing step list.
func FailingHeader() string {
	return headerStyle.Render("Failing steps:")
}

// FailingStep renders one failing step line, indented under the header.
func FailingStep(fs report.FailingStep) string {
	return fmt.Sprintf("  %s :: %s :: %s %s", fs.URI, fs.Scenario, fs.Step, statusTag(fs.Status))
}

func statusTag(status string) string {
	tag := "[" + status + "]"
	switch status {
	case "failed":
		return failStyle.Render(tag)
	case "skipped", "pending":
		return skipStyle.Render(tag)
	case "unknown":
		return unknownStyle.Render(tag)
	default:
		return tag
	}
}

// Markdown builds the markdown document used by `chorep view`.
func Markdown(agg report.Aggregation, reportPath string) string {
	var sb strings.Builder
	sb.WriteString("# Test Report Summary\n\n")
	fmt.Fprintf(&sb, "Report: `%s`\n\n", reportPath)
	fmt.Fprintf(&sb, "- Tests: %d\n", agg.Totals.Tests)
	fmt.Fprintf(&sb, "- Failures: %d\n", agg.Totals.Failures)
	fmt.Fprintf(&sb, "- Time: %gs\n\n", agg.Totals.TimeS)

	if len(agg.FailingSteps) == 0 {
		sb.WriteString("No failing steps.\n")
		return sb.String()
	}

	sb.WriteString("## Failing steps\n\n")
	sb.WriteString("| Feature | Scenario | Step | Status |\n")
	sb.WriteString("|---------|----------|------|--------|\n")
	for _, fs := range agg.FailingSteps {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", fs.URI, fs.Scenario, fs.Step, fs.Status)
	}
	return sb.String()
}

// maxNotifySteps caps how many failing steps a notification carries so a
// broken run does not flood the channel.
const maxNotifySteps = 10

// NotifyMessage builds the plain-text message sent by `chorep notify`.
func NotifyMessage(agg report.Aggregation, reportPath string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (report: %s)\n", Totals(agg.Totals), reportPath)

	if len(agg.FailingSteps) == 0 {
		sb.WriteString("No failing steps.")
		return sb.String()
	}

	sb.WriteString("Failing steps:\n")
	shown := agg.FailingSteps
	if len(shown) > maxNotifySteps {
		shown = shown[:maxNotifySteps]
	}
	for _, fs := range shown {
		fmt.Fprintf(&sb, "- %s :: %s :: %s [%s]\n", fs.URI, fs.Scenario, fs.Step, fs.Status)
	}
	if rest := len(agg.FailingSteps) - len(shown); rest > 0 {
		fmt.Fprintf(&sb, "(and %d more)\n", rest)
	}
	return strings.TrimRight(sb.String(), "\n")
}
