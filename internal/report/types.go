package report

// Feature is one top-level record in a choreo test report. The URI is
// typically the path of the source file the feature was loaded from.
type Feature struct {
	URI      string     `json:"uri"`
	Summary  Summary    `json:"summary"`
	Elements []Scenario `json:"elements"`
}

// Summary carries the per-feature aggregate counts embedded in the report.
// Missing fields decode to zero, which is exactly the default the
// aggregation wants.
type Summary struct {
	Tests              int     `json:"tests"`
	Failures           int     `json:"failures"`
	TotalTimeInSeconds float64 `json:"totalTimeInSeconds"`
}

// Scenario is a named test case within a feature. After holds the
// after-hook steps, reported separately by the runner.
type Scenario struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
	After []Step `json:"after"`
}

// Step is the smallest reported unit of execution.
type Step struct {
	Name   string `json:"name"`
	Result Result `json:"result"`
}

// Result holds the outcome of a single step.
type Result struct {
	Status string `json:"status"`
}

// Totals are the grand totals summed over every feature summary.
type Totals struct {
	Tests    int     `json:"tests"`
	Failures int     `json:"failures"`
	TimeS    float64 `json:"time_s"`
}

// FailingStep identifies one step that did not pass.
type FailingStep struct {
	URI      string `json:"uri"`
	Scenario string `json:"scenario"`
	Step     string `json:"step"`
	Status   string `json:"status"`
}

// Aggregation is the derived view of a report: grand totals plus every
// failing step in document order.
type Aggregation struct {
	Totals       Totals        `json:"totals"`
	FailingSteps []FailingStep `json:"failing_steps"`
}
