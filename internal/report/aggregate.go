package report

// Aggregate sums the per-feature summaries into grand totals and collects
// every step whose status is not "passed", in document order: features in
// report order, scenarios in feature order, regular steps before after
// hooks. A missing status is reported as "unknown" and counts as failing.
func Aggregate(features []Feature) Aggregation {
	agg := Aggregation{FailingSteps: []FailingStep{}}

	for _, feat := range features {
		agg.Totals.Tests += feat.Summary.Tests
		agg.Totals.Failures += feat.Summary.Failures
		agg.Totals.TimeS += feat.Summary.TotalTimeInSeconds

		for _, sc := range feat.Elements {
			steps := make([]Step, 0, len(sc.Steps)+len(sc.After))
			steps = append(steps, sc.Steps...)
			steps = append(steps, sc.After...)

			for _, st := range steps {
				if st.Result.Status == "passed" {
					continue
				}
				status := st.Result.Status
				if status == "" {
					status = "unknown"
				}
				agg.FailingSteps = append(agg.FailingSteps, FailingStep{
					URI:      feat.URI,
					Scenario: sc.Name,
					Step:     st.Name,
					Status:   status,
				})
			}
		}
	}

	return agg
}
