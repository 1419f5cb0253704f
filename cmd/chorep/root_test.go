package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureReport = `[
  {
    "uri": "features/login.feature",
    "summary": {"tests": 3, "failures": 1, "totalTimeInSeconds": 1.25},
    "elements": [
      {
        "name": "login works",
        "steps": [
          {"name": "open page", "result": {"status": "passed"}},
          {"name": "submit form", "result": {"status": "failed"}}
        ],
        "after": [
          {"name": "cleanup"}
        ]
      }
    ]
  },
  {
    "uri": "features/logout.feature",
    "summary": {"tests": 2, "failures": 1, "totalTimeInSeconds": 0.25},
    "elements": [
      {
        "name": "logout works",
        "steps": [
          {"name": "click logout", "result": {"status": "passed"}}
        ]
      }
    ]
  }
]`

const fixtureAllPassed = `[
  {
    "uri": "features/ok.feature",
    "summary": {"tests": 1, "failures": 0, "totalTimeInSeconds": 0.5},
    "elements": [
      {
        "name": "green",
        "steps": [{"name": "works", "result": {"status": "passed"}}]
      }
    ]
  }
]`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func resetSummaryFlags(t *testing.T) {
	t.Helper()
	summaryJSON = false
	summaryStrict = false
	t.Cleanup(func() {
		summaryJSON = false
		summaryStrict = false
	})
}

func TestRunSummaryHuman(t *testing.T) {
	resetSummaryFlags(t)
	path := writeFixture(t, t.TempDir(), "choreo_test_report_1.json", fixtureReport)

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	require.NoError(t, runSummary(rootCmd, []string{path}))

	assert.Contains(t, errOut.String(), "Report: "+path)
	assert.Contains(t, out.String(), "tests=5 failures=2 time_s=1.5")
	assert.Contains(t, out.String(), "Failing steps:")
	assert.Contains(t, out.String(), "features/login.feature :: login works :: submit form")
	assert.Contains(t, out.String(), "[failed]")
	// The after hook without a status is reported as unknown.
	assert.Contains(t, out.String(), "cleanup")
	assert.Contains(t, out.String(), "[unknown]")
	// Passed steps never show up.
	assert.NotContains(t, out.String(), "open page")
	assert.NotContains(t, out.String(), "click logout")
}

func TestRunSummaryNoFailures(t *testing.T) {
	resetSummaryFlags(t)
	path := writeFixture(t, t.TempDir(), "choreo_test_report_1.json", fixtureAllPassed)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))

	require.NoError(t, runSummary(rootCmd, []string{path}))
	assert.Contains(t, out.String(), "tests=1 failures=0 time_s=0.5")
	assert.Contains(t, out.String(), "No failing steps.")
}

func TestRunSummaryJSON(t *testing.T) {
	resetSummaryFlags(t)
	summaryJSON = true
	path := writeFixture(t, t.TempDir(), "choreo_test_report_1.json", fixtureReport)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))

	require.NoError(t, runSummary(rootCmd, []string{path}))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Len(t, doc, 3)
	assert.Contains(t, doc, "totals")
	assert.Contains(t, doc, "failing_steps")
	assert.Contains(t, doc, "report")

	var totals struct {
		Tests    int     `json:"tests"`
		Failures int     `json:"failures"`
		TimeS    float64 `json:"time_s"`
	}
	require.NoError(t, json.Unmarshal(doc["totals"], &totals))
	assert.Equal(t, 5, totals.Tests)
	assert.Equal(t, 2, totals.Failures)
	assert.Equal(t, 1.5, totals.TimeS)

	var steps []map[string]string
	require.NoError(t, json.Unmarshal(doc["failing_steps"], &steps))
	require.Len(t, steps, 2)
	assert.Equal(t, "failed", steps[0]["status"])
	assert.Equal(t, "unknown", steps[1]["status"])
}

func TestRunSummaryJSONEmptyReport(t *testing.T) {
	resetSummaryFlags(t)
	summaryJSON = true
	path := writeFixture(t, t.TempDir(), "choreo_test_report_1.json", "[]")

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))

	require.NoError(t, runSummary(rootCmd, []string{path}))

	var doc struct {
		Totals       map[string]float64  `json:"totals"`
		FailingSteps []map[string]string `json:"failing_steps"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Zero(t, doc.Totals["tests"])
	require.NotNil(t, doc.FailingSteps)
	assert.Len(t, doc.FailingSteps, 0)
}

func TestRunSummaryPathNotFound(t *testing.T) {
	resetSummaryFlags(t)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))

	err := runSummary(rootCmd, []string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path not found")
	assert.Empty(t, out.String(), "nothing may reach stdout on locator failure")
}

func TestRunSummaryDirectoryPicksNewest(t *testing.T) {
	resetSummaryFlags(t)
	tmpDir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	old := writeFixture(t, tmpDir, "choreo_test_report_old.json", fixtureAllPassed)
	require.NoError(t, os.Chtimes(old, base, base))
	newest := writeFixture(t, tmpDir, "choreo_test_report_new.json", fixtureReport)
	require.NoError(t, os.Chtimes(newest, base.Add(time.Minute), base.Add(time.Minute)))

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	require.NoError(t, runSummary(rootCmd, []string{tmpDir}))
	assert.Contains(t, errOut.String(), "Report: "+newest)
	assert.Contains(t, out.String(), "tests=5 failures=2 time_s=1.5")
}

func TestRunSummaryDefaultPath(t *testing.T) {
	resetSummaryFlags(t)
	tmpDir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(cwd)
	require.NoError(t, os.Chdir(tmpDir))

	require.NoError(t, os.Mkdir("reports", 0755))
	writeFixture(t, "reports", "choreo_test_report_1.json", fixtureAllPassed)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))

	require.NoError(t, runSummary(rootCmd, nil))
	assert.Contains(t, out.String(), "No failing steps.")
}

func TestRunSummaryStrict(t *testing.T) {
	resetSummaryFlags(t)
	summaryStrict = true
	path := writeFixture(t, t.TempDir(), "choreo_test_report_1.json", fixtureReport)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))

	err := runSummary(rootCmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing steps")
	// The summary is still printed before the strict failure.
	assert.Contains(t, out.String(), "tests=5 failures=2 time_s=1.5")
}

func TestRunSummaryStrictAllPassed(t *testing.T) {
	resetSummaryFlags(t)
	summaryStrict = true
	path := writeFixture(t, t.TempDir(), "choreo_test_report_1.json", fixtureAllPassed)

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))

	require.NoError(t, runSummary(rootCmd, []string{path}))
}
