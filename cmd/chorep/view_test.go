package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunViewRaw(t *testing.T) {
	viewRaw = true
	defer func() { viewRaw = false }()
	path := writeFixture(t, t.TempDir(), "choreo_test_report_1.json", fixtureReport)

	out := new(bytes.Buffer)
	viewCmd.SetOut(out)
	viewCmd.SetErr(new(bytes.Buffer))

	require.NoError(t, runView(viewCmd, []string{path}))
	assert.Contains(t, out.String(), "# Test Report Summary")
	assert.Contains(t, out.String(), "- Tests: 5")
	assert.Contains(t, out.String(), "| Feature | Scenario | Step | Status |")
	assert.Contains(t, out.String(), "| features/login.feature | login works | submit form | failed |")
}

func TestRunViewRendered(t *testing.T) {
	viewRaw = false
	path := writeFixture(t, t.TempDir(), "choreo_test_report_1.json", fixtureReport)

	out := new(bytes.Buffer)
	viewCmd.SetOut(out)
	viewCmd.SetErr(new(bytes.Buffer))

	require.NoError(t, runView(viewCmd, []string{path}))
	assert.Contains(t, out.String(), "Test Report Summary")
	assert.Contains(t, out.String(), "submit form")
}

func TestRunViewPathNotFound(t *testing.T) {
	out := new(bytes.Buffer)
	viewCmd.SetOut(out)
	viewCmd.SetErr(new(bytes.Buffer))

	err := runView(viewCmd, []string{"/nonexistent/path"})
	require.Error(t, err)
	assert.Empty(t, out.String())
}
