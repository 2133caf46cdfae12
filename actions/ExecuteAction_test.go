package actions

import (
	"bytes"
	"errors"
	"testing"

	"github.com/reaandrew/sqlpick/core"
	"github.com/reaandrew/sqlpick/pickers"
	"github.com/reaandrew/sqlpick/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var execConfig = core.Config{
	Username: "u",
	DBName:   "d",
	Queries:  []core.Query{{Alias: "a", SQL: "SELECT 1"}},
}

func TestExecuteAction_LaunchesClient(t *testing.T) {
	var out bytes.Buffer
	runner := &tools.MockProcessRunner{Pid: 42}

	action := ExecuteAction{Picker: &pickers.MockPicker{Alias: "a"}, Runner: runner, Out: &out}
	require.NoError(t, action.Run(execConfig))

	require.Len(t, runner.Calls, 1)
	assert.Equal(t, "csql", runner.Calls[0].Name)
	assert.Equal(t, []string{"-u", "u", "d", "-S", "-c", "SELECT 1"}, runner.Calls[0].Args)

	assert.Contains(t, out.String(), "Executing: csql -u u d -S -c 'SELECT 1'\n")
	assert.Contains(t, out.String(), "Output: Process{pid: 42")
}

func TestExecuteAction_CustomClient(t *testing.T) {
	var out bytes.Buffer
	runner := &tools.MockProcessRunner{}

	action := ExecuteAction{Picker: &pickers.MockPicker{Alias: "a"}, Runner: runner, Client: "/opt/bin/csql", Out: &out}
	require.NoError(t, action.Run(execConfig))

	require.Len(t, runner.Calls, 1)
	assert.Equal(t, "/opt/bin/csql", runner.Calls[0].Name)
}

func TestExecuteAction_AbortLaunchesNothing(t *testing.T) {
	var out bytes.Buffer
	runner := &tools.MockProcessRunner{}

	action := ExecuteAction{Picker: &pickers.MockPicker{Abort: true}, Runner: runner, Out: &out}
	require.NoError(t, action.Run(execConfig))

	assert.Empty(t, runner.Calls)
	assert.Equal(t, "No query selected.\n", out.String())
}

func TestExecuteAction_SpawnFailure(t *testing.T) {
	var out bytes.Buffer
	runner := &tools.MockProcessRunner{Err: errors.New("executable file not found in $PATH")}

	action := ExecuteAction{Picker: &pickers.MockPicker{Alias: "a"}, Runner: runner, Out: &out}
	err := action.Run(execConfig)

	assert.Error(t, err)
	assert.NotContains(t, out.String(), "Output:")
}
