package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "calculus", cmd.Use)
	assert.Contains(t, cmd.Long, "Taylor-series")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"sin", "cos", "derive", "integrate", "points", "functions", "run", "demo"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestTrigCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"sin", "cos"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)

		reduceFlag := sub.Flags().Lookup("reduce")
		require.NotNil(t, reduceFlag)
		assert.Equal(t, "false", reduceFlag.DefValue)
	}
}

func TestDeriveCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	deriveCmd, _, err := cmd.Find([]string{"derive"})
	require.NoError(t, err)

	epsilonFlag := deriveCmd.Flags().Lookup("epsilon")
	require.NotNil(t, epsilonFlag)
	assert.Equal(t, "0.0001", epsilonFlag.DefValue)
}

func TestIntegrateCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	integrateCmd, _, err := cmd.Find([]string{"integrate"})
	require.NoError(t, err)

	samplesFlag := integrateCmd.Flags().Lookup("samples")
	require.NotNil(t, samplesFlag)
	assert.Equal(t, "n", samplesFlag.Shorthand)
	assert.Equal(t, "1000", samplesFlag.DefValue)

	ruleFlag := integrateCmd.Flags().Lookup("rule")
	require.NotNil(t, ruleFlag)
	assert.Equal(t, "inclusive", ruleFlag.DefValue)

	delayFlag := integrateCmd.Flags().Lookup("delay")
	require.NotNil(t, delayFlag)
	assert.Equal(t, "0s", delayFlag.DefValue)
}

func TestDemoCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	demoCmd, _, err := cmd.Find([]string{"demo"})
	require.NoError(t, err)

	delayFlag := demoCmd.Flags().Lookup("delay")
	require.NotNil(t, delayFlag)
	assert.Equal(t, "0s", delayFlag.DefValue)
}

func TestFormatValidation(t *testing.T) {
	// Test valid formats
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	// Test invalid formats
	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "invalid", "sin", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootCommand_EndToEnd(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"derive", "square", "2", "--epsilon", "0.5"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "d/dx square at x=2 = 4.5 (h=0.5)\n", out.String())
}

func TestRootCommand_NegativeArgumentAfterDashes(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"cos", "--", "-0"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "cos(-0) = 1\n", out.String())
}

func TestRootCommand_VerboseLogsToStderr(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"-v", "--format", "json", "derive", "square", "1"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "derive square at x=1")
	assert.NotContains(t, out.String(), "derive square at x=1")
}
