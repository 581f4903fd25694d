package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixedOutput = "Resultant Matrix:\n18\t24\t30\t\n54\t69\t84\t\n90\t114\t138\t\n"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Run("prints the fixed product", func(t *testing.T) {
		stdout, stderr, err := execute(t)

		require.NoError(t, err)
		assert.Equal(t, fixedOutput, stdout)
		assert.Empty(t, stderr)
	})

	t.Run("verify does not change output", func(t *testing.T) {
		stdout, _, err := execute(t, "--verify")

		require.NoError(t, err)
		assert.Equal(t, fixedOutput, stdout)
	})

	t.Run("debug logs row tasks to stderr only", func(t *testing.T) {
		stdout, stderr, err := execute(t, "--debug", "--verify")

		require.NoError(t, err)
		assert.Equal(t, fixedOutput, stdout)
		assert.Contains(t, stderr, "row task finished")
		assert.Contains(t, stderr, "all row tasks joined")
		assert.Contains(t, stderr, "result verified")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		stdout, _, err := execute(t, "extra")

		assert.Error(t, err)
		assert.Empty(t, stdout)
	})
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "rowmul version "+version+"\n", stdout)
}
