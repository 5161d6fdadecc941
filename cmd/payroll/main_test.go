package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_FullSession(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	input := strings.Join([]string{
		"4",
		"1", "E1", "John Smith", "1000",
		"2", "E2", "Ann", "15", "40",
		"3", "E3", "Lee", "200", "3",
		"1", "e1", "E4", "Kim", "50",
		"4",
		"5",
	}, "\n") + "\n"

	out, err := execute(t, input)
	require.NoError(t, err)

	assert.Contains(t, out, "------ Employee Payroll Report ------\nNo employees recorded.\n")
	assert.Contains(t, out, "Fixed Monthly Salary: $1000\n")
	assert.Contains(t, out, "Hours Worked: 40\nTotal Salary: $600\n")
	assert.Contains(t, out, "Projects Completed: 3\nTotal Salary: $600\n")
	assert.Equal(t, 1, strings.Count(out, "Invalid input! Please try again.\n"))
	assert.Equal(t, 4, strings.Count(out, "---------------------------------\n"))
}

func TestRootCommand_ConfigCapacity(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	dir := t.TempDir()
	logPath := filepath.Join(dir, "payroll.log")
	cfgPath := filepath.Join(dir, "config.yaml")
	content := "registry:\n  max_employees: 1\nlog:\n  level: info\n  output_paths: [" + logPath + "]\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	out, err := execute(t, "1\nE1\nAnn\n10\n2\n5\n", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Registry is full! Cannot add more employees.\n")

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "session_id")
	assert.Contains(t, string(logs), "employee registered")
}

func TestRootCommand_ConfigFromEnv(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: nope\n"), 0o600))
	t.Setenv("CONFIG_PATH", cfgPath)

	_, err := execute(t, "5\n")
	assert.Error(t, err)
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	_, err := execute(t, "5\n", "extra")
	assert.Error(t, err)
}

func TestRootCommand_EndOfInput(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	out, err := execute(t, "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Enter your choice: "))
}
