package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath(t *testing.T) {
	t.Cleanup(func() { configPath = "" })

	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, "config.yaml", resolveConfigPath())

	t.Setenv("CONFIG_PATH", "/etc/traveldesk.yaml")
	assert.Equal(t, "/etc/traveldesk.yaml", resolveConfigPath())

	configPath = "local.yaml"
	assert.Equal(t, "local.yaml", resolveConfigPath())
}

func TestReportNames(t *testing.T) {
	assert.Equal(t, []string{
		"popular-destinations",
		"cancellations-refunds",
		"highest-activity",
		"customer-spending",
		"discount-impact",
	}, reportNames())
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])
	assert.True(t, names["report"])
}

func TestReportCommand_RequiresName(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"report"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestMigrateCommand_MissingConfig(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"migrate", "--config", t.TempDir() + "/missing.yaml"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configPath = ""
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}
