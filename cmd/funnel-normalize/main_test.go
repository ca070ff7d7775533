// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/funnel-normalize/pkg/types"
)

const sampleExport = "Company Name,Job Title,Location,Date Applied,Status,Job URL\n" +
	"Acme,Engineer,Remote,01/15/2024,,https://acme.example/jobs/1\n" +
	"Globex,Analyst,\"Austin, TX\",\"Feb 3, 2024\",Interviewing,\n" +
	"Initech,SRE,,not-a-date,Rejected,\n"

// --- test helpers ---

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- root command ---

func TestRootNormalizes(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "simplify.csv",
		"Company Name,Job Title,Date Applied\nAcme,Engineer,01/15/2024\n")
	output := filepath.Join(dir, "out", "normalized.csv")

	stdout, _, err := execute(t, "--input", input, "--output", output)
	require.NoError(t, err)
	assert.Equal(t, "Normalized 1 rows -> "+output+"\n", stdout)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t,
		"company,role,location,applied_date,status,job_url,source\r\n"+
			"Acme,Engineer,,2024-01-15,Applied,,Simplify\r\n",
		string(data))
}

func TestRootCustomSource(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", "company\nAcme\n")
	output := filepath.Join(dir, "out.csv")

	_, _, err := execute(t, "--input", input, "--output", output, "--source", "Huntr")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme,,,,Applied,,Huntr\r\n")
}

func TestRootMissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "sub", "out.csv")

	stdout, stderr, err := execute(t, "--input", filepath.Join(dir, "nope.csv"), "--output", output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input CSV not found")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "input CSV not found")
	assert.NoFileExists(t, output)
	assert.NoDirExists(t, filepath.Join(dir, "sub"))
}

func TestRootRequiresFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no flags", args: nil},
		{name: "input only", args: []string{"--input", "x.csv"}},
		{name: "output only", args: []string{"--output", "y.csv"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "required flag")
		})
	}
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "funnel.yaml",
		"source: Teal\nlog_level: error\naliases:\n  company: [employer]\n  status: [stage]\n")
	input := writeFile(t, dir, "in.csv", "Employer,Stage\nAcme,Offer\n")
	output := filepath.Join(dir, "out.csv")

	_, _, err := execute(t, "--config", cfg, "--input", input, "--output", output)
	require.NoError(t, err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme,,,,Offer,,Teal\r\n")

	// An explicit flag beats the config file.
	_, _, err = execute(t, "--config", cfg, "--input", input, "--output", output, "--source", "Manual")
	require.NoError(t, err)
	data, err = os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme,,,,Offer,,Manual\r\n")
}

func TestRootConfigErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", "company\nAcme\n")
	output := filepath.Join(dir, "out.csv")

	t.Run("missing config file", func(t *testing.T) {
		_, _, err := execute(t, "--config", filepath.Join(dir, "absent.yaml"), "--input", input, "--output", output)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config")
	})

	t.Run("alias for unknown field", func(t *testing.T) {
		cfg := writeFile(t, dir, "bad.yaml", "aliases:\n  salary: [pay]\n")
		_, _, err := execute(t, "--config", cfg, "--input", input, "--output", output)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown field")
		assert.NoFileExists(t, output)
	})

	t.Run("unknown log level", func(t *testing.T) {
		_, _, err := execute(t, "--log-level", "loud", "--input", input, "--output", output)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log level")
	})
}

func TestRootAliasesFile(t *testing.T) {
	dir := t.TempDir()
	aliases := writeFile(t, dir, "aliases.yaml", "aliases:\n  job_url: [apply link]\n")
	input := writeFile(t, dir, "in.csv", "Company,Apply Link\nAcme,https://a.example\n")
	output := filepath.Join(dir, "out.csv")

	_, _, err := execute(t, "--aliases-file", aliases, "--input", input, "--output", output)
	require.NoError(t, err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme,,,,Applied,https://a.example,Simplify\r\n")
}

func TestRootDebugLogging(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", "Company,Date Applied\nAcme,someday\n")
	output := filepath.Join(dir, "out.csv")

	stdout, stderr, err := execute(t, "--log-level", "debug", "--input", input, "--output", output)
	require.NoError(t, err)
	assert.Equal(t, "Normalized 1 rows -> "+output+"\n", stdout)
	assert.Contains(t, stderr, "applied date kept as exported")
	assert.Contains(t, stderr, "someday")
}

// --- preview ---

func TestPreviewJSON(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", sampleExport)

	stdout, _, err := execute(t, "preview", input, "--format", "json")
	require.NoError(t, err)

	var got []types.Application
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 3)
	assert.Equal(t, types.Application{
		Company: "Acme", Role: "Engineer", Location: "Remote", AppliedDate: "2024-01-15",
		Status: "Applied", JobURL: "https://acme.example/jobs/1", Source: "Simplify",
	}, got[0])
	assert.Equal(t, "Austin, TX", got[1].Location)
	assert.Equal(t, "not-a-date", got[2].AppliedDate)
	assert.NoFileExists(t, filepath.Join(dir, "out.csv"))
}

func TestPreviewYAMLWithLimit(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", sampleExport)

	stdout, _, err := execute(t, "preview", input, "--format", "yaml", "--limit", "2", "--source", "Teal")
	require.NoError(t, err)

	var got []types.Application
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Teal", got[1].Source)
	assert.Equal(t, "Interviewing", got[1].Status)
}

func TestPreviewTable(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", sampleExport)

	stdout, _, err := execute(t, "preview", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "company")
	assert.Contains(t, stdout, "https://acme.example/jobs/1")
	assert.Contains(t, stdout, "3 of 3 rows (1 applied dates kept as exported)")
}

func TestPreviewEmptyAndErrors(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.csv", "company,role\n")

	stdout, _, err := execute(t, "preview", empty)
	require.NoError(t, err)
	assert.Equal(t, "No rows found.\n", stdout)

	_, _, err = execute(t, "preview", empty, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "xml"`)

	_, _, err = execute(t, "preview", filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input CSV not found")

	_, _, err = execute(t, "preview")
	require.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10c", truncate("exactly10c", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "Zürich ...", truncate("Zürich Switzerland", 10))
}

// --- aliases ---

func TestAliasesYAML(t *testing.T) {
	dir := t.TempDir()
	extra := writeFile(t, dir, "aliases.yaml", "aliases:\n  role: [opening]\n")

	stdout, _, err := execute(t, "aliases", "--aliases-file", extra)
	require.NoError(t, err)

	var got struct {
		Aliases map[string][]string `yaml:"aliases"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []string{"role", "job title", "title", "position", "opening"}, got.Aliases["role"])
	assert.Len(t, got.Aliases, 6)
}

func TestAliasesTable(t *testing.T) {
	stdout, _, err := execute(t, "aliases", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "applied_date   date applied, applied date, application date\n")
	assert.NotContains(t, stdout, "source")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "funnel-normalize dev\n", stdout)
}
