package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp 执行 CLI 并返回标准输出。
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := createApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(context.Background(), append([]string{"xerrctxctl"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRender_Flags(t *testing.T) {
	out, err := runApp(t, "render",
		"--message", "Error querying database.",
		"--resource", "mapper/AuthorMapper.xml",
		"--sql", "select id2\nfrom author",
		"--cause", "SQLSyntaxErrorException: Unknown column 'id2'",
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(out, "\r\n", "\n")), "\n")
	assert.Equal(t, []string{
		"### Error querying database.",
		"### The error may exist in mapper/AuthorMapper.xml",
		"### SQL: select id2 from author",
		"### Cause: SQLSyntaxErrorException: Unknown column 'id2'",
	}, lines)
}

func TestRender_YAMLFileWithOverride(t *testing.T) {
	path := writeFile(t, "report.yaml", `
message: Error querying database.
object: defaultParameterMap
activity: setting parameters
sql: |
  select *
  from author
`)
	out, err := runApp(t, "render", "-f", path, "--activity", "executing query")
	require.NoError(t, err)

	assert.Contains(t, out, "### The error may involve defaultParameterMap")
	assert.Contains(t, out, "### The error occurred while executing query")
	assert.NotContains(t, out, "setting parameters")
	assert.Contains(t, out, "### SQL: select * from author")
}

func TestRender_JSONFormat(t *testing.T) {
	path := writeFile(t, "report.json", `{"resource": "mapper/BlogMapper.xml", "cause": "timeout"}`)
	out, err := runApp(t, "render", "--file", path, "--format", "json")
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, "error report", record["msg"])
	assert.NotContains(t, record, "time")

	group, ok := record["error_context"].(map[string]any)
	require.True(t, ok, out)
	assert.Equal(t, "mapper/BlogMapper.xml", group["resource"])
	assert.Equal(t, "timeout", group["cause"])
}

func TestRender_UsageErrors(t *testing.T) {
	_, err := runApp(t, "render")
	var ue *usageError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 2, exitCode(err))

	_, err = runApp(t, "render", "--message", "m", "--format", "xml")
	require.ErrorAs(t, err, &ue)
}

func TestRender_FileErrors(t *testing.T) {
	_, err := runApp(t, "render", "-f", writeFile(t, "report.toml", "message = 'x'"))
	assert.ErrorIs(t, err, errUnsupportedFormat)

	_, err = runApp(t, "render", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, errLoadFailed)
	assert.Equal(t, 1, exitCode(err))

	_, err = runApp(t, "render", "-f", writeFile(t, "bad.json", "{not json"))
	assert.ErrorIs(t, err, errParseFailed)
}

func TestParseReport_Empty(t *testing.T) {
	spec, err := parseReport(nil, koanfjson.Parser())
	require.NoError(t, err)
	assert.True(t, spec.isEmpty())
}

func TestReportSpec_Merge(t *testing.T) {
	base := reportSpec{Message: "base", Resource: "r.xml"}
	got := base.merge(reportSpec{Message: "override", Cause: "boom"})
	assert.Equal(t, reportSpec{Message: "override", Resource: "r.xml", Cause: "boom"}, got)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(errors.New("flag provided but not defined: -unknown")))
	assert.Equal(t, 2, exitCode(newUsageError("bad %s", "args")))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
}
