package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ferrodb/pkg/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunTextOutput(t *testing.T) {
	path := writeFile(t, "q.sql", "SELECT a;")

	code, out, _ := runCLI(t, "", path)

	require.Equal(t, exitOK, code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "0:0-0:5        Keyword     SELECT", lines[0])
	assert.Contains(t, lines[2], "Identifier")
	assert.Contains(t, lines[3], "Semicolon")
}

func TestRunSkipWhitespace(t *testing.T) {
	path := writeFile(t, "q.sql", "SELECT a ;")

	code, out, _ := runCLI(t, "", "-skip-whitespace", path)

	require.Equal(t, exitOK, code)
	assert.NotContains(t, out, "Whitespace")
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 3)
}

func TestRunJSONOutput(t *testing.T) {
	path := writeFile(t, "q.sql", "x >= 1.5")

	code, out, _ := runCLI(t, "", "-format", "json", "-skip-whitespace", path)
	require.Equal(t, exitOK, code)

	var records []ui.TokenRecord
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		var rec ui.TokenRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}

	require.Len(t, records, 3)
	assert.Equal(t, "Identifier", records[0].Kind)
	assert.Equal(t, "Operator(GtEq)", records[1].Token)
	assert.Equal(t, "1.5", records[2].Value)
	assert.Equal(t, 5, records[2].Start.Col)
	assert.Equal(t, 7, records[2].End.Col)
}

func TestRunReadsStdin(t *testing.T) {
	code, out, _ := runCLI(t, "42", "-")

	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Number")
	assert.Contains(t, out, "42")
}

func TestRunPipedStdinWithoutArguments(t *testing.T) {
	code, out, _ := runCLI(t, "WHERE", "-skip-whitespace")

	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Keyword")
}

func TestRunMultipleFilesKeepOrder(t *testing.T) {
	first := writeFile(t, "first.sql", "SELECT")
	second := writeFile(t, "second.sql", "FROM")

	code, out, _ := runCLI(t, "", "-jobs", "2", first, second)

	require.Equal(t, exitOK, code)
	firstAt := strings.Index(out, "==> "+first+" <==")
	secondAt := strings.Index(out, "==> "+second+" <==")
	require.GreaterOrEqual(t, firstAt, 0)
	require.Greater(t, secondAt, firstAt)
	assert.Contains(t, out[firstAt:secondAt], "SELECT")
	assert.Contains(t, out[secondAt:], "FROM")
}

func TestRunLexErrorExitCode(t *testing.T) {
	good := writeFile(t, "good.sql", "SELECT 1")
	bad := writeFile(t, "bad.sql", "SELECT 1.2.3")

	code, out, errOut := runCLI(t, "", good, bad)

	assert.Equal(t, exitLexError, code)
	assert.Contains(t, out, "SELECT", "tokens before the error are still printed")
	assert.Contains(t, errOut, bad+":1:8:")
	assert.Contains(t, errOut, "invalid numeric")
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.sql")

	code, _, errOut := runCLI(t, "", missing)

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "missing.sql")
}

func TestRunUnknownFormat(t *testing.T) {
	code, _, errOut := runCLI(t, "", "-format", "xml")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, `unknown format "xml"`)
}

func TestRunBadLogLevel(t *testing.T) {
	code, _, errOut := runCLI(t, "", "-log-level", "loud", "-")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "loud")
}

func TestRunHighlight(t *testing.T) {
	code, out, _ := runCLI(t, "SELECT 1", "-format", "highlight", "-")

	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "SELECT")
}

func TestStatementComplete(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"", true},
		{":quit", true},
		{"SELECT a", false},
		{"SELECT a;", true},
		{"SELECT a;  ", true},
		{"SELECT a; -- done", true},
		{"SELECT a\n", true},
		{"SELECT \"open", true},
		{"-- only a comment", false},
		{"SELECT a\nFROM t;", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statementComplete(tt.src), "%q", tt.src)
	}
}
