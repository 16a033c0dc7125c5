package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCmd(t *testing.T) {
	t.Run("Parse_YAMLFile", func(t *testing.T) {
		path := writeFile(t, "decl.yaml", `
- KInt
- {kind: Identifier, text: x}
- Assign
- {kind: LiteralInt, value: 3}
- SemiColon
`)
		stdout, _, err := run(t, "", "parse", path)
		require.NoError(t, err)
		assert.Equal(t, "int x = 3;\n", stdout)
	})

	t.Run("Parse_Stdin", func(t *testing.T) {
		stdin := `["KReturn", {"kind": "Identifier", "text": "y"}, "SemiColon"]`
		stdout, _, err := run(t, stdin, "parse", "--format", "json", "--rule", "return")
		require.NoError(t, err)
		assert.Equal(t, "return y;\n", stdout)
	})

	t.Run("Parse_StdinWithoutFormat", func(t *testing.T) {
		_, _, err := run(t, "[]", "parse")
		assert.ErrorContains(t, err, "--format")
	})

	t.Run("Parse_Failure", func(t *testing.T) {
		path := writeFile(t, "partial.json", `["KInt", "Assign", {"kind": "LiteralInt", "value": 3}]`)

		stdout, stderr, err := run(t, "", "parse", "--rule", "declaration", path)
		assert.ErrorIs(t, err, errParseFailed)
		assert.Empty(t, stdout)
		assert.True(t, strings.HasPrefix(stderr, "Failed: Declaration:\n"))
		assert.Contains(t, stderr, "\t\tSuccess: int\n")
		assert.Contains(t, stderr, "Parsed Assign: token.Token at position 1, but it did not match pattern 'Identifier'")
	})

	t.Run("Parse_FailureFurthest", func(t *testing.T) {
		path := writeFile(t, "partial.json", `["KInt", "Assign"]`)

		_, stderr, err := run(t, "", "parse", "--rule", "declaration", "--furthest", path)
		assert.ErrorIs(t, err, errParseFailed)
		assert.Equal(t,
			"Parsed Assign: token.Token at position 1, but it did not match pattern 'Identifier'\n",
			stderr)
	})

	t.Run("Parse_ProgramStoppedEarly", func(t *testing.T) {
		// return 1; int y; int x = ;
		path := writeFile(t, "program.json", `[
			"KReturn", {"kind": "LiteralInt", "value": 1}, "SemiColon",
			"KInt", {"kind": "Identifier", "text": "y"}, "SemiColon",
			"KInt", {"kind": "Identifier", "text": "x"}, "Assign", "SemiColon"
		]`)

		stdout, stderr, err := run(t, "", "parse", path)
		assert.ErrorIs(t, err, errParseFailed)
		assert.Empty(t, stdout)
		assert.True(t, strings.HasPrefix(stderr,
			"Failed: decl.Program: no alternative matched at position 6:\n"+
				"\tFailed: Statement: no alternative matched at position 6:\n"+
				"\t\tFailed: Declaration:\n"))
		assert.Contains(t, stderr, "Failed: Initializer: no alternative matched at position 8:\n")
		assert.Contains(t, stderr, "Failed: Term: no alternative matched at position 9:\n")
		assert.True(t, strings.HasSuffix(stderr,
			"\tParsed KInt: token.Token at position 6, but it did not match pattern 'end of input'\n"))

		_, stderr, err = run(t, "", "parse", "--furthest", path)
		assert.ErrorIs(t, err, errParseFailed)
		assert.Equal(t,
			"Parsed SemiColon: token.Token at position 9, but it did not match pattern 'LiteralInt'\n",
			stderr)
	})

	t.Run("Parse_UnknownRule", func(t *testing.T) {
		path := writeFile(t, "empty.json", `[]`)
		_, _, err := run(t, "", "parse", "--rule", "module", path)
		assert.ErrorContains(t, err, "module")
	})

	t.Run("Parse_RuleFromEnv", func(t *testing.T) {
		t.Setenv("HATCH_RULE", "identifier")
		path := writeFile(t, "ident.json", `[{"kind": "Identifier", "text": "z"}]`)

		stdout, _, err := run(t, "", "parse", path)
		require.NoError(t, err)
		assert.Equal(t, "z\n", stdout)
	})

	t.Run("Parse_RuleFromConfigFile", func(t *testing.T) {
		config := writeFile(t, "hatch.yaml", "rule: type\nlog-level: warn\n")
		path := writeFile(t, "type.json", `["KFloat"]`)

		stdout, _, err := run(t, "", "parse", "--config", config, path)
		require.NoError(t, err)
		assert.Equal(t, "float\n", stdout)
	})

	t.Run("Parse_BadLogLevel", func(t *testing.T) {
		path := writeFile(t, "empty.json", `[]`)
		_, _, err := run(t, "", "parse", "--log-level", "loud", path)
		assert.Error(t, err)
	})
}

func TestRulesCmd(t *testing.T) {
	stdout, _, err := run(t, "", "rules")
	require.NoError(t, err)

	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, "DESCRIPTION")
	assert.Contains(t, stdout, "| program (default)")

	var rows []string
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		if strings.HasPrefix(line, "| ") && !strings.Contains(line, "NAME") {
			rows = append(rows, line)
		}
	}
	require.Len(t, rows, 9)
	assert.True(t, strings.HasPrefix(rows[0], "| block "))
}
