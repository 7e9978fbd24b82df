package commands_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formstate/cmd/formcheck/commands"
	"github.com/dmitrymomot/formstate/pkg/formstate"
	"github.com/dmitrymomot/formstate/pkg/sanitizer"
	"github.com/dmitrymomot/formstate/pkg/schema"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := commands.NewRootCmd("test")
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func decodeReport(t *testing.T, out string) commands.Report {
	t.Helper()
	var report commands.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	return report
}

func TestRootCommand_ShowsHelp(t *testing.T) {
	out, err := execute(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "check")
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		out, err := execute(t, "", "check", "--def", "testdata/signup.yml", "--values", "testdata/valid.yml")
		require.NoError(t, err)

		report := decodeReport(t, out)
		assert.True(t, report.Valid)
		assert.Empty(t, report.Errors)
	})

	t.Run("invalid values", func(t *testing.T) {
		out, err := execute(t, "", "check", "-d", "testdata/signup.yml", "-v", "testdata/invalid.yml")
		require.ErrorIs(t, err, commands.ErrInvalidForm)

		report := decodeReport(t, out)
		assert.False(t, report.Valid)
		assert.Equal(t, map[string][]string{
			"email":    {"must be a valid email"},
			"password": {"must be at least 8 characters"},
			"confirm":  {"must match the password"},
		}, report.Errors)
	})

	t.Run("values from stdin", func(t *testing.T) {
		stdin := "email: ada@example.com\npassword: correct horse\nconfirm: correct horse\n"
		out, err := execute(t, stdin, "check", "--def", "testdata/signup.yml")
		require.NoError(t, err)
		assert.True(t, decodeReport(t, out).Valid)
	})

	t.Run("empty values", func(t *testing.T) {
		out, err := execute(t, "", "check", "--def", "testdata/signup.yml")
		require.ErrorIs(t, err, commands.ErrInvalidForm)

		report := decodeReport(t, out)
		assert.Equal(t, []string{"is a required field"}, report.Errors["email"])
		assert.Equal(t, []string{"is a required field"}, report.Errors["password"])
	})

	t.Run("missing definition flag", func(t *testing.T) {
		_, err := execute(t, "", "check")
		assert.ErrorIs(t, err, commands.ErrMissingDefinition)
	})

	t.Run("definition file not found", func(t *testing.T) {
		_, err := execute(t, "", "check", "--def", "testdata/nope.yml")
		assert.ErrorIs(t, err, commands.ErrReadDefinition)
	})

	t.Run("unknown validation tag", func(t *testing.T) {
		_, err := execute(t, "", "check", "--def", "testdata/bad_rule.yml")
		assert.ErrorIs(t, err, schema.ErrInvalidTag)
	})

	t.Run("sanitizes before validating", func(t *testing.T) {
		out, err := execute(t, "", "check", "--def", "testdata/login.yml", "--values", "testdata/messy.yml")
		require.NoError(t, err)
		assert.True(t, decodeReport(t, out).Valid)
	})

	t.Run("unknown sanitizer", func(t *testing.T) {
		_, err := execute(t, "", "check", "--def", "testdata/bad_sanitizer.yml")
		assert.ErrorIs(t, err, sanitizer.ErrUnknownSanitizer)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, err := execute(t, "", "check", "--def", "testdata/signup.yml", "extra")
		assert.Error(t, err)
	})
}

func TestParseDefinition(t *testing.T) {
	t.Parallel()

	t.Run("builds one rule per field in order", func(t *testing.T) {
		t.Parallel()
		def, rules, err := commands.ParseDefinition(strings.NewReader(`
fields:
  - name: b
    rule: required
  - name: a
    rule: email
`))
		require.NoError(t, err)
		require.Len(t, def.Fields, 2)
		require.Len(t, rules, 2)
		assert.Equal(t, "b", rules[0].Name)
		assert.Equal(t, "a", rules[1].Name)
		assert.IsType(t, &schema.Schema{}, rules[0].Rule)
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()
		_, _, err := commands.ParseDefinition(strings.NewReader(""))
		assert.ErrorIs(t, err, commands.ErrNoFields)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, _, err := commands.ParseDefinition(strings.NewReader("fields: ["))
		assert.ErrorIs(t, err, commands.ErrReadDefinition)
	})
}

func TestParseValues(t *testing.T) {
	t.Parallel()

	values, err := commands.ParseValues(strings.NewReader("name: Ada\nage: 36\n"))
	require.NoError(t, err)
	assert.Equal(t, formstate.Values{"name": "Ada", "age": 36}, values)

	values, err = commands.ParseValues(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, values)

	_, err = commands.ParseValues(strings.NewReader("- not\n- a map\n"))
	assert.ErrorIs(t, err, commands.ErrReadValues)
}
