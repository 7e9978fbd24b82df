package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/cmd/formcheck/commands"
	"github.com/dmitrymomot/formstate/pkg/formstate"
)

func TestLoadForms(t *testing.T) {
	t.Parallel()
	cfg := formstate.Config{Adapter: formstate.AdapterSchema.String()}

	t.Run("names from file and definition", func(t *testing.T) {
		t.Parallel()
		forms, apiOpts, err := commands.LoadForms(cfg, []string{"testdata/signup.yml", "testdata/login.yml"})
		require.NoError(t, err)
		assert.Len(t, apiOpts, 1, "only login.yml declares sanitizers")
		require.Contains(t, forms, "signup")
		require.Contains(t, forms, "sign-in")

		fs, err := forms["signup"]()
		require.NoError(t, err)
		assert.Equal(t, 3, fs.Len())
	})

	t.Run("each call builds a fresh fieldset", func(t *testing.T) {
		t.Parallel()
		forms, _, err := commands.LoadForms(cfg, []string{"testdata/login.yml"})
		require.NoError(t, err)

		first, err := forms["sign-in"]()
		require.NoError(t, err)
		first.TriggerSubmit()
		first.Validate(context.Background(), formstate.State{Values: formstate.Values{}})

		second, err := forms["sign-in"]()
		require.NoError(t, err)
		assert.NotSame(t, first, second)
		assert.True(t, second.Errors().Valid())
	})

	t.Run("duplicate names", func(t *testing.T) {
		t.Parallel()
		_, _, err := commands.LoadForms(cfg, []string{"testdata/signup.yml", "testdata/signup.yml"})
		assert.ErrorIs(t, err, commands.ErrReadDefinition)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, _, err := commands.LoadForms(cfg, []string{"testdata/nope.yml"})
		assert.ErrorIs(t, err, commands.ErrReadDefinition)
	})
}

func TestServeCommand_RequiresDefinition(t *testing.T) {
	_, err := execute(t, "", "serve")
	assert.ErrorIs(t, err, commands.ErrMissingDefinition)
}
