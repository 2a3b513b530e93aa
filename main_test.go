package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLayout(t *testing.T) {
	root := newRootCmd()

	cmd, _, err := root.Find([]string{"admin", "reset-password"})
	require.NoError(t, err)
	assert.Equal(t, "reset-password", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("email"))
	assert.NotNil(t, cmd.Flags().Lookup("password"))

	cmd, _, err = root.Find([]string{"settings", "show"})
	require.NoError(t, err)
	assert.Equal(t, "show", cmd.Name())

	for _, name := range []string{"run", "version"} {
		cmd, _, err = root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
