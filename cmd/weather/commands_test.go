package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := rootCmd()

	for _, path := range [][]string{
		{"now"},
		{"here"},
		{"units"},
		{"theme"},
		{"cities", "list"},
		{"cities", "add"},
		{"cities", "remove"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, "Find(%v)", path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	here, _, err := root.Find([]string{"here"})
	require.NoError(t, err)
	assert.NotNil(t, here.Flags().Lookup("lat"))
	assert.NotNil(t, here.Flags().Lookup("lon"))
	assert.NotNil(t, root.PersistentFlags().Lookup("days"))
}

func TestUnitsCommandRequiresOneArg(t *testing.T) {
	root := rootCmd()
	units, _, err := root.Find([]string{"units"})
	require.NoError(t, err)

	assert.Error(t, units.Args(units, nil))
	assert.NoError(t, units.Args(units, []string{"imperial"}))
}
