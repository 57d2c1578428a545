package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"version", "submit", "assemble", "quick", "lists", "init"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestAssembleCommandWritesRequest(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "request.txt")
	missing := filepath.Join(dir, "form.yaml") // default definition is used

	rootCmd.SetArgs([]string{
		"assemble", "--form", missing, "--tab", "2", "--out", out,
		"query=NC_002695.2,NC_000913.3",
	})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "querySelected=NC_000913.3%2CNC_002695.2&referenceSelected=&runMode=loci\n", string(data))
}

func TestOutputFlagsOnRoot(t *testing.T) {
	for _, name := range []string{"format", "out"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	for _, sub := range []string{"submit", "assemble", "quick"} {
		cmd, _, err := rootCmd.Find([]string{sub})
		require.NoError(t, err)
		assert.NotNil(t, cmd.Flag("format"), sub)
	}

	require.NoError(t, rootCmd.ParseFlags([]string{"--format", "yaml"}))
	assert.Equal(t, "yaml", outFormat)
	require.NoError(t, rootCmd.ParseFlags([]string{"--format", "form"}))
}
