package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd("1.2.3")
	require.NotNil(t, root)
	assert.Equal(t, "rowgrid", root.Use)
	assert.Equal(t, "1.2.3", root.Version)

	t.Run("persistent flags registered", func(t *testing.T) {
		for _, name := range []string{"debug", "config", "log-file"} {
			assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
		}
	})

	t.Run("subcommands registered", func(t *testing.T) {
		names := make([]string, 0)
		for _, c := range root.Commands() {
			names = append(names, c.Name())
		}
		assert.Contains(t, names, "demo")
		assert.Contains(t, names, "show")
	})
}

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "rowgrid")
	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "show")
}

func TestRootRejectsBadConfig(t *testing.T) {
	_, err := execute(t, "show", "--config", "/does/not/exist.yaml")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "reading config"))
}
