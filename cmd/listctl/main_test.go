package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuzl/linkedlist"
	"github.com/liuzl/linkedlist/internal/config"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg, err := config.GetConfig()
	require.NoError(t, err)

	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	app := newApp(cfg)
	app.Writer = out
	app.ErrWriter = errOut

	err = app.Run(append([]string{"listctl"}, args...))
	return out.String(), err
}

func TestListctl(t *testing.T) {
	t.Run("basic json", func(t *testing.T) {
		out, err := runApp(t, "basic", "end:1", "end:2", "front:0")
		require.NoError(t, err)
		assert.JSONEq(t, `{"mode":"basic","size":3,"elements":["0","1","2"]}`, out)
	})
	t.Run("sorted text", func(t *testing.T) {
		out, err := runApp(t, "--order", "numeric", "--format", "text", "sorted", "add:5", "add:1", "add:3", "first")
		require.NoError(t, err)
		assert.Equal(t, "first => 1\nsorted size=3 [1 3 5]\n", out)
	})
	t.Run("sorted front fails", func(t *testing.T) {
		out, err := runApp(t, "sorted", "front:1")
		assert.ErrorIs(t, err, linkedlist.ErrUnsupportedOperation)
		assert.Empty(t, out)
	})
	t.Run("bad order", func(t *testing.T) {
		_, err := runApp(t, "--order", "random", "sorted", "add:1")
		assert.Error(t, err)
	})
	t.Run("bad log level", func(t *testing.T) {
		_, err := runApp(t, "--log-level", "loud", "basic")
		assert.Error(t, err)
	})
}
