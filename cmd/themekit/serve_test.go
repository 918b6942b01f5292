package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServeCommandStopsWithContext(t *testing.T) {
	setupCLIHome(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--log-level", "error", "serve", "--addr", "127.0.0.1:0"})

	require.NoError(t, root.ExecuteContext(ctx))
	require.Equal(t, "Serving themes on http://127.0.0.1:0\n", stdout.String())
}

func TestServeCommandRejectsBadAddress(t *testing.T) {
	setupCLIHome(t)

	_, err := executeCommand(t, "serve", "--addr", "256.0.0.1:bad")
	require.Error(t, err)

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
	require.Contains(t, err.Error(), "--addr")
}
