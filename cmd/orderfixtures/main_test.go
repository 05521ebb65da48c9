package main

import (
	"path/filepath"
	"testing"

	orderfixtures "github.com/kaifufi/zeroex-order-fixtures-go"
	"github.com/stretchr/testify/require"
)

func TestGenerateIgnoresNodeConfig(t *testing.T) {
	t.Setenv("ORDERFIXTURES_NETWORK_ID", "3")
	t.Setenv("ORDERFIXTURES_RPC_URL", "")

	rootCmd.SetArgs([]string{
		"generate",
		"--fixture", filepath.Join("testdata", "fixture.json"),
		"--scenario", filepath.Join("testdata", "scenario.json"),
		"--summary",
	})
	require.NoError(t, rootCmd.Execute())
}

func TestProxyRequiresNodeConfig(t *testing.T) {
	t.Setenv("ORDERFIXTURES_NETWORK_ID", "3")

	rootCmd.SetArgs([]string{"proxy", "list"})
	require.ErrorIs(t, rootCmd.Execute(), orderfixtures.ErrInvalidParam)
}

func TestBadLogLevelFailsEveryCommand(t *testing.T) {
	t.Setenv("ORDERFIXTURES_LOG_LEVEL", "loud")

	rootCmd.SetArgs([]string{"version"})
	require.ErrorIs(t, rootCmd.Execute(), orderfixtures.ErrInvalidParam)
}
