package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Demo(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)
	assert.Equal(t, "Preparing a rich and strong Expresso.\n"+
		"Preparing a smooth and creamy Latte.\n"+
		"Preparing a frothy Cappuccino.\n", out)
}

func TestRoot_DemoOrdersFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demo:\n  orders: [\"Mocha\", \"Latte\"]\n"), 0o644))

	out, _, err := run(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Coffee type!\nPreparing a smooth and creamy Latte.\n", out)
}

func TestRoot_BadConfig(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBrew(t *testing.T) {
	out, _, err := run(t, "brew", "Cappuccino", "latte", "")
	require.NoError(t, err)
	assert.Equal(t, "Preparing a frothy Cappuccino.\nUnknown Coffee type!\nUnknown Coffee type!\n", out)
}

func TestBrew_RequiresName(t *testing.T) {
	_, _, err := run(t, "brew")
	assert.Error(t, err)
}

func TestMenu(t *testing.T) {
	out, _, err := run(t, "menu")
	require.NoError(t, err)
	assert.Equal(t, "Expresso\nLatte\nCappuccino\n", out)
}

func TestDumpMetrics(t *testing.T) {
	out, errOut, err := run(t, "--dump-metrics", "brew", "Latte", "Latte", "Mocha")
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count([]byte(out), []byte("\n")))
	assert.Contains(t, errOut, `coffee_orders_total{kind="Latte",known="true"} 2`)
	assert.Contains(t, errOut, `coffee_orders_total{kind="unknown",known="false"} 1`)
}
