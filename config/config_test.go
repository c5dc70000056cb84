package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.yaml", `logging:
  level: "debug"
  console: true
metrics:
  sinks:
    - type: "prometheus"
      conf:
        namespace: "cafe"
demo:
  orders: ["Latte", "Mocha"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"logging.level", cfg.Logging.Level, "debug"},
		{"logging.console", cfg.Logging.Console, true},
		{"metrics.sinks", len(cfg.Metrics.Sinks), 1},
		{"metrics.sinks[0].type", cfg.Metrics.Sinks[0].Type, "prometheus"},
		{"metrics.sinks[0].conf.namespace", cfg.Metrics.Sinks[0].Conf["namespace"], "cafe"},
		{"demo.orders", len(cfg.Demo.Orders), 2},
		{"demo.orders[1]", cfg.Demo.Orders[1], "Mocha"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"logging":{"level":"warn"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, []string{"Expresso", "Latte", "Cappuccino"}, cfg.Demo.Orders)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Console)
	assert.Empty(t, cfg.Metrics.Sinks)
	assert.Equal(t, []string{"Expresso", "Latte", "Cappuccino"}, cfg.Demo.Orders)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("COFFEE_LOGGING__LEVEL", "error")
	path := writeFile(t, "config.yaml", "logging:\n  level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "config.toml", "a = 1"))
	assert.Error(t, err, "unsupported extension")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "missing file")

	_, err = Load(writeFile(t, "config.yaml", "logging:\n  level: loud\n"))
	assert.Error(t, err, "invalid level")
}

func TestDemoConfig_Validate(t *testing.T) {
	assert.Error(t, DemoConfig{Orders: []string{}}.Validate())
	assert.NoError(t, DemoConfig{Orders: []string{""}}.Validate())
}
