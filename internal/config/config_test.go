package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"listen": ":9000", "base_path": "/api"},
		"log": {"level": "debug"},
		"history": {"enabled": true, "dsn": "sqlite:///tmp/history.db"},
		"processes": [
			{
				"name": "web",
				"command": ["python", "app.py"],
				"cwd": "/srv/web",
				"pid_file": "/run/web.pid",
				"process_match": "app.py",
				"executable_path": "/usr/bin/python"
			},
			{
				"name": "worker",
				"command": ["./worker"],
				"enabled": false
			}
		]
	}`)

	fc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9000", fc.Server.Listen)
	require.Equal(t, "/api", fc.Server.BasePath)
	require.Equal(t, "debug", fc.Log.Level)
	require.True(t, fc.History.Enabled)

	specs := fc.Specs()
	require.Len(t, specs, 2)
	require.Equal(t, "web", specs[0].Name)
	require.Equal(t, []string{"python", "app.py"}, specs[0].Command)
	require.Equal(t, "/srv/web", specs[0].WorkDir)
	require.Equal(t, "/run/web.pid", specs[0].PIDFile)
	require.Equal(t, "app.py", specs[0].ProcessMatch)
	require.Equal(t, "/usr/bin/python", specs[0].ExecutablePath)
	require.True(t, specs[0].Enabled, "enabled defaults to true")
	require.False(t, specs[1].Enabled)
}

func TestLoadTiming(t *testing.T) {
	path := writeConfig(t, `{
		"timing": {"stop_wait": "10s", "settle_delay": "500ms", "reconcile_interval": "2s"},
		"processes": []
	}`)
	fc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, fc.Timing.StopWait)
	require.Equal(t, 500*time.Millisecond, fc.Timing.SettleDelay)
	require.Equal(t, 2*time.Second, fc.Timing.ReconcileInterval)
}

func TestLoadDefaultListen(t *testing.T) {
	path := writeConfig(t, `{"processes": []}`)
	fc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":8110", fc.Server.Listen)
}

func TestLoadRejectsDuplicateNames(t *testing.T) {
	path := writeConfig(t, `{"processes": [
		{"name": "a", "command": ["true"]},
		{"name": "a", "command": ["true"]}
	]}`)
	_, err := Load(path)
	require.ErrorContains(t, err, "duplicate process name")
}

func TestLoadRejectsMissingCommand(t *testing.T) {
	path := writeConfig(t, `{"processes": [{"name": "a"}]}`)
	_, err := Load(path)
	require.ErrorContains(t, err, "command is required")
}

func TestLoadRejectsMissingName(t *testing.T) {
	path := writeConfig(t, `{"processes": [{"command": ["true"]}]}`)
	_, err := Load(path)
	require.ErrorContains(t, err, "name is required")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadSpecsConvenience(t *testing.T) {
	path := writeConfig(t, `{"processes": [{"name": "a", "command": ["sleep", "1"]}]}`)
	specs, err := LoadSpecs(path)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	require.Equal(t, "a", specs[0].Name)
}
