package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/procwatch/procwatch/internal/logger"
	"github.com/procwatch/procwatch/internal/process"
)

// FileConfig is the top-level configuration file structure. The primary
// format is JSON; viper also accepts TOML or YAML by extension.
type FileConfig struct {
	Server    ServerConfig  `json:"server" mapstructure:"server"`
	Log       logger.Config `json:"log" mapstructure:"log"`
	History   HistoryConfig `json:"history" mapstructure:"history"`
	Timing    TimingConfig  `json:"timing" mapstructure:"timing"`
	Processes []ProcConfig  `json:"processes" mapstructure:"processes"`
}

// ServerConfig configures the HTTP control surface.
type ServerConfig struct {
	Listen   string `json:"listen" mapstructure:"listen"`       // default :8110
	BasePath string `json:"base_path" mapstructure:"base_path"` // optional path prefix
	TLSCert  string `json:"tls_cert" mapstructure:"tls_cert"`   // optional cert file; with key enables TLS
	TLSKey   string `json:"tls_key" mapstructure:"tls_key"`
}

// HistoryConfig configures the optional lifecycle-event sink.
type HistoryConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	DSN     string `json:"dsn" mapstructure:"dsn"` // sqlite path, postgres:// or clickhouse:// DSN
}

// ProcConfig is one supervised process record, as written by the operator.
type ProcConfig struct {
	Name           string   `json:"name" mapstructure:"name"`
	Command        []string `json:"command" mapstructure:"command"`
	Cwd            string   `json:"cwd" mapstructure:"cwd"`
	PIDFile        string   `json:"pid_file" mapstructure:"pid_file"`
	ProcessMatch   string   `json:"process_match" mapstructure:"process_match"`
	ExecutablePath string   `json:"executable_path" mapstructure:"executable_path"`
	Enabled        *bool    `json:"enabled" mapstructure:"enabled"` // default true
}

// TimingConfig holds the supervisor timing knobs. All optional; values are
// duration strings ("5s", "500ms"). Zero means the built-in default.
type TimingConfig struct {
	StopWait          time.Duration `json:"stop_wait" mapstructure:"stop_wait"`
	SettleDelay       time.Duration `json:"settle_delay" mapstructure:"settle_delay"`
	ReconcileInterval time.Duration `json:"reconcile_interval" mapstructure:"reconcile_interval"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*FileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc FileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if fc.Server.Listen == "" {
		fc.Server.Listen = ":8110"
	}
	if err := fc.validate(); err != nil {
		return nil, err
	}
	return &fc, nil
}

func (fc *FileConfig) validate() error {
	seen := make(map[string]struct{}, len(fc.Processes))
	for i := range fc.Processes {
		p := &fc.Processes[i]
		if p.Name == "" {
			return fmt.Errorf("process #%d: name is required", i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("duplicate process name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
		if len(p.Command) == 0 {
			return fmt.Errorf("process %q: command is required", p.Name)
		}
	}
	return nil
}

// Specs converts the process records into supervisor specs, applying the
// enabled-by-default rule.
func (fc *FileConfig) Specs() []process.Spec {
	specs := make([]process.Spec, 0, len(fc.Processes))
	for i := range fc.Processes {
		p := &fc.Processes[i]
		enabled := true
		if p.Enabled != nil {
			enabled = *p.Enabled
		}
		specs = append(specs, process.Spec{
			Name:           p.Name,
			Command:        p.Command,
			WorkDir:        p.Cwd,
			PIDFile:        p.PIDFile,
			ProcessMatch:   p.ProcessMatch,
			ExecutablePath: p.ExecutablePath,
			Enabled:        enabled,
		})
	}
	return specs
}

// LoadSpecs is a convenience for callers that only need the spec list.
func LoadSpecs(path string) ([]process.Spec, error) {
	fc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return fc.Specs(), nil
}
