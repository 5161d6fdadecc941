package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultMaxEmployees = 100
	defaultLogLevel     = "warn"
	defaultLogEncoding  = "json"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Log      LogConfig      `yaml:"log"`
}

// RegistryConfig は社員名簿に関する設定です。
type RegistryConfig struct {
	// MaxEmployees は登録可能な最大件数です。0 は無制限を意味します。
	MaxEmployees *int `yaml:"max_employees"`
}

// LogConfig はログ出力に関する設定です。
type LogConfig struct {
	Level       string   `yaml:"level"`
	Encoding    string   `yaml:"encoding"`
	OutputPaths []string `yaml:"output_paths"`
}

// Default は設定ファイルが無い場合の設定を返します。
func Default() *Config {
	cfg := &Config{}
	// 既定値のみで検証に失敗することはない
	_ = cfg.validateAndNormalize()
	return cfg
}

// Load は指定されたパスから設定ファイルを読み込みます。path が空の場合は既定値を返します。
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// EffectivePath はフラグ、環境変数 CONFIG_PATH の順に設定ファイルのパスを決定します。
func EffectivePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CONFIG_PATH")
}

// Capacity は名簿の最大件数を返します。
func (r RegistryConfig) Capacity() int {
	if r.MaxEmployees == nil {
		return defaultMaxEmployees
	}
	return *r.MaxEmployees
}

func (c *Config) validateAndNormalize() error {
	if err := c.Registry.validateAndNormalize(); err != nil {
		return err
	}
	return c.Log.validateAndNormalize()
}

func (r *RegistryConfig) validateAndNormalize() error {
	if r.MaxEmployees == nil {
		n := defaultMaxEmployees
		r.MaxEmployees = &n
	}
	if *r.MaxEmployees < 0 {
		return fmt.Errorf("config: registry.max_employees must not be negative")
	}
	return nil
}

func (l *LogConfig) validateAndNormalize() error {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is not supported", l.Level)
	}

	l.Encoding = strings.ToLower(strings.TrimSpace(l.Encoding))
	if l.Encoding == "" {
		l.Encoding = defaultLogEncoding
	}
	if l.Encoding != "json" && l.Encoding != "console" {
		return fmt.Errorf("config: log.encoding %q is not supported", l.Encoding)
	}

	if len(l.OutputPaths) == 0 {
		l.OutputPaths = []string{"stderr"}
	}
	for _, p := range l.OutputPaths {
		if p == "stdout" {
			return fmt.Errorf("config: log.output_paths must not include stdout")
		}
	}

	return nil
}
