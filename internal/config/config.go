// Package config loads generator settings from defaults, an optional
// moduledef.yaml file, MODULEDEF_* environment variables, and bound flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"moduledef-generator/internal/gen"
	"moduledef-generator/internal/identifiers"
	"moduledef-generator/internal/metadata"
	"moduledef-generator/internal/ngmodule"
	"moduledef-generator/internal/plan"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "MODULEDEF"

// Config represents the generator configuration
type Config struct {
	OutputDir  string `mapstructure:"output_dir"`
	CoreModule string `mapstructure:"core_module"`
	GuardFlag  string `mapstructure:"guard_flag"`
	EmitTypes  bool   `mapstructure:"emit_types"`
	Mode       string `mapstructure:"mode"`
	ScopeMode  string `mapstructure:"scope_mode"`
	Version    string `mapstructure:"version"`
	Jobs       int    `mapstructure:"jobs"`
}

// New returns a viper instance carrying the defaults and environment binding.
// Callers may bind flags on it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("output_dir", "./generated")
	v.SetDefault("core_module", identifiers.DefaultCoreModule)
	v.SetDefault("guard_flag", identifiers.DefaultJitGuard)
	v.SetDefault("emit_types", true)
	v.SetDefault("mode", string(gen.ModeFull))
	v.SetDefault("scope_mode", ngmodule.ScopeInline.String())
	v.SetDefault("version", ngmodule.DefaultEmitterConfig().Version)
	v.SetDefault("jobs", 4)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the configuration. An explicit path must exist; without one,
// moduledef.yaml in the working directory is read when present.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = New()
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("moduledef")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// GeneratorConfig converts the settings into a generator configuration.
func (c *Config) GeneratorConfig(logger *zap.Logger) (gen.GeneratorConfig, error) {
	mode, err := gen.ParseMode(c.Mode)
	if err != nil {
		return gen.GeneratorConfig{}, fmt.Errorf("mode: %w", err)
	}

	return gen.GeneratorConfig{
		OutputDir: c.OutputDir,
		EmitTypes: c.EmitTypes,
		Mode:      mode,
		Emitter: ngmodule.EmitterConfig{
			Identifiers: identifiers.New(c.CoreModule, c.GuardFlag),
			Version:     c.Version,
		},
		Jobs:   c.Jobs,
		Logger: logger,
	}, nil
}

// ResolutionConfig converts the settings into a resolver configuration.
func (c *Config) ResolutionConfig(logger *zap.Logger) (plan.ResolutionConfig, error) {
	mode, err := ngmodule.ParseSelectorScopeMode(c.ScopeMode)
	if err != nil {
		return plan.ResolutionConfig{}, fmt.Errorf("scope_mode: %w", err)
	}

	return plan.ResolutionConfig{
		DefaultScopeMode: mode,
		Logger:           logger,
	}, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}

	if _, err := gen.ParseMode(cfg.Mode); err != nil {
		return fmt.Errorf("mode: %w", err)
	}

	if _, err := ngmodule.ParseSelectorScopeMode(cfg.ScopeMode); err != nil {
		return fmt.Errorf("scope_mode: %w", err)
	}

	if cfg.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got: %d", cfg.Jobs)
	}

	if cfg.GuardFlag != "" && !metadata.IsIdentifier(cfg.GuardFlag) {
		return fmt.Errorf("guard_flag must be an identifier, got: %q", cfg.GuardFlag)
	}

	if strings.ContainsAny(cfg.CoreModule, "\"\n") {
		return fmt.Errorf("core_module must be a plain module specifier, got: %q", cfg.CoreModule)
	}

	return nil
}
