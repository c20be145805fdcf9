// Package config loads generator settings with viper.
//
// Settings come, in increasing priority, from built-in defaults, an
// optional YAML config file and TRANSFORMGEN_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"transformer-generator/internal/analyze"
	"transformer-generator/internal/gen"
	"transformer-generator/internal/schema"
)

// EnvPrefix prefixes environment overrides, e.g. TRANSFORMGEN_MAX_ARITY.
const EnvPrefix = "TRANSFORMGEN"

// Config holds every generator setting.
type Config struct {
	MaxArity         int    `mapstructure:"max_arity"`
	FileSuffix       string `mapstructure:"file_suffix"`
	Directive        string `mapstructure:"directive"`
	GenerateComments bool   `mapstructure:"generate_comments"`
	LogLevel         string `mapstructure:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxArity:         schema.DefaultMaxArity,
		FileSuffix:       gen.DefaultFileSuffix,
		Directive:        analyze.DefaultDirective,
		GenerateComments: true,
		LogLevel:         "info",
	}
}

// Load reads the config file at path, if path is not empty, and applies
// environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("max_arity", def.MaxArity)
	v.SetDefault("file_suffix", def.FileSuffix)
	v.SetDefault("directive", def.Directive)
	v.SetDefault("generate_comments", def.GenerateComments)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings for values generation cannot work with.
func (c *Config) Validate() error {
	if c.MaxArity < 1 {
		return fmt.Errorf("max_arity must be positive, got %d", c.MaxArity)
	}

	if !strings.HasSuffix(c.FileSuffix, ".go") {
		return fmt.Errorf("file_suffix must end in .go, got %q", c.FileSuffix)
	}

	if c.Directive == "" || strings.ContainsAny(c.Directive, " \t") {
		return fmt.Errorf("directive must be a single word, got %q", c.Directive)
	}

	return nil
}

// SchemaOptions returns the validation options derived from c.
func (c *Config) SchemaOptions() schema.Options {
	return schema.Options{MaxArity: c.MaxArity}
}

// AnalyzerOptions returns the loader options derived from c.
func (c *Config) AnalyzerOptions(types []string) analyze.Options {
	return analyze.Options{
		Directive: c.Directive,
		Schema:    c.SchemaOptions(),
		Types:     types,
	}
}

// GeneratorConfig returns the generator configuration derived from c.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()
	cfg.FileSuffix = c.FileSuffix
	cfg.GenerateComments = c.GenerateComments

	return cfg
}
