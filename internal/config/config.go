// Package config resolves the run configuration from flags, environment,
// .env files and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aretw0/nsutil/pkg/adapters/file"
	"github.com/aretw0/nsutil/pkg/source"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable read by nsutil.
const EnvPrefix = "NSUTIL"

// Config holds the resolved settings of a run.
type Config struct {
	Registry    string `mapstructure:"registry"`
	Format      string `mapstructure:"format"`
	Debug       bool   `mapstructure:"debug"`
	MetricsFile string `mapstructure:"metrics-file"`
	Plain       bool   `mapstructure:"plain"`
	Echo        bool   `mapstructure:"echo"`
	DryRun      bool   `mapstructure:"dry-run"`

	// Lease holds a single-writer lease on stores that support one (redis).
	// Zero disables it.
	Lease time.Duration `mapstructure:"lease"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `mapstructure:"-"`
}

// DefaultRegistry is the store used when none is configured.
var DefaultRegistry = "file:" + file.DefaultPath

func setDefaults(v *viper.Viper) {
	v.SetDefault("registry", DefaultRegistry)
	v.SetDefault("format", string(source.FormatAuto))
	v.SetDefault("debug", false)
	v.SetDefault("metrics-file", "")
	v.SetDefault("plain", false)
	v.SetDefault("echo", false)
	v.SetDefault("dry-run", false)
	v.SetDefault("lease", 0)
}

type loader struct {
	configFile string
	envFiles   []string
}

// Option configures Load.
type Option func(*loader)

// WithConfigFile reads settings from path. A missing file is an error.
func WithConfigFile(path string) Option {
	return func(l *loader) {
		l.configFile = path
	}
}

// WithEnvFiles overrides the .env files loaded before the environment is read.
func WithEnvFiles(paths ...string) Option {
	return func(l *loader) {
		l.envFiles = paths
	}
}

// Load resolves the configuration. flags may be nil.
func Load(flags *pflag.FlagSet, opts ...Option) (*Config, error) {
	l := &loader{envFiles: []string{".env", ".env.local"}}
	for _, opt := range opts {
		opt(l)
	}

	if err := loadEnvFiles(l.envFiles); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", l.configFile, err)
		}
	} else {
		v.AddConfigPath(".nsutil")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that cannot be checked by type.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Registry) == "" {
		return errors.New("registry must not be empty")
	}
	if _, err := source.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Lease < 0 {
		return fmt.Errorf("lease must not be negative, got %s", c.Lease)
	}
	return nil
}

// SourceFormat returns the validated bulk source format.
func (c *Config) SourceFormat() source.Format {
	f, err := source.ParseFormat(c.Format)
	if err != nil {
		return source.FormatAuto
	}
	return f
}

func loadEnvFiles(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}
