package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/artemijrodionov/haversine/internal/pairs"
)

const envPrefix = "HAVERSINE"

// Config holds the generator settings. Each field can come from a flag,
// a HAVERSINE_* environment variable, haversine.yaml or the defaults,
// in that order of precedence.
type Config struct {
	Seed     uint64    `mapstructure:"seed"`
	Method   string    `mapstructure:"method"`
	Clusters int       `mapstructure:"clusters"`
	Out      string    `mapstructure:"out"`
	Answers  string    `mapstructure:"answers"`
	Log      LogConfig `mapstructure:"log"`

	// Seeded reports whether Seed was given explicitly.
	Seeded bool `mapstructure:"-"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"seed":       "seed",
	"method":     "method",
	"clusters":   "clusters",
	"out":        "out",
	"answers":    "answers",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load reads the configuration. flags may be nil; path names an explicit
// config file, otherwise ./haversine.yaml is used when present.
func Load(flags *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("method", string(pairs.Uniform))
	v.SetDefault("clusters", pairs.DefaultClusters)
	v.SetDefault("out", "-")
	v.SetDefault("answers", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("haversine")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// HAVERSINE_LOG_LEVEL -> log.level
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// seed has no default, so it must be bound to be seen by Unmarshal
	if err := v.BindEnv("seed"); err != nil {
		return nil, err
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Seeded = v.IsSet("seed")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	var errs []string

	var m pairs.Method
	if err := m.Set(c.Method); err != nil {
		errs = append(errs, fmt.Sprintf("method: %v", err))
	}
	if c.Clusters <= 0 {
		errs = append(errs, fmt.Sprintf("clusters must be positive, got %d", c.Clusters))
	}
	if c.Out == "" {
		errs = append(errs, "out is required (use - for stdout)")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func (c *Config) SamplingMethod() pairs.Method {
	return pairs.Method(c.Method)
}

func (c *Config) String() string {
	seed := "clock"
	if c.Seeded {
		seed = fmt.Sprint(c.Seed)
	}
	return fmt.Sprintf("Config{method: %s, clusters: %d, seed: %s, out: %s, answers: %q}",
		c.Method, c.Clusters, seed, c.Out, c.Answers)
}
