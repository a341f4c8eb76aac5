package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all syspropc configuration.
type Config struct {
	// Watch configures the watcher daemon.
	Watch WatchConfig `yaml:"watch"`
	// Output configures where artifacts are written.
	Output OutputConfig `yaml:"output"`
	// Language is the backend ID compilations use.
	Language string `yaml:"language"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// WatchConfig holds watcher daemon settings.
type WatchConfig struct {
	// Dirs are the directories scanned and watched for schema files.
	Dirs []string `yaml:"dirs"`
	// Delay is how long a changed file sits in the queue before it is
	// recompiled, so bursts of writes coalesce into one compilation.
	Delay time.Duration `yaml:"delay"`
}

// OutputConfig holds artifact output settings.
type OutputConfig struct {
	DeclDir string `yaml:"decl_dir"`
	DefDir  string `yaml:"def_dir"`
	// IncludePrefix is prepended to the declaration artifact's name to form
	// the include path the definition artifact references.
	IncludePrefix string `yaml:"include_prefix"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Watch: WatchConfig{
			Dirs:  []string{"."},
			Delay: 2 * time.Second,
		},
		Output: OutputConfig{
			DeclDir:       ".",
			DefDir:        ".",
			IncludePrefix: "properties",
		},
		Language: "cpp",
		LogLevel: "info",
	}
}

// Load builds the configuration: defaults, then the YAML file at path if
// path is non-empty, then environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if dirs := os.Getenv("SYSPROPC_WATCH_DIRS"); dirs != "" {
		cfg.Watch.Dirs = strings.Split(dirs, ",")
	}
	if delay := os.Getenv("SYSPROPC_WATCH_DELAY_SECONDS"); delay != "" {
		if seconds, err := strconv.Atoi(delay); err == nil && seconds > 0 {
			cfg.Watch.Delay = time.Duration(seconds) * time.Second
		}
	}
	if v := os.Getenv("SYSPROPC_DECL_DIR"); v != "" {
		cfg.Output.DeclDir = v
	}
	if v := os.Getenv("SYSPROPC_DEF_DIR"); v != "" {
		cfg.Output.DefDir = v
	}
	if v := os.Getenv("SYSPROPC_INCLUDE_PREFIX"); v != "" {
		cfg.Output.IncludePrefix = v
	}
	if v := os.Getenv("SYSPROPC_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("SYSPROPC_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if len(c.Watch.Dirs) == 0 {
		return fmt.Errorf("watch.dirs must not be empty")
	}
	if c.Watch.Delay <= 0 {
		return fmt.Errorf("watch.delay must be positive, got %v", c.Watch.Delay)
	}
	if c.Language == "" {
		return fmt.Errorf("language must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
