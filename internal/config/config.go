package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/viceverser"
)

// Config holds the lemmatization server configuration.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Data       DataConfig       `yaml:"data"`
	Lemmatizer LemmatizerConfig `yaml:"lemmatizer"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int      `yaml:"port"`
	ReadTimeoutSec  int      `yaml:"read_timeout_sec"`
	WriteTimeoutSec int      `yaml:"write_timeout_sec"`
	ShutdownSec     int      `yaml:"shutdown_timeout_sec"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
	MaxTokens       int      `yaml:"max_tokens"` // per POST /api/lemmatize/tokens request
}

// DataConfig locates the lexicon, lookup and exception files.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// LemmatizerConfig tunes the resolution engine. Empty fields keep the
// built-in French defaults.
type LemmatizerConfig struct {
	Separators     SeparatorsConfig    `yaml:"separators"`
	Priority       []string            `yaml:"priority"`
	Similarities   map[string][]string `yaml:"similarities"`
	CompoundPrefix string              `yaml:"compound_prefix"`
}

// SeparatorsConfig holds the feature serialization separators.
type SeparatorsConfig struct {
	Field   string `yaml:"field"`
	Value   string `yaml:"value"`
	Feature string `yaml:"feature"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration, expanding ${VAR} references first.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.HTTP.MaxTokens <= 0 {
		c.HTTP.MaxTokens = 10000
	}
	if len(c.HTTP.AllowedOrigins) == 0 {
		c.HTTP.AllowedOrigins = []string{"*"}
	}
	if c.Data.Dir == "" {
		c.Data.Dir = "data"
	}
	sep := &c.Lemmatizer.Separators
	if sep.Field == "" {
		sep.Field = viceverser.DefaultSeparators.Field
	}
	if sep.Value == "" {
		sep.Value = viceverser.DefaultSeparators.Value
	}
	if sep.Feature == "" {
		sep.Feature = viceverser.DefaultSeparators.Feature
	}
	if c.Lemmatizer.CompoundPrefix == "" {
		c.Lemmatizer.CompoundPrefix = viceverser.POSAdposition.String()
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	sep := c.Lemmatizer.Separators
	if sep.Field == sep.Feature || sep.Value == sep.Feature {
		return fmt.Errorf("lemmatizer.separators.feature must differ from field and value, got %q", sep.Feature)
	}
	if _, err := parseTags(c.Lemmatizer.Priority); err != nil {
		return fmt.Errorf("lemmatizer.priority: %w", err)
	}
	for tag, similar := range c.Lemmatizer.Similarities {
		if _, err := viceverser.ParsePOS(tag); err != nil {
			return fmt.Errorf("lemmatizer.similarities: %w", err)
		}
		if _, err := parseTags(similar); err != nil {
			return fmt.Errorf("lemmatizer.similarities.%s: %w", tag, err)
		}
	}
	if _, err := viceverser.ParsePOS(c.Lemmatizer.CompoundPrefix); err != nil {
		return fmt.Errorf("lemmatizer.compound_prefix: %w", err)
	}
	return nil
}

// FeatureSeparators returns the configured separators.
func (c LemmatizerConfig) FeatureSeparators() viceverser.Separators {
	return viceverser.Separators{
		Field:   c.Separators.Field,
		Value:   c.Separators.Value,
		Feature: c.Separators.Feature,
	}
}

// BuildPriorities returns the priority table described by c, every POS
// included. Priority and Similarities default to the French tables.
// c must have been validated.
func (c LemmatizerConfig) BuildPriorities() *viceverser.Priorities {
	defaults := viceverser.DefaultPriority
	if len(c.Priority) > 0 {
		defaults, _ = parseTags(c.Priority)
	}
	similarities := viceverser.DefaultSimilarities
	if len(c.Similarities) > 0 {
		similarities = make(map[viceverser.POS][]viceverser.POS, len(c.Similarities))
		for tag, similar := range c.Similarities {
			pos, _ := viceverser.ParsePOS(tag)
			similarities[pos], _ = parseTags(similar)
		}
	}
	prefix, err := viceverser.ParsePOS(c.CompoundPrefix)
	if err != nil {
		prefix = viceverser.POSAdposition
	}
	return viceverser.BuildPriorities(viceverser.AllPOS(), similarities, defaults, prefix)
}

func parseTags(names []string) ([]viceverser.POS, error) {
	out := make([]viceverser.POS, 0, len(names))
	for _, name := range names {
		pos, err := viceverser.ParsePOS(name)
		if err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	return out, nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
