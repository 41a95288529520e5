package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/skosovsky/contentgen"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names recognised by FromEnv and LoadDotenv.
const (
	EnvAPIKey       = "GEMINI_API_KEY"
	EnvAPIKeyGoogle = "GOOGLE_API_KEY" // fallback when EnvAPIKey is unset
	EnvModel        = "CONTENTGEN_MODEL"
	EnvBaseURL      = "CONTENTGEN_BASE_URL"
	EnvAPIVersion   = "CONTENTGEN_API_VERSION"
)

// fileConfig is the YAML shape of a config file.
type fileConfig struct {
	APIKey     string `yaml:"api_key"`
	Model      string `yaml:"model"`
	BaseURL    string `yaml:"base_url"`
	APIVersion string `yaml:"api_version"`
}

// ParseBytes parses a YAML config document.
func ParseBytes(data []byte) (contentgen.Config, error) {
	var f fileConfig
	if err := yaml.Unmarshal(data, &f); err != nil {
		return contentgen.Config{}, fmt.Errorf("%w: %w", contentgen.ErrInvalidConfig, err)
	}
	return contentgen.Config(f), nil
}

// ParseFile reads and parses a YAML config file.
func ParseFile(path string) (contentgen.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the operator
	if err != nil {
		return contentgen.Config{}, fmt.Errorf("config: read file: %w", err)
	}
	return ParseBytes(data)
}

// ParseFS reads and parses a YAML config from fs.FS (e.g. embed.FS).
func ParseFS(fsys fs.FS, name string) (contentgen.Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return contentgen.Config{}, fmt.Errorf("config: read fs: %w", err)
	}
	return ParseBytes(data)
}

// FromEnv builds a Config from the process environment.
func FromEnv() contentgen.Config {
	return fromLookup(os.Getenv)
}

// LoadDotenv reads the given dotenv files (default ".env") without touching the process
// environment. Variables already set in the environment take precedence over file values.
func LoadDotenv(paths ...string) (contentgen.Config, error) {
	vars, err := godotenv.Read(paths...)
	if err != nil {
		return contentgen.Config{}, fmt.Errorf("config: read dotenv: %w", err)
	}
	return fromLookup(func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return vars[key]
	}), nil
}

// Merge returns base with every non-empty field of override applied on top.
func Merge(base, override contentgen.Config) contentgen.Config {
	if override.APIKey != "" {
		base.APIKey = override.APIKey
	}
	if override.Model != "" {
		base.Model = override.Model
	}
	if override.BaseURL != "" {
		base.BaseURL = override.BaseURL
	}
	if override.APIVersion != "" {
		base.APIVersion = override.APIVersion
	}
	return base
}

func fromLookup(get func(string) string) contentgen.Config {
	key := get(EnvAPIKey)
	if key == "" {
		key = get(EnvAPIKeyGoogle)
	}
	return contentgen.Config{
		APIKey:     key,
		Model:      get(EnvModel),
		BaseURL:    get(EnvBaseURL),
		APIVersion: get(EnvAPIVersion),
	}
}
