package contentgen

import (
	"fmt"
	"log/slog"
)

// Config is the externally supplied configuration of a content generator.
// It is read once at construction and treated as immutable afterwards.
type Config struct {
	APIKey     string
	Model      string // empty selects the adapter's fixed default
	BaseURL    string // empty selects the SDK endpoint
	APIVersion string
}

// String implements fmt.Stringer with the API key redacted.
func (c Config) String() string {
	return fmt.Sprintf("Config{APIKey:%s Model:%q BaseURL:%q APIVersion:%q}",
		redact(c.APIKey), c.Model, c.BaseURL, c.APIVersion)
}

// LogValue implements slog.LogValuer so a Config can be logged without leaking the key.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api_key", redact(c.APIKey)),
		slog.String("model", c.Model),
		slog.String("base_url", c.BaseURL),
		slog.String("api_version", c.APIVersion),
	)
}

func redact(secret string) string {
	if secret == "" {
		return "<unset>"
	}
	return "<redacted>"
}

var _ slog.LogValuer = Config{}
