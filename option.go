package contentgen

import "log/slog"

// Option configures a Generator (functional options pattern).
type Option func(*Generator)

// WithLogger sets the logger used to report generated text and failures.
// A nil logger leaves the default (slog.Default) in place.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}
