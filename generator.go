package contentgen

import (
	"context"
	"log/slog"
)

// Model is the remote call behind a Generator: one prompt in, one raw response out.
// Implementations must be safe for concurrent use.
type Model interface {
	Generate(ctx context.Context, prompt string) (*Response, error)
}

// ModelFunc adapts a function to Model.
type ModelFunc func(ctx context.Context, prompt string) (*Response, error)

// Generate calls f.
func (f ModelFunc) Generate(ctx context.Context, prompt string) (*Response, error) {
	return f(ctx, prompt)
}

// Generator forwards prompts to a Model and extracts the first text completion.
// Every failure is logged where it is detected and returned to the caller unchanged.
type Generator struct {
	model  Model
	logger *slog.Logger
}

// New returns a Generator over model. It performs no I/O.
func New(model Model, opts ...Option) *Generator {
	g := &Generator{
		model:  model,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate sends prompt to the model once and returns candidates[0].content.parts[0].text.
// There is no retry and no fallback text: the result is either the extracted text or the
// error from the remote call, ErrEmptyResponse, or ErrMalformedResponse.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.Generate(ctx, prompt)
	if err != nil {
		g.logFailure(ctx, err)
		return "", err
	}
	text, err := ExtractText(resp)
	if err != nil {
		g.logFailure(ctx, err)
		return "", err
	}
	g.logger.InfoContext(ctx, "generated content", "text", text)
	return text, nil
}

func (g *Generator) logFailure(ctx context.Context, err error) {
	g.logger.ErrorContext(ctx, "error generating content", "kind", KindOf(err).String(), "err", err)
}

var _ Model = ModelFunc(nil)
