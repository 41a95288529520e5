package gemini

import (
	"context"
	"net/http"
	"sync"

	"github.com/skosovsky/contentgen"

	"google.golang.org/genai"
)

// DefaultModel is the hosted model variant used when Config.Model is empty.
const DefaultModel = "gemini-1.5-flash"

// Model implements contentgen.Model for the Gemini API. Safe for concurrent use.
type Model struct {
	cfg        contentgen.Config
	name       string
	httpClient *http.Client

	once   sync.Once
	client *genai.Client
	err    error
}

// Option configures a Model.
type Option func(*Model)

// WithHTTPClient sets the HTTP client handed to genai. If c is nil, the SDK default is used.
func WithHTTPClient(c *http.Client) Option {
	return func(m *Model) {
		if c != nil {
			m.httpClient = c
		}
	}
}

// New returns a Model bound to cfg. It performs no I/O and does not validate the API key.
func New(cfg contentgen.Config, opts ...Option) *Model {
	m := &Model{
		cfg:  cfg,
		name: cfg.Model,
	}
	if m.name == "" {
		m.name = DefaultModel
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewContentGenerator returns a contentgen.Generator backed by a Gemini Model built from cfg.
func NewContentGenerator(cfg contentgen.Config, opts ...contentgen.Option) *contentgen.Generator {
	return contentgen.New(New(cfg), opts...)
}

// Name returns the model identifier requests are sent to.
func (m *Model) Name() string { return m.name }

// Generate sends prompt as a single user turn and returns the converted response.
// Errors from client construction and from the API call are returned unchanged.
func (m *Model) Generate(ctx context.Context, prompt string) (*contentgen.Response, error) {
	client, err := m.handle(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := client.Models.GenerateContent(ctx, m.name, genai.Text(prompt), nil)
	if err != nil {
		return nil, err
	}
	return ParseResponse(resp), nil
}

// handle builds the genai client once; the outcome (client or error) is cached.
func (m *Model) handle(ctx context.Context) (*genai.Client, error) {
	m.once.Do(func() {
		m.client, m.err = genai.NewClient(context.WithoutCancel(ctx), m.clientConfig())
	})
	return m.client, m.err
}

func (m *Model) clientConfig() *genai.ClientConfig {
	return &genai.ClientConfig{
		APIKey:     m.cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: m.httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    m.cfg.BaseURL,
			APIVersion: m.cfg.APIVersion,
		},
	}
}

// ParseResponse converts a genai response into contentgen.Response. Nil candidates, contents
// and parts are kept as nil; a part without text gets a nil Text.
func ParseResponse(resp *genai.GenerateContentResponse) *contentgen.Response {
	if resp == nil {
		return nil
	}
	out := &contentgen.Response{Candidates: make([]*contentgen.Candidate, 0, len(resp.Candidates))}
	for _, c := range resp.Candidates {
		out.Candidates = append(out.Candidates, parseCandidate(c))
	}
	return out
}

func parseCandidate(c *genai.Candidate) *contentgen.Candidate {
	if c == nil {
		return nil
	}
	cand := &contentgen.Candidate{}
	if c.Content == nil {
		return cand
	}
	cand.Content = &contentgen.Content{Parts: make([]*contentgen.Part, 0, len(c.Content.Parts))}
	for _, p := range c.Content.Parts {
		cand.Content.Parts = append(cand.Content.Parts, parsePart(p))
	}
	return cand
}

// parsePart maps empty text to absent: genai drops "text" on the wire when it is empty,
// so the two cannot be told apart. A part of {"text":""} therefore surfaces as
// contentgen.ErrMalformedResponse, where the JavaScript SDK would return "".
func parsePart(p *genai.Part) *contentgen.Part {
	if p == nil {
		return nil
	}
	if p.Text == "" {
		return &contentgen.Part{}
	}
	return contentgen.TextPart(p.Text)
}

var _ contentgen.Model = (*Model)(nil)
