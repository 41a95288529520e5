package contentgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func staticModel(resp *Response, err error) Model {
	return ModelFunc(func(context.Context, string) (*Response, error) {
		return resp, err
	})
}

func TestGenerate_ReturnsFirstText(t *testing.T) {
	t.Parallel()
	var gotPrompt string
	model := ModelFunc(func(_ context.Context, prompt string) (*Response, error) {
		gotPrompt = prompt
		return NewTextResponse("Hello back"), nil
	})
	logger, buf := newTestLogger()
	g := New(model, WithLogger(logger))

	text, err := g.Generate(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello back", text)
	assert.Equal(t, "Hello", gotPrompt)
	assert.Contains(t, buf.String(), "generated content")
	assert.Contains(t, buf.String(), "Hello back")
}

func TestGenerate_IgnoresOtherCandidatesAndParts(t *testing.T) {
	t.Parallel()
	resp := &Response{Candidates: []*Candidate{
		{Content: &Content{Parts: []*Part{TextPart("first"), TextPart("second")}}},
		{Content: &Content{Parts: []*Part{TextPart("other candidate")}}},
	}}
	logger, _ := newTestLogger()
	text, err := New(staticModel(resp, nil), WithLogger(logger)).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "first", text)
}

func TestGenerate_EmptyTextIsValid(t *testing.T) {
	t.Parallel()
	logger, _ := newTestLogger()
	text, err := New(staticModel(NewTextResponse(""), nil), WithLogger(logger)).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGenerate_NoCandidates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		resp *Response
	}{
		{"nil response", nil},
		{"nil candidates", &Response{}},
		{"empty candidates", &Response{Candidates: []*Candidate{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			logger, buf := newTestLogger()
			text, err := New(staticModel(tt.resp, nil), WithLogger(logger)).Generate(context.Background(), "p")
			require.ErrorIs(t, err, ErrEmptyResponse)
			assert.Empty(t, text)
			assert.Contains(t, strings.ToLower(err.Error()), "no candidates")
			assert.Contains(t, buf.String(), "error generating content")
			assert.Contains(t, buf.String(), "kind=empty_response")
		})
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		resp *Response
	}{
		{"nil candidate", &Response{Candidates: []*Candidate{nil}}},
		{"nil content", &Response{Candidates: []*Candidate{{}}}},
		{"nil parts", &Response{Candidates: []*Candidate{{Content: &Content{}}}}},
		{"nil part", &Response{Candidates: []*Candidate{{Content: &Content{Parts: []*Part{nil}}}}}},
		{"nil text", &Response{Candidates: []*Candidate{{Content: &Content{Parts: []*Part{{}}}}}}},
		{"text only in second part", &Response{Candidates: []*Candidate{{Content: &Content{Parts: []*Part{{}, TextPart("late")}}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			logger, buf := newTestLogger()
			g := New(staticModel(tt.resp, nil), WithLogger(logger))
			var (
				text string
				err  error
			)
			require.NotPanics(t, func() {
				text, err = g.Generate(context.Background(), "p")
			})
			require.ErrorIs(t, err, ErrMalformedResponse)
			assert.Empty(t, text)
			assert.Contains(t, strings.ToLower(err.Error()), "unexpected response format")
			assert.Contains(t, buf.String(), "kind=malformed_response")
		})
	}
}

func TestGenerate_ForwardsTransportErrorUnchanged(t *testing.T) {
	t.Parallel()
	netErr := errors.New("dial tcp: connection refused")
	logger, buf := newTestLogger()
	g := New(staticModel(nil, netErr), WithLogger(logger))

	text, err := g.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Same(t, netErr, err)
	assert.Empty(t, text)
	assert.Equal(t, KindTransport, KindOf(err))
	assert.Contains(t, buf.String(), "connection refused")
	assert.Contains(t, buf.String(), "kind=transport")
}

func TestGenerate_TransportErrorWinsOverResponse(t *testing.T) {
	t.Parallel()
	quota := errors.New("quota exceeded")
	logger, _ := newTestLogger()
	_, err := New(staticModel(NewTextResponse("ignored"), quota), WithLogger(logger)).Generate(context.Background(), "p")
	assert.Same(t, quota, err)
}

func TestGenerate_OneAttemptPerCall(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	model := ModelFunc(func(context.Context, string) (*Response, error) {
		calls.Add(1)
		return nil, errors.New("boom")
	})
	logger, _ := newTestLogger()
	_, err := New(model, WithLogger(logger)).Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGenerate_ConcurrentCallsAreIndependent(t *testing.T) {
	t.Parallel()
	model := ModelFunc(func(_ context.Context, prompt string) (*Response, error) {
		return NewTextResponse("echo: " + prompt), nil
	})
	logger, _ := newTestLogger()
	g := New(model, WithLogger(logger))

	const n = 32
	results := make([]string, n)
	eg, ctx := errgroup.WithContext(context.Background())
	for i := range n {
		eg.Go(func() error {
			text, err := g.Generate(ctx, fmt.Sprintf("prompt-%d", i))
			results[i] = text
			return err
		})
	}
	require.NoError(t, eg.Wait())
	for i, got := range results {
		assert.Equal(t, fmt.Sprintf("echo: prompt-%d", i), got)
	}
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	t.Parallel()
	g := New(staticModel(nil, nil), WithLogger(nil))
	assert.Same(t, slog.Default(), g.logger)
}
