package otelcontentgen

import (
	"context"

	"github.com/skosovsky/contentgen"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// SpanName is the name of the span opened around each Generate call.
	SpanName = "contentgen.Generate"

	instrumentationName = "github.com/skosovsky/contentgen/ext/otelcontentgen"
)

// Span attribute keys.
const (
	AttrModel        = attribute.Key("gen_ai.request.model")
	AttrPromptLength = attribute.Key("contentgen.prompt.length")
	AttrCandidates   = attribute.Key("contentgen.candidates")
)

// namer is implemented by models that expose their identifier (e.g. *gemini.Model).
type namer interface {
	Name() string
}

type tracedModel struct {
	next   contentgen.Model
	tracer trace.Tracer
}

// Wrap returns a Model that traces every call to next. A nil tracer uses the global provider.
func Wrap(next contentgen.Model, tracer trace.Tracer) contentgen.Model {
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}
	return &tracedModel{next: next, tracer: tracer}
}

func (m *tracedModel) Generate(ctx context.Context, prompt string) (*contentgen.Response, error) {
	attrs := []attribute.KeyValue{AttrPromptLength.Int(len(prompt))}
	if n, ok := m.next.(namer); ok {
		attrs = append(attrs, AttrModel.String(n.Name()))
	}
	ctx, span := m.tracer.Start(ctx, SpanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	resp, err := m.next.Generate(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if resp != nil {
		span.SetAttributes(AttrCandidates.Int(len(resp.Candidates)))
	}
	return resp, nil
}

var _ contentgen.Model = (*tracedModel)(nil)
