package xerrctx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/omeyang/xerrctx/pkg/context/xerrctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]string {
	m := make(map[attribute.Key]string, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value.AsString()
	}
	return m
}

func TestSpanAttributes(t *testing.T) {
	assert.Nil(t, xerrctx.SpanAttributes(nil))
	assert.Nil(t, xerrctx.SpanAttributes(&xerrctx.ErrorContext{}))

	ec := (&xerrctx.ErrorContext{}).
		WithObject("defaultParameterMap").
		WithStatement("\tselect 1\n")
	got := attrMap(xerrctx.SpanAttributes(ec))
	assert.Equal(t, map[attribute.Key]string{
		xerrctx.AttrObject:    "defaultParameterMap",
		xerrctx.AttrStatement: "select 1",
	}, got)
}

func TestRecordOnSpan_WithCause(t *testing.T) {
	sr, tp := newRecorder(t)
	_, span := tp.Tracer("test").Start(context.Background(), "query")

	cause := errors.New("Unknown column 'id2'")
	ec := (&xerrctx.ErrorContext{}).
		WithMessage("Error querying database.").
		WithResource("mapper/AuthorMapper.xml").
		WithCause(cause)
	xerrctx.RecordOnSpan(span, ec)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	s := spans[0]

	assert.Equal(t, codes.Error, s.Status().Code)
	assert.Equal(t, "Error querying database.", s.Status().Description)

	var found bool
	for _, ev := range s.Events() {
		if ev.Name != xerrctx.SpanEventName {
			continue
		}
		found = true
		attrs := attrMap(ev.Attributes)
		assert.Equal(t, "mapper/AuthorMapper.xml", attrs[xerrctx.AttrResource])
		assert.Equal(t, "Unknown column 'id2'", attrs[xerrctx.AttrCause])
	}
	assert.True(t, found, "应写入 error_context 事件")
}

func TestRecordOnSpan_CauseOnlyUsesCauseAsDescription(t *testing.T) {
	sr, tp := newRecorder(t)
	_, span := tp.Tracer("test").Start(context.Background(), "op")

	xerrctx.RecordOnSpan(span, (&xerrctx.ErrorContext{}).WithCause(errors.New("boom")))
	span.End()

	require.Len(t, sr.Ended(), 1)
	assert.Equal(t, "boom", sr.Ended()[0].Status().Description)
}

func TestRecordOnSpan_NoCauseKeepsStatus(t *testing.T) {
	sr, tp := newRecorder(t)
	_, span := tp.Tracer("test").Start(context.Background(), "op")

	xerrctx.RecordOnSpan(span, (&xerrctx.ErrorContext{}).WithActivity("setting parameters"))
	span.End()

	require.Len(t, sr.Ended(), 1)
	s := sr.Ended()[0]
	assert.Equal(t, codes.Unset, s.Status().Code)
	require.Len(t, s.Events(), 1)
	assert.Equal(t, xerrctx.SpanEventName, s.Events()[0].Name)
}

func TestRecordOnSpan_Ignored(t *testing.T) {
	sr, tp := newRecorder(t)
	_, span := tp.Tracer("test").Start(context.Background(), "op")

	// 空实例与 nil 均不写入
	xerrctx.RecordOnSpan(span, &xerrctx.ErrorContext{})
	xerrctx.RecordOnSpan(span, nil)
	xerrctx.RecordOnSpan(nil, (&xerrctx.ErrorContext{}).WithMessage("m"))
	span.End()

	require.Len(t, sr.Ended(), 1)
	assert.Empty(t, sr.Ended()[0].Events())

	// 非记录中的 span 不 panic
	_, noopSpan := noop.NewTracerProvider().Tracer("test").Start(context.Background(), "op")
	xerrctx.RecordOnSpan(noopSpan, (&xerrctx.ErrorContext{}).WithMessage("m"))
}
