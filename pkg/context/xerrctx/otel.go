package xerrctx

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SpanEventName 是 RecordOnSpan 写入的事件名。
const SpanEventName = "error_context"

// span 属性 Key，统一使用 "error_context." 前缀。
const (
	AttrMessage   = attribute.Key("error_context.message")
	AttrResource  = attribute.Key("error_context.resource")
	AttrObject    = attribute.Key("error_context.object")
	AttrActivity  = attribute.Key("error_context.activity")
	AttrStatement = attribute.Key("error_context.statement")
	AttrCause     = attribute.Key("error_context.cause")
)

// SpanAttributes 将 ec 中已设置的字段转换为 OpenTelemetry 属性，全部未设置时返回 nil。
func SpanAttributes(ec *ErrorContext) []attribute.KeyValue {
	if ec == nil || ec.IsEmpty() {
		return nil
	}
	kvs := make([]attribute.KeyValue, 0, fieldCount)
	if ec.message != "" {
		kvs = append(kvs, AttrMessage.String(ec.message))
	}
	if ec.resource != "" {
		kvs = append(kvs, AttrResource.String(ec.resource))
	}
	if ec.object != "" {
		kvs = append(kvs, AttrObject.String(ec.object))
	}
	if ec.activity != "" {
		kvs = append(kvs, AttrActivity.String(ec.activity))
	}
	if ec.statement != "" {
		kvs = append(kvs, AttrStatement.String(NormalizeStatement(ec.statement)))
	}
	if ec.cause != nil {
		kvs = append(kvs, AttrCause.String(ec.cause.Error()))
	}
	return kvs
}

// RecordOnSpan 将 ec 作为 SpanEventName 事件写入 span。
//
// 设置了 cause 时同时记录错误并将 span 状态置为 Error，状态描述优先取 message。
// span 为 nil、未在记录或 ec 为空时不做任何操作。
func RecordOnSpan(span trace.Span, ec *ErrorContext) {
	if span == nil || !span.IsRecording() || ec == nil || ec.IsEmpty() {
		return
	}

	span.AddEvent(SpanEventName, trace.WithAttributes(SpanAttributes(ec)...))

	if ec.cause != nil {
		span.RecordError(ec.cause)
		desc := ec.message
		if desc == "" {
			desc = ec.cause.Error()
		}
		span.SetStatus(codes.Error, desc)
	}
}
