package xerrctx

import "log/slog"

// 日志属性 Key 常量
const (
	KeyErrorContext = "error_context"
	KeyMessage      = "message"
	KeyResource     = "resource"
	KeyObject       = "object"
	KeyActivity     = "activity"
	KeyStatement    = "statement"
	KeyCause        = "cause"
)

const fieldCount = 6

// AppendAttrs 将 ec 中已设置的字段追加到 attrs，顺序与报告一致。
// statement 输出归一化后的文本。ec 为 nil 时原样返回 attrs。
func AppendAttrs(attrs []slog.Attr, ec *ErrorContext) []slog.Attr {
	if ec == nil {
		return attrs
	}
	if ec.message != "" {
		attrs = append(attrs, slog.String(KeyMessage, ec.message))
	}
	if ec.resource != "" {
		attrs = append(attrs, slog.String(KeyResource, ec.resource))
	}
	if ec.object != "" {
		attrs = append(attrs, slog.String(KeyObject, ec.object))
	}
	if ec.activity != "" {
		attrs = append(attrs, slog.String(KeyActivity, ec.activity))
	}
	if ec.statement != "" {
		attrs = append(attrs, slog.String(KeyStatement, NormalizeStatement(ec.statement)))
	}
	if ec.cause != nil {
		attrs = append(attrs, slog.String(KeyCause, ec.cause.Error()))
	}
	return attrs
}

// Attrs 返回 ec 中已设置字段的 slog.Attr 切片，全部未设置时返回 nil。
// 每次调用会分配新切片，热路径建议使用 AppendAttrs。
func Attrs(ec *ErrorContext) []slog.Attr {
	attrs := AppendAttrs(make([]slog.Attr, 0, fieldCount), ec)
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

// LogValue 实现 slog.LogValuer，输出已设置字段组成的 group。
func (ec *ErrorContext) LogValue() slog.Value {
	return slog.GroupValue(Attrs(ec)...)
}

// LogAttr 返回以 KeyErrorContext 为 key 的 group 属性。
func LogAttr(ec *ErrorContext) slog.Attr {
	return slog.Attr{Key: KeyErrorContext, Value: ec.LogValue()}
}
