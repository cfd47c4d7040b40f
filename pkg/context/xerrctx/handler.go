package xerrctx

import (
	"context"
	"log/slog"
)

// EnrichHandler 在日志记录中注入诊断上下文。
//
// 装饰底层 slog.Handler，Handle 时若存在非空的 ErrorContext，
// 追加一个 KeyErrorContext group 属性。实例来源优先级：
//   - ctx 中通过 NewContext 注入的实例
//   - 当前 goroutine 已绑定的实例（不会惰性创建）
//
// slog 的 Handle 在调用 Logger 方法的 goroutine 上同步执行，
// 异步 handler 需要自行在入队前完成注入。
type EnrichHandler struct {
	base slog.Handler
}

// NewEnrichHandler 创建 EnrichHandler。base 为 nil 时返回 ErrNilHandler。
func NewEnrichHandler(base slog.Handler) (*EnrichHandler, error) {
	if base == nil {
		return nil, ErrNilHandler
	}
	return &EnrichHandler{base: base}, nil
}

// Enabled 委托给底层 handler。
func (h *EnrichHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// Handle 注入诊断上下文后交给底层 handler。按 slog 契约先 Clone 再修改 record。
func (h *EnrichHandler) Handle(ctx context.Context, r slog.Record) error {
	ec, ok := FromContext(ctx)
	if !ok {
		ec, ok = Lookup()
	}
	if ok && !ec.IsEmpty() {
		r = r.Clone()
		r.AddAttrs(LogAttr(ec))
	}
	return h.base.Handle(ctx, r)
}

// WithAttrs 返回带额外属性的新 handler。
func (h *EnrichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EnrichHandler{base: h.base.WithAttrs(attrs)}
}

// WithGroup 返回带分组的新 handler。
func (h *EnrichHandler) WithGroup(name string) slog.Handler {
	return &EnrichHandler{base: h.base.WithGroup(name)}
}
