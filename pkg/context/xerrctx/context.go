package xerrctx

import "context"

type contextKey string

const keyErrorContext contextKey = "xerrctx_error_context"

// NewContext 返回携带 ec 的 context，用于将诊断链交给其他 goroutine。
//
// 接收方应在自己的 goroutine 中调用 Bind 后再修改实例；
// 同一实例不能被两个 goroutine 同时修改。
func NewContext(ctx context.Context, ec *ErrorContext) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if ec == nil {
		return nil, ErrNilErrorContext
	}
	return context.WithValue(ctx, keyErrorContext, ec), nil
}

// FromContext 从 context 读取 NewContext 注入的实例。
func FromContext(ctx context.Context) (*ErrorContext, bool) {
	if ctx == nil {
		return nil, false
	}
	ec, ok := ctx.Value(keyErrorContext).(*ErrorContext)
	return ec, ok && ec != nil
}

// BindFromContext 若 ctx 携带实例，则将其绑定到当前 goroutine 并返回；
// 否则返回当前 goroutine 的实例。
func BindFromContext(ctx context.Context) *ErrorContext {
	if ec, ok := FromContext(ctx); ok {
		Bind(ec)
		return ec
	}
	return Instance()
}
