package xerrctx

import "errors"

var (
	// ErrNilContext 表示传入的 context 为 nil。
	ErrNilContext = errors.New("xerrctx: nil context")

	// ErrNilErrorContext 表示传入的 *ErrorContext 为 nil。
	ErrNilErrorContext = errors.New("xerrctx: nil error context")
)

// ErrNilHandler 表示 NewEnrichHandler 的 base handler 为 nil。
var ErrNilHandler = errors.New("xerrctx: base handler is nil")
