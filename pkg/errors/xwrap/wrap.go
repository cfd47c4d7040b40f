package xwrap

import (
	"errors"
	"strings"

	"github.com/omeyang/xerrctx/pkg/context/xerrctx"
)

// Error 是携带诊断报告的错误。
type Error struct {
	// Message 是失败概要。
	Message string
	// Report 是 xerrctx 渲染的多行报告，以换行符开头。
	Report string
	// Err 是底层错误。
	Err error
}

// Error 返回去除开头换行的报告；报告为空时返回概要或底层错误文本。
func (e *Error) Error() string {
	if e.Report != "" {
		return strings.TrimLeft(e.Report, "\r\n")
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "xwrap: unknown error"
}

// Unwrap 返回底层错误。
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap 将 message 和 err 写入当前 goroutine 的 ErrorContext 并渲染报告。
//
// err 为 nil 时返回 nil。err 已经是 *Error 时原样返回。
// Wrap 不清空上下文，调用方决定何时 Reset。
//
// Wrap 会通过 xerrctx.Instance 为当前 goroutine 登记上下文。该登记不会随
// goroutine 退出而回收：临时启动、不再调用 Reset 的 goroutine 应改用
// WrapAndReset，否则登记项会一直留在进程内。
func Wrap(message string, err error) error {
	if err == nil {
		return nil
	}
	var wrapped *Error
	if errors.As(err, &wrapped) {
		return err
	}
	ec := xerrctx.Instance().WithMessage(message).WithCause(err)
	return &Error{
		Message: message,
		Report:  ec.String(),
		Err:     err,
	}
}

// WrapAndReset 与 Wrap 相同，随后清空当前 goroutine 的 ErrorContext。
func WrapAndReset(message string, err error) error {
	defer xerrctx.Instance().Reset()
	return Wrap(message, err)
}

// Report 从错误链中提取诊断报告。
func Report(err error) (string, bool) {
	var wrapped *Error
	if !errors.As(err, &wrapped) {
		return "", false
	}
	return wrapped.Report, true
}
