package xpool

import "log/slog"

// DefaultFailureMessage 是任务失败时写入诊断上下文的默认概要。
const DefaultFailureMessage = "Error executing task."

// Option 定义 Pool 可选配置函数类型。
type Option func(*options)

type options struct {
	logger         *slog.Logger
	name           string
	failureMessage string
	errorHandler   func(error)
	logTaskValue   bool
}

func defaultOptions() options {
	return options{
		logger:         slog.Default(),
		failureMessage: DefaultFailureMessage,
	}
}

// WithLogger 设置自定义日志记录器。
// 默认使用 slog.Default()。传入 nil 将被忽略。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName 设置 pool 名称，用于在多实例场景下区分日志来源。
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithFailureMessage 设置任务失败时的诊断概要（报告的第一行）。
// 空字符串将被忽略。
func WithFailureMessage(message string) Option {
	return func(o *options) {
		if message != "" {
			o.failureMessage = message
		}
	}
}

// WithErrorHandler 设置任务失败回调，入参为携带诊断报告的 *xwrap.Error。
// 回调在 worker goroutine 中执行，此时诊断上下文尚未 Reset。
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// WithLogTaskValue 在失败日志中记录完整 task 值（默认仅记录类型）。
func WithLogTaskValue() Option {
	return func(o *options) {
		o.logTaskValue = true
	}
}
