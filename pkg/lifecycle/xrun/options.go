package xrun

import "log/slog"

// DefaultFailureMessage 是任务失败时写入诊断上下文的默认概要。
const DefaultFailureMessage = "Error running task."

// Option 配置 Group 的选项函数。
type Option func(*groupOptions)

type groupOptions struct {
	logger         *slog.Logger
	name           string
	failureMessage string
	limit          int
}

func defaultOptions() *groupOptions {
	return &groupOptions{
		logger:         slog.Default(),
		name:           "xrun",
		failureMessage: DefaultFailureMessage,
		limit:          -1,
	}
}

// WithLogger 设置日志记录器。默认使用 slog.Default()。
func WithLogger(logger *slog.Logger) Option {
	return func(o *groupOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName 设置 Group 名称，用于日志中区分不同的 Group。默认值为 "xrun"。
func WithName(name string) Option {
	return func(o *groupOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithFailureMessage 设置任务失败时的诊断概要。空字符串将被忽略。
func WithFailureMessage(message string) Option {
	return func(o *groupOptions) {
		if message != "" {
			o.failureMessage = message
		}
	}
}

// WithLimit 限制同时运行的 goroutine 数量，n <= 0 表示不限制。
func WithLimit(n int) Option {
	return func(o *groupOptions) {
		if n <= 0 {
			o.limit = -1
			return
		}
		o.limit = n
	}
}
