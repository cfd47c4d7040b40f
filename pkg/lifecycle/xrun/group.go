package xrun

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xerrctx/pkg/context/xerrctx"
	"github.com/omeyang/xerrctx/pkg/errors/xwrap"
)

// Group 基于 errgroup 管理一组并发任务。
//
// Go、GoWithName 可安全地从多个 goroutine 并发调用。Wait 应仅调用一次。
type Group struct {
	eg   *errgroup.Group
	ctx  context.Context
	opts *groupOptions
}

// NewGroup 创建新的 Group，返回 Group 和派生的 context。
// 任一任务返回错误时，派生的 context 会被取消。
func NewGroup(ctx context.Context, opts ...Option) (*Group, context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	options := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(options)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(options.limit)

	return &Group{
		eg:   eg,
		ctx:  egCtx,
		opts: options,
	}, egCtx
}

// Go 在新的 goroutine 中以空白诊断上下文执行 fn。
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.GoWithName("", fn)
}

// GoWithName 与 Go 相同，name 非空时写入诊断上下文的 object 字段并记录在日志中。
func (g *Group) GoWithName(name string, fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		return g.run(name, fn)
	})
}

func (g *Group) run(name string, fn func(ctx context.Context) error) error {
	defer xerrctx.Instance().Reset()

	xerrctx.Instance().Reset()
	if name != "" {
		xerrctx.Instance().WithObject(name)
	}

	err := fn(g.ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}

	wrapped := xwrap.Wrap(g.opts.failureMessage, err)
	g.opts.logger.LogAttrs(g.ctx, slog.LevelWarn, "xrun: task exited with error",
		slog.String("group", g.opts.name),
		slog.String("task", name),
		xerrctx.LogAttr(xerrctx.Instance()),
	)
	return wrapped
}

// Wait 等待所有任务完成，返回第一个非 nil 错误。
func (g *Group) Wait() error {
	return g.eg.Wait()
}
