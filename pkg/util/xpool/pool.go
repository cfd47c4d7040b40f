package xpool

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/omeyang/xerrctx/pkg/context/xerrctx"
	"github.com/omeyang/xerrctx/pkg/errors/xwrap"
)

const (
	maxWorkers   = 1 << 16
	maxQueueSize = 1 << 24
)

var _ io.Closer = (*Pool[int])(nil)

// Pool 是一个泛型 worker pool，每个任务运行在空白诊断上下文上。
type Pool[T any] struct {
	workers   int
	queueSize int
	handler   func(T) error
	opts      options

	mu      sync.RWMutex
	stopped bool
	queue   chan T

	wg       sync.WaitGroup
	stopOnce sync.Once
	done     chan struct{}
}

// New 创建并启动 worker pool。
//
// workers 取值 [1, 65536]，queueSize 取值 [1, 16777216]，handler 不能为 nil。
func New[T any](workers, queueSize int, handler func(T) error, opts ...Option) (*Pool[T], error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if workers < 1 || workers > maxWorkers {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}
	if queueSize < 1 || queueSize > maxQueueSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQueueSize, queueSize)
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	p := &Pool[T]{
		workers:   workers,
		queueSize: queueSize,
		handler:   handler,
		opts:      o,
		queue:     make(chan T, queueSize),
		done:      make(chan struct{}),
	}
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	go func() {
		p.wg.Wait()
		close(p.done)
	}()
	return p, nil
}

// worker 从队列读取直到 channel 关闭，保证关闭前入队的任务都被处理。
func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for task := range p.queue {
		p.run(task)
	}
}

// run 执行单个任务。
// 第一个 defer 最后执行：无论 handler 成功、失败还是 panic，都会 Reset 诊断上下文。
func (p *Pool[T]) run(task T) {
	defer xerrctx.Instance().Reset()
	defer func() {
		if r := recover(); r != nil {
			p.fail(task, fmt.Errorf("%w: %v", ErrTaskPanic, r))
		}
	}()

	xerrctx.Instance().Reset()
	if err := p.handler(task); err != nil {
		p.fail(task, err)
	}
}

// fail 附加诊断报告，记录日志并回调错误处理器。
func (p *Pool[T]) fail(task T, cause error) {
	err := xwrap.Wrap(p.opts.failureMessage, cause)

	attrs := make([]slog.Attr, 0, 4)
	if p.opts.name != "" {
		attrs = append(attrs, slog.String("pool", p.opts.name))
	}
	if p.opts.logTaskValue {
		attrs = append(attrs, slog.Any("task", task))
	} else {
		attrs = append(attrs, slog.String("task_type", fmt.Sprintf("%T", task)))
	}
	attrs = append(attrs, xerrctx.LogAttr(xerrctx.Instance()))
	p.opts.logger.LogAttrs(context.Background(), slog.LevelError, "xpool: task failed", attrs...)

	if p.opts.errorHandler != nil {
		p.opts.errorHandler(err)
	}
}

// Submit 提交任务，从不阻塞。
// 队列满时返回 ErrQueueFull，pool 关闭后返回 ErrPoolStopped。
func (p *Pool[T]) Submit(task T) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrPoolStopped
	}
	select {
	case p.queue <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// stop 拒绝新任务并关闭队列，仅执行一次。
func (p *Pool[T]) stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		close(p.queue)
		p.mu.Unlock()
	})
}

// Close 关闭 pool 并等待队列中的任务全部处理完成。
func (p *Pool[T]) Close() error {
	return p.Shutdown(context.Background())
}

// Shutdown 关闭 pool，等待任务处理完成或 ctx 结束。
// ctx 结束时返回 ctx.Err()，残留 worker 继续在后台处理剩余任务，可通过 Done 等待。
func (p *Pool[T]) Shutdown(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	p.stop()
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done 返回在所有 worker 退出后关闭的 channel。
func (p *Pool[T]) Done() <-chan struct{} {
	return p.done
}

// Workers 返回 worker 数量。
func (p *Pool[T]) Workers() int {
	return p.workers
}

// QueueSize 返回队列大小。
func (p *Pool[T]) QueueSize() int {
	return p.queueSize
}
