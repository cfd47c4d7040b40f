// Package xpool 提供带诊断上下文隔离的泛型 worker pool。
//
// worker goroutine 会被多个任务复用，而 xerrctx 的诊断上下文绑定在 goroutine 上。
// Pool 保证：
//   - 每个任务开始时当前 goroutine 的 ErrorContext 为空白实例
//   - 每个任务结束后（无论成功、失败还是 panic）调用 Reset，不向下一个任务泄漏
//   - 任务返回错误或 panic 时，用 xwrap 附加诊断报告后交给错误处理器并记录日志
//
// 其他特性：
//   - 可配置的 worker 数量（[1, 65536]）和队列大小（[1, 16777216]）
//   - Submit 非阻塞，队列满时返回 ErrQueueFull，关闭后返回 ErrPoolStopped
//   - Close 等待队列中的任务处理完成；Shutdown(ctx) 支持超时
//   - Done() channel：Shutdown 超时返回后可等待残留 worker 最终完成
//   - 可注入日志记录器（WithLogger）、名称（WithName）、错误处理器（WithErrorHandler）
//
// # 注意事项
//
//   - Close/Shutdown 不可在 handler 内调用，否则会死锁
//   - handler 中启动的子 goroutine 不共享 worker 的诊断上下文，需通过 xerrctx.NewContext 传递
//   - 失败日志默认仅记录 task 类型，可通过 WithLogTaskValue 记录完整值
package xpool
