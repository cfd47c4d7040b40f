// Package xrun 提供基于 errgroup 的并发任务组，每个 goroutine 拥有独立的诊断上下文。
//
// xerrctx 的诊断上下文绑定在 goroutine 上，不会跟随 go 语句传递。
// Group 为每个任务：
//   - 在空白 ErrorContext 上执行（GoWithName 预先写入 object）
//   - 返回错误时用 xwrap 附加诊断报告
//   - 返回后 Reset，释放注册表条目
//
// 使用方式：
//
//	g, ctx := xrun.NewGroup(ctx, xrun.WithName("import"))
//	for _, file := range files {
//	    g.GoWithName(file, func(ctx context.Context) error {
//	        xerrctx.Instance().WithResource(file).WithActivity("parsing")
//	        return parse(ctx, file)
//	    })
//	}
//	if err := g.Wait(); err != nil {
//	    report, _ := xwrap.Report(err)
//	    ...
//	}
//
// 任一任务返回错误时，传给其他任务的 ctx 会被取消，Wait 返回第一个错误。
// 返回 context.Canceled 的任务不附加报告，也不记录告警日志。
package xrun
