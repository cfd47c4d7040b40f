// Package lifecycle 提供并发任务生命周期管理相关的子包。
//
// 子包列表：
//   - xrun: 基于 errgroup 的任务组，每个 goroutine 拥有独立的诊断上下文
package lifecycle
