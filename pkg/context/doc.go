// Package context 提供诊断上下文相关的子包。
//
// 子包列表：
//   - xerrctx: 按 goroutine 隔离的诊断错误上下文，失败时渲染多行报告
//
// 设计原则：
//   - 诊断信息绑定在 goroutine 上，无需修改调用链上的函数签名
//   - 跨 goroutine 传递时显式通过 context.Context 携带
//   - 提供 slog 与 OpenTelemetry 集成
package context
