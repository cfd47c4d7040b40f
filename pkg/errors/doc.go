// Package errors 提供错误包装相关的子包。
//
// 子包列表：
//   - xwrap: 将当前 goroutine 的诊断上下文（xerrctx）渲染进错误
package errors
