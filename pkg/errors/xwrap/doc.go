// Package xwrap 将 xerrctx 诊断报告附加到错误上。
//
// xerrctx 只负责积累和渲染诊断信息，xwrap 是其调用方：
// 失败时把概要和底层错误写入当前 goroutine 的 ErrorContext，
// 渲染报告并返回携带报告的 *Error。
//
//	if err := query(); err != nil {
//	    return xwrap.WrapAndReset("Error querying database.", err)
//	}
//
// *Error 实现 Unwrap，errors.Is/As 可继续匹配底层错误。
// 已经是 *Error 的错误不会被重复包装，报告以最内层失败时的诊断信息为准。
package xwrap
