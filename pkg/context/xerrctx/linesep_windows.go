//go:build windows

package xerrctx

// lineSeparator 是报告中每行的前缀换行符。
const lineSeparator = "\r\n"
