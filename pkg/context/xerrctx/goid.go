package xerrctx

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutinePrefix 是 runtime.Stack 输出的首行前缀："goroutine 123 [running]:"
var goroutinePrefix = []byte("goroutine ")

// goroutineID 解析当前 goroutine 的 ID。
//
// 只读取堆栈首行，64 字节足以容纳 "goroutine <uint64> ["。
// 解析失败时返回 0（运行时格式变化时所有 goroutine 会共享同一个槽位）。
func goroutineID() uint64 {
	var arr [64]byte
	buf := arr[:runtime.Stack(arr[:], false)]

	if !bytes.HasPrefix(buf, goroutinePrefix) {
		return 0
	}
	buf = buf[len(goroutinePrefix):]

	end := bytes.IndexByte(buf, ' ')
	if end < 0 {
		return 0
	}

	id, err := strconv.ParseUint(string(buf[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
