// Package xerrctx 提供按 goroutine 隔离的诊断错误上下文。
//
// 深层调用链在执行过程中逐步记录诊断事实（资源、活动、对象、SQL、原因），
// 失败时渲染为一份多行报告，而无需在每个函数签名上传递额外参数。
//
// # 字段
//
//	message   : 失败概要
//	resource  : 关联的资源/文件（如 mapper/AuthorMapper.xml）
//	object    : 涉及的对象/配置元素
//	activity  : 正在进行的操作（如 "setting parameters"）
//	statement : 关联的 SQL/操作文本，渲染时空白字符归一化
//	cause     : 底层错误，渲染其 Error() 文本
//
// 所有字段相互独立且可选。零值（空字符串、nil error）表示未设置，渲染时整行省略。
//
// # 生命周期
//
//	ec := xerrctx.Instance()       // 当前 goroutine 的实例，首次访问时惰性创建
//	ec.WithResource(...).WithActivity(...)
//
//	inner := ec.Store()            // 进入嵌套作用域：新的空白实例，持有指向 ec 的回链
//	...
//	inner.Recall()                 // 恢复 ec 为当前实例
//
//	xerrctx.Instance().Reset()     // 清空并解除 goroutine 绑定
//
// Store 创建的新实例持有回链，而不是旧实例；否则 Recall 无法恢复。
// 嵌套深度不设上限，可通过 Depth 检测未匹配的 Store。
//
// # 渲染
//
// String 按固定顺序输出已设置字段，每行以平台换行符开头（Windows 为 "\r\n"）：
//
//	### <message>
//	### The error may exist in <resource>
//	### The error may involve <object>
//	### The error occurred while <activity>
//	### SQL: <statement>
//	### Cause: <cause>
//
// 全部未设置时返回空字符串。
//
// # 并发
//
// 每个 goroutine 独占自己的实例，实例本身不加锁。
// 实例不会跟随 go 语句传递到子 goroutine；需要延续父级诊断链时，
// 通过 NewContext/FromContext 携带实例，并在子 goroutine 中调用 Bind。
//
// 池化 goroutine（worker pool）在归还前必须调用 Reset，
// 否则诊断信息会泄漏到下一个任务，且注册表条目会一直保留。
//
// # 可观测性集成
//
//   - *ErrorContext 实现 slog.LogValuer，可直接作为日志属性值
//   - AppendAttrs/Attrs 输出 slog.Attr 切片
//   - EnrichHandler 在日志记录中自动注入当前诊断上下文（不惰性创建实例）
//   - RecordOnSpan 将诊断信息作为事件写入 OpenTelemetry span
package xerrctx
