package xerrctx

import "sync"

// ErrorContext 是单个 goroutine 的诊断事实集合。
//
// 实例由所属 goroutine 独占并原地修改，setter 返回同一实例以便链式调用。
// 它不是值类型：嵌套调用有意共享并逐步充实同一个实例，不要复制。
type ErrorContext struct {
	// saved 指向 Store 之前的实例，仅用于 Recall，不参与渲染。
	saved *ErrorContext

	resource  string
	activity  string
	object    string
	message   string
	statement string
	cause     error
}

// registry 保存 goroutine ID -> *ErrorContext 的映射。
// 每个 key 只由对应的 goroutine 写入；普通 map 即使 key 不相交也不能并发读写。
var registry sync.Map

// Instance 返回当前 goroutine 绑定的 ErrorContext。
// 首次访问时创建一个所有字段均未设置的实例。
func Instance() *ErrorContext {
	return current(goroutineID())
}

// Lookup 返回当前 goroutine 已绑定的实例，不会惰性创建。
func Lookup() (*ErrorContext, bool) {
	return lookup(goroutineID())
}

func lookup(gid uint64) (*ErrorContext, bool) {
	v, ok := registry.Load(gid)
	if !ok {
		return nil, false
	}
	ec, ok := v.(*ErrorContext)
	return ec, ok
}

func current(gid uint64) *ErrorContext {
	if ec, ok := lookup(gid); ok {
		return ec
	}
	ec := &ErrorContext{}
	registry.Store(gid, ec)
	return ec
}

// Bind 将 ec 安装为当前 goroutine 的实例，返回被替换的实例（可能为 nil）。
//
// 用于子 goroutine 延续父级的诊断链。ec 为 nil 时等价于解除绑定。
// 同一实例不应同时绑定到多个仍在运行的 goroutine。
func Bind(ec *ErrorContext) *ErrorContext {
	gid := goroutineID()
	prev, _ := lookup(gid)
	if ec == nil {
		registry.Delete(gid)
	} else {
		registry.Store(gid, ec)
	}
	return prev
}

// Store 进入嵌套诊断作用域。
//
// 创建一个空白实例，其回链指向 ec，并将其安装为当前 goroutine 的实例后返回。
// 回链保存在新实例上；ec 本身不被修改。
func (ec *ErrorContext) Store() *ErrorContext {
	next := &ErrorContext{saved: ec}
	registry.Store(goroutineID(), next)
	return next
}

// Recall 退出嵌套诊断作用域。
//
// 若 ec 持有回链，则将回链指向的实例重新安装为当前实例，并清除 ec 的回链。
// 否则不做任何修改。返回当前 goroutine 的实例。
func (ec *ErrorContext) Recall() *ErrorContext {
	gid := goroutineID()
	if ec.saved != nil {
		prev := ec.saved
		ec.saved = nil
		registry.Store(gid, prev)
		return prev
	}
	return current(gid)
}

// Reset 清空所有字段并解除当前 goroutine 的绑定。
//
// 之后的 Instance 调用会惰性创建新实例。
// 操作完成后调用，避免持有过期的 cause，也避免池化 goroutine 上的诊断信息泄漏。
func (ec *ErrorContext) Reset() *ErrorContext {
	ec.saved = nil
	ec.resource = ""
	ec.activity = ""
	ec.object = ""
	ec.message = ""
	ec.statement = ""
	ec.cause = nil
	registry.Delete(goroutineID())
	return ec
}

// Depth 返回 ec 之下保存的层数，即未匹配的 Store 次数。
func (ec *ErrorContext) Depth() int {
	n := 0
	for p := ec.saved; p != nil; p = p.saved {
		n++
	}
	return n
}

// =============================================================================
// Setter
// =============================================================================

// WithResource 设置发生错误的资源标识。
func (ec *ErrorContext) WithResource(resource string) *ErrorContext {
	ec.resource = resource
	return ec
}

// WithActivity 设置错误发生时正在进行的操作。
func (ec *ErrorContext) WithActivity(activity string) *ErrorContext {
	ec.activity = activity
	return ec
}

// WithObject 设置涉及的对象标识。
func (ec *ErrorContext) WithObject(object string) *ErrorContext {
	ec.object = object
	return ec
}

// WithMessage 设置失败概要。
func (ec *ErrorContext) WithMessage(message string) *ErrorContext {
	ec.message = message
	return ec
}

// WithStatement 设置关联的 SQL/操作文本。原样保存，渲染时归一化空白。
func (ec *ErrorContext) WithStatement(statement string) *ErrorContext {
	ec.statement = statement
	return ec
}

// WithSQL 是 WithStatement 的别名。
func (ec *ErrorContext) WithSQL(sql string) *ErrorContext {
	return ec.WithStatement(sql)
}

// WithCause 设置底层错误。
func (ec *ErrorContext) WithCause(cause error) *ErrorContext {
	ec.cause = cause
	return ec
}

// =============================================================================
// Getter
// =============================================================================

// Resource 返回资源标识，未设置时为空字符串。
func (ec *ErrorContext) Resource() string { return ec.resource }

// Activity 返回当前操作描述。
func (ec *ErrorContext) Activity() string { return ec.activity }

// Object 返回涉及的对象标识。
func (ec *ErrorContext) Object() string { return ec.object }

// Message 返回失败概要。
func (ec *ErrorContext) Message() string { return ec.message }

// Statement 返回原始（未归一化的）SQL/操作文本。
func (ec *ErrorContext) Statement() string { return ec.statement }

// Cause 返回底层错误。
func (ec *ErrorContext) Cause() error { return ec.cause }

// IsEmpty 报告是否所有字段均未设置。回链不计入。
func (ec *ErrorContext) IsEmpty() bool {
	return ec.resource == "" && ec.activity == "" && ec.object == "" &&
		ec.message == "" && ec.statement == "" && ec.cause == nil
}
