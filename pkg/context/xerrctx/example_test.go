package xerrctx_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/omeyang/xerrctx/pkg/context/xerrctx"
)

// Example 演示在调用链中逐步记录诊断信息，失败时渲染报告。
func Example() {
	defer xerrctx.Instance().Reset()

	xerrctx.Instance().
		WithResource("mapper/AuthorMapper.xml").
		WithActivity("executing query").
		WithSQL("select id2\n  from author")

	err := errors.New("Unknown column 'id2'")
	report := xerrctx.Instance().
		WithMessage("Error querying database.").
		WithCause(err).
		String()

	for _, line := range strings.Split(strings.TrimSpace(report), "\n") {
		fmt.Println(strings.TrimSpace(line))
	}

	// Output:
	// ### Error querying database.
	// ### The error may exist in mapper/AuthorMapper.xml
	// ### The error occurred while executing query
	// ### SQL: select id2   from author
	// ### Cause: Unknown column 'id2'
}

// Example_storeRecall 演示嵌套作用域：内层使用空白实例，结束后恢复外层。
func Example_storeRecall() {
	defer xerrctx.Instance().Reset()

	outer := xerrctx.Instance().WithActivity("loading configuration")

	inner := outer.Store().WithActivity("parsing mapper")
	fmt.Println(inner.Activity(), inner.Depth())

	restored := inner.Recall()
	fmt.Println(restored.Activity(), restored.Depth())

	// Output:
	// parsing mapper 1
	// loading configuration 0
}
