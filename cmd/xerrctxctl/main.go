// xerrctxctl 渲染 xerrctx 诊断报告，用于预览报告格式或在脚本中生成报告。
//
// 用法:
//
//	xerrctxctl render [选项]
//
// render 选项:
//
//	-f, --file      报告定义文件（.yaml/.yml/.json）
//	    --message   失败概要
//	    --resource  资源标识
//	    --object    对象标识
//	    --activity  正在进行的操作
//	    --sql       SQL/操作文本
//	    --cause     底层错误文本
//	    --format    输出格式 text|json（默认 text）
//
// 命令行选项覆盖文件中的同名字段。
//
// 报告定义文件示例（YAML）:
//
//	message: Error querying database.
//	resource: mapper/AuthorMapper.xml
//	sql: |
//	  select id2
//	  from author
//	cause: "SQLSyntaxErrorException: Unknown column 'id2'"
//
// 退出码:
//
//	0: 成功
//	1: 执行失败（文件读取/解析失败等）
//	2: 参数错误（未提供任何字段、未知格式、未知 flag 等）
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// usageError 表示参数错误，对应退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func newUsageError(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xerrctxctl",
		Usage:   "渲染 xerrctx 诊断报告",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands: []*cli.Command{
			createRenderCommand(),
		},
		// 由 run() 统一处理退出码映射
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()
	if err := app.Run(context.Background(), args); err != nil {
		return exitCode(err)
	}
	return 0
}

// exitCode 将错误映射为退出码并输出错误信息。
func exitCode(err error) int {
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(os.Stderr, "参数错误: %v\n", ue)
		return 2
	}
	if isCLIUsageError(err) {
		return 2
	}
	fmt.Fprintf(os.Stderr, "错误: %v\n", err)
	return 1
}

// isCLIUsageError 判断是否为 CLI 框架产生的参数错误（未知 flag、缺少 flag 值等）。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, marker := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
		"No help topic for",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
