package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xerrctx/pkg/context/xerrctx"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// createRenderCommand 创建 render 子命令。
func createRenderCommand() *cli.Command {
	return &cli.Command{
		Name:    "render",
		Aliases: []string{"r"},
		Usage:   "根据文件或命令行选项渲染诊断报告",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "报告定义文件（.yaml/.yml/.json）"},
			&cli.StringFlag{Name: "message", Usage: "失败概要"},
			&cli.StringFlag{Name: "resource", Usage: "资源标识"},
			&cli.StringFlag{Name: "object", Usage: "对象标识"},
			&cli.StringFlag{Name: "activity", Usage: "正在进行的操作"},
			&cli.StringFlag{Name: "sql", Usage: "SQL/操作文本"},
			&cli.StringFlag{Name: "cause", Usage: "底层错误文本"},
			&cli.StringFlag{Name: "format", Usage: "输出格式 text|json", Value: formatText},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			spec, err := specFromCommand(cmd)
			if err != nil {
				return err
			}
			return renderReport(cmd.Root().Writer, spec, cmd.String("format"))
		},
	}
}

// specFromCommand 合并文件与命令行选项，命令行优先。
func specFromCommand(cmd *cli.Command) (reportSpec, error) {
	var spec reportSpec
	if path := cmd.String("file"); path != "" {
		loaded, err := loadReportFile(path)
		if err != nil {
			return reportSpec{}, err
		}
		spec = loaded
	}
	return spec.merge(reportSpec{
		Message:  cmd.String("message"),
		Resource: cmd.String("resource"),
		Object:   cmd.String("object"),
		Activity: cmd.String("activity"),
		SQL:      cmd.String("sql"),
		Cause:    cmd.String("cause"),
	}), nil
}

// renderReport 在当前 goroutine 的诊断上下文上渲染报告并写入 w。
func renderReport(w io.Writer, spec reportSpec, format string) error {
	if spec.isEmpty() {
		return newUsageError("至少需要一个报告字段（--file 或 --message/--resource/...）")
	}

	ec := spec.apply(xerrctx.Instance())
	defer ec.Reset()

	switch strings.ToLower(format) {
	case formatText:
		_, err := fmt.Fprintln(w, strings.TrimLeft(ec.String(), "\r\n"))
		return err
	case formatJSON:
		// 去掉 time/level，只保留 msg 与诊断字段
		logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
					return slog.Attr{}
				}
				return a
			},
		}))
		logger.Error("error report", xerrctx.LogAttr(ec))
		return nil
	default:
		return newUsageError("未知输出格式 %q（可选 text|json）", format)
	}
}
