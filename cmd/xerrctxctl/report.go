package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/xerrctx/pkg/context/xerrctx"
)

var (
	errUnsupportedFormat = errors.New("xerrctxctl: unsupported file format")
	errLoadFailed        = errors.New("xerrctxctl: failed to load report file")
	errParseFailed       = errors.New("xerrctxctl: failed to parse report file")
)

// reportSpec 是报告定义，字段与 xerrctx.ErrorContext 一一对应。
type reportSpec struct {
	Message  string `koanf:"message"`
	Resource string `koanf:"resource"`
	Object   string `koanf:"object"`
	Activity string `koanf:"activity"`
	SQL      string `koanf:"sql"`
	Cause    string `koanf:"cause"`
}

func (s reportSpec) isEmpty() bool {
	return s == reportSpec{}
}

// merge 用 override 中的非空字段覆盖 s。
func (s reportSpec) merge(override reportSpec) reportSpec {
	pick := func(base, v string) string {
		if v != "" {
			return v
		}
		return base
	}
	return reportSpec{
		Message:  pick(s.Message, override.Message),
		Resource: pick(s.Resource, override.Resource),
		Object:   pick(s.Object, override.Object),
		Activity: pick(s.Activity, override.Activity),
		SQL:      pick(s.SQL, override.SQL),
		Cause:    pick(s.Cause, override.Cause),
	}
}

// apply 将报告定义写入 ec。
func (s reportSpec) apply(ec *xerrctx.ErrorContext) *xerrctx.ErrorContext {
	ec.WithMessage(s.Message).
		WithResource(s.Resource).
		WithObject(s.Object).
		WithActivity(s.Activity).
		WithSQL(s.SQL)
	if s.Cause != "" {
		ec.WithCause(errors.New(s.Cause))
	}
	return ec
}

// parserFor 根据文件扩展名选择 koanf 解析器。
func parserFor(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: unknown extension %q", errUnsupportedFormat, ext)
	}
}

// loadReportFile 读取并解析报告定义文件。
func loadReportFile(path string) (reportSpec, error) {
	parser, err := parserFor(path)
	if err != nil {
		return reportSpec{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return reportSpec{}, fmt.Errorf("%w: %w", errLoadFailed, err)
	}
	return parseReport(data, parser)
}

func parseReport(data []byte, parser koanf.Parser) (reportSpec, error) {
	var spec reportSpec
	if len(data) == 0 {
		return spec, nil
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return reportSpec{}, fmt.Errorf("%w: %w", errParseFailed, err)
	}
	if err := k.UnmarshalWithConf("", &spec, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return reportSpec{}, fmt.Errorf("%w: %w", errParseFailed, err)
	}
	return spec, nil
}
