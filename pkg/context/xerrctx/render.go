package xerrctx

import "strings"

// 报告行前缀
const (
	linePrefix     = "### "
	prefixResource = "### The error may exist in "
	prefixObject   = "### The error may involve "
	prefixActivity = "### The error occurred while "
	prefixSQL      = "### SQL: "
	prefixCause    = "### Cause: "
)

// statementReplacer 将换行、回车、制表符各自替换为一个空格。
var statementReplacer = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ")

// NormalizeStatement 返回渲染用的语句文本：\n、\r、\t 替换为空格后去除首尾空白。
// 内部连续空格不折叠。
func NormalizeStatement(statement string) string {
	return strings.TrimSpace(statementReplacer.Replace(statement))
}

// String 渲染多行诊断报告。
//
// 只输出已设置的字段，顺序固定为 message、resource、object、activity、statement、cause，
// 每行以平台换行符开头。全部未设置时返回空字符串。
func (ec *ErrorContext) String() string {
	if ec == nil || ec.IsEmpty() {
		return ""
	}

	var b strings.Builder
	line := func(prefix, value string) {
		b.WriteString(lineSeparator)
		b.WriteString(prefix)
		b.WriteString(value)
	}

	if ec.message != "" {
		line(linePrefix, ec.message)
	}
	if ec.resource != "" {
		line(prefixResource, ec.resource)
	}
	if ec.object != "" {
		line(prefixObject, ec.object)
	}
	if ec.activity != "" {
		line(prefixActivity, ec.activity)
	}
	if ec.statement != "" {
		line(prefixSQL, NormalizeStatement(ec.statement))
	}
	if ec.cause != nil {
		line(prefixCause, ec.cause.Error())
	}
	return b.String()
}
