// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xpool: 泛型 Worker Pool，每个任务运行在空白诊断上下文上，失败时附加诊断报告
package util
