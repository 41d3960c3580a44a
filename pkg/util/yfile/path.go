package yfile

import (
	"fmt"
	"strings"
)

// containsNullByte 检测路径是否包含空字节。
func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}

// hasDotDotSegment 检测路径中是否包含 ".." 作为独立路径段。
// 逐字符扫描，零分配；'/' 与 '\' 均视为分隔符，覆盖跨平台拼接错误。
// 只有恰好为 ".." 的段才算穿越，"..config" 这类文件名不会被误判。
func hasDotDotSegment(path string) bool {
	i := 0
	for i < len(path) {
		if path[i] == '/' || path[i] == '\\' {
			i++
			continue
		}
		j := i
		for j < len(path) && path[j] != '/' && path[j] != '\\' {
			j++
		}
		if j-i == 2 && path[i] == '.' && path[i+1] == '.' {
			return true
		}
		i = j
	}
	return false
}

// checkPath 是所有入口共用的基础校验：拒绝空路径与空字节。
// what 用于错误信息中标识参数名。
func checkPath(what, path string) error {
	if path == "" {
		return fmt.Errorf("%s is required: %w", what, ErrEmptyPath)
	}
	if containsNullByte(path) {
		return fmt.Errorf("%s contains null byte: %w", what, ErrNullByte)
	}
	return nil
}
