package yfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDirPerm 默认目录权限：所有者读写执行，组读执行，其他无权限。
const DefaultDirPerm = 0750

// DefaultFilePerm 默认文件权限：所有者读写，组只读，其他无权限。
const DefaultFilePerm = 0640

// EnsureDir 确保 filename 的父目录存在，使用默认权限 0750。
// 目录已存在时不报错，也不修改其权限。
//
// 注意：底层使用 [os.MkdirAll]，会跟随符号链接；filename 来自不可信
// 输入时调用方应先做路径约束。
func EnsureDir(filename string) error {
	return EnsureDirWithPerm(filename, DefaultDirPerm)
}

// EnsureDirWithPerm 确保 filename 的父目录存在，使用指定权限。
// perm 必须包含所有者执行位（0100），否则目录无法遍历，返回 [ErrInvalidPerm]。
func EnsureDirWithPerm(filename string, perm os.FileMode) error {
	if err := checkPath("filename", filename); err != nil {
		return err
	}
	if perm&0100 == 0 {
		return fmt.Errorf("directory permission %04o missing owner execute bit: %w", perm, ErrInvalidPerm)
	}
	dir := filepath.Dir(filename)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, perm)
}
