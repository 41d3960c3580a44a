package yfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/omeyang/ykit/pkg/util/yio"
)

// CopyFile 将普通文件 src 复制为 dst，保留 src 的权限位。
//
// 复制是原子的：先写入 dst 同目录下的唯一临时文件，fsync 后 rename
// 就位。dst 已存在时被整体替换；观察者不会读到半写内容。
// dst 的父目录必须已存在（需要时先调用 [EnsureDir]）。
//
// src 必须是普通文件：目录、符号链接、设备文件返回 [ErrNotRegular]。
// src 与 dst 为同一路径时返回 [ErrSameFile]。
func CopyFile(src, dst string) error {
	if err := checkPath("src", src); err != nil {
		return err
	}
	if err := checkPath("dst", dst); err != nil {
		return err
	}
	if filepath.Clean(src) == filepath.Clean(dst) {
		return fmt.Errorf("%q: %w", src, ErrSameFile)
	}

	info, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%q (%s): %w", src, info.Mode().Type(), ErrNotRegular)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	// 临时文件与 dst 同目录，保证 rename 不跨文件系统；
	// uuid 后缀避免并发复制到同一目标时互相踩踏
	tmp := filepath.Join(filepath.Dir(dst), ".ycopy-"+uuid.NewString()+".tmp")
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := yio.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("copy data: %w", err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// CopyTree 将目录树 src 递归复制到 dst。
//
//   - 目录按源目录的权限位创建（dst 本身不存在时一并创建）
//   - 普通文件经 [CopyFile] 原子复制
//   - 符号链接按链接本身重建（不跟随目标）
//   - 其他类型（设备、socket 等）跳过
//
// dst 位于 src 内部时返回 [ErrDestInsideSource]，避免自我复制不收敛。
func CopyTree(src, dst string) error {
	if err := checkPath("src", src); err != nil {
		return err
	}
	if err := checkPath("dst", dst); err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if !srcInfo.IsDir() {
		return fmt.Errorf("%q: %w", src, ErrNotDir)
	}
	if err := checkDestOutsideSource(src, dst); err != nil {
		return err
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, info.Mode().Perm())

		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			// 重建链接：目标已存在时先移除，保证可重复执行
			if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
				return err
			}
			return os.Symlink(link, target)

		case d.Type().IsRegular():
			return CopyFile(path, target)

		default:
			// 设备、socket、FIFO 等特殊文件不复制
			return nil
		}
	})
}

// checkDestOutsideSource 拒绝 dst 位于 src 内部（含相同路径）的情形。
func checkDestOutsideSource(src, dst string) error {
	srcAbs, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	dstAbs, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(srcAbs, dstAbs)
	if err != nil {
		// 无法表达相对关系（如 Windows 跨盘符），必然在源外部
		return nil
	}
	if !hasDotDotSegment(rel) {
		return fmt.Errorf("%q inside %q: %w", dst, src, ErrDestInsideSource)
	}
	return nil
}
