package yfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	retry "github.com/avast/retry-go/v5"
)

// removeAttempts 瞬态删除失败的最大尝试次数（含首次）。
const removeAttempts = 3

// RemoveTree 递归删除 path 指向的文件或目录树。
// 目标不存在时不报错（与 [os.RemoveAll] 一致）。
//
// 递归删除不可逆，语义含糊的目标一律拒绝（[ErrUnsafePath]）：
//   - 文件系统根（"/"）
//   - 规范化后为 "." 的路径（当前目录）
//   - 含 ".." 路径段的路径（删除意图应显式指向目标，而非向上回溯）
//
// 并发场景下 RemoveAll 可能因删除期间新建的条目返回 ENOTEMPTY/EBUSY，
// 此类瞬态错误做固定间隔的有限重试后再上抛。
func RemoveTree(path string) error {
	if err := checkPath("path", path); err != nil {
		return err
	}

	// ".." 检查必须在 Clean 之前：Clean 会折叠 ".."（如 "/tmp/a/../../etc"
	// → "/etc"），折叠后再检查会放行向上回溯的删除目标
	if hasDotDotSegment(path) {
		return fmt.Errorf("refusing to remove %q (\"..\" segment): %w", path, ErrUnsafePath)
	}
	clean := filepath.Clean(path)
	if clean == "/" || clean == "." || clean == string(filepath.Separator) {
		return fmt.Errorf("refusing to remove %q: %w", clean, ErrUnsafePath)
	}

	return retry.New(
		retry.Attempts(removeAttempts),
		retry.Delay(20*time.Millisecond),
		retry.DelayType(retry.FixedDelay),
		retry.RetryIf(isTransientRemoveErr),
		retry.LastErrorOnly(true),
	).Do(func() error {
		return os.RemoveAll(clean)
	})
}

// isTransientRemoveErr 报告 err 是否为删除竞争产生的瞬态错误。
func isTransientRemoveErr(err error) bool {
	return errors.Is(err, syscall.ENOTEMPTY) || errors.Is(err, syscall.EBUSY)
}
