package yfile

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchTree 递归监视 root 目录树，把每个文件系统事件交给 fn 处理。
//
// root 下已有的全部子目录在启动时纳入监视；监视期间新建的子目录
// 自动补充纳入（尽力而为：事件送达前写入该目录的内容可能漏报，
// 这是 inotify 模型的固有窗口）。
//
// 调用在当前 goroutine 阻塞，直到 ctx 取消（返回 ctx.Err()）或底层
// 监视器报错。fn 在同一 goroutine 内同步执行，耗时处理应由 fn 自行
// 分发，避免事件积压。
func WatchTree(ctx context.Context, root string, fn func(fsnotify.Event)) error {
	if err := checkPath("root", root); err != nil {
		return err
	}
	if fn == nil {
		return ErrNilHandler
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q: %w", root, ErrNotDir)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// 纳入 root 及其全部既有子目录
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch tree: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				// 新建子目录补充纳入；stat 失败说明条目已消失，忽略
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = w.Add(ev.Name)
				}
			}
			fn(ev)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch tree: %w", err)
		}
	}
}
