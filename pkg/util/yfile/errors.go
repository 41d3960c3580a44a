package yfile

import "errors"

var (
	// ErrEmptyPath 表示必需的路径参数为空。
	ErrEmptyPath = errors.New("yfile: path is required")

	// ErrNullByte 表示路径中包含空字节（\x00）。
	ErrNullByte = errors.New("yfile: path contains null byte")

	// ErrUnsafePath 表示删除目标语义含糊或危险（文件系统根、"."、".." 路径段）。
	ErrUnsafePath = errors.New("yfile: unsafe path")

	// ErrNotRegular 表示复制源不是普通文件（目录、符号链接、设备等）。
	ErrNotRegular = errors.New("yfile: source is not a regular file")

	// ErrNotDir 表示期望目录的位置不是目录。
	ErrNotDir = errors.New("yfile: not a directory")

	// ErrSameFile 表示复制源与目标是同一路径。
	ErrSameFile = errors.New("yfile: source and destination are the same")

	// ErrInvalidPerm 表示目录权限无效（缺少所有者执行位，目录无法遍历）。
	ErrInvalidPerm = errors.New("yfile: invalid directory permission")

	// ErrNilHandler 表示事件回调为 nil。
	ErrNilHandler = errors.New("yfile: handler cannot be nil")

	// ErrDestInsideSource 表示目录树复制的目标位于源内部，会导致自我复制。
	ErrDestInsideSource = errors.New("yfile: destination is inside source")
)
