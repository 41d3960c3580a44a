package yio

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
)

// DefaultBufferSize 复制缓冲区大小，与 io.Copy 的内部默认值一致。
const DefaultBufferSize = 32 * 1024

// bufPool 复用复制缓冲区。
// 存放 *[]byte 而非 []byte，避免 Put 时切片头装箱分配（SA6002）。
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, DefaultBufferSize)
		return &b
	},
}

// Copy 将 src 复制到 dst，语义与 [io.Copy] 一致，
// 但使用池化缓冲区，稳态不产生缓冲分配。
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	bp := bufPool.Get().(*[]byte)
	defer bufPool.Put(bp)
	return io.CopyBuffer(dst, src, *bp)
}

// CopyN 从 src 复制恰好 n 字节到 dst。
// src 提前耗尽时返回已复制字节数与 [io.EOF]（与 [io.CopyN] 一致）。
// n 为负返回 [ErrNegativeLimit]。
func CopyN(dst io.Writer, src io.Reader, n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeLimit, n)
	}
	written, err := Copy(dst, io.LimitReader(src, n))
	if written == n {
		return n, nil
	}
	if err == nil {
		// LimitReader 静默截断，src 提前耗尽时补 EOF 语义
		err = io.EOF
	}
	return written, err
}

// ReadAllLimit 读取 r 的全部内容，最多 limit 字节。
// 输入超过 limit 时返回 [ErrLimitExceeded]（已读数据不返回）。
// limit 为负返回 [ErrNegativeLimit]，limit 为 0 仅允许空输入。
func ReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, limit)
	}
	if limit == math.MaxInt64 {
		// 防止下方 limit+1 溢出为负导致 LimitReader 直接归零
		limit = math.MaxInt64 - 1
	}
	var buf bytes.Buffer
	// 多读 1 字节以区分"恰好 limit"与"超限"
	n, err := Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if n > limit {
		return nil, fmt.Errorf("%w: limit %d", ErrLimitExceeded, limit)
	}
	return buf.Bytes(), nil
}
