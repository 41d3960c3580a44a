// Package yio 提供带缓冲的流复制工具。
//
// # 核心功能
//
//   - [Copy] / [CopyN]: 使用 sync.Pool 复用的 32 KiB 缓冲区做流复制，
//     稳态零分配，避免 io.Copy 每次调用临时分配缓冲
//   - [ReadAllLimit]: 带上限的 ReadAll，防止不可信输入撑爆内存
//
// # 快速示例
//
//	n, err := yio.Copy(dst, src)
//
//	data, err := yio.ReadAllLimit(resp.Body, 1<<20) // 最多读 1 MiB
//	if errors.Is(err, yio.ErrLimitExceeded) {
//	    // 输入超限
//	}
//
// # 语义说明
//
// [Copy] 与 [io.Copy] 语义一致：复制至 src 耗尽，EOF 不算错误。
// 当 src 实现 [io.WriterTo] 或 dst 实现 [io.ReaderFrom] 时，
// 标准库走快速路径，池化缓冲不参与——这是期望行为，快速路径总是更优。
//
// 本包不持有任何状态，所有函数并发安全。
package yio
