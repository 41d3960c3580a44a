// Package yfile 提供文件与目录树的复制、删除、监视工具。
//
// # 核心功能
//
//   - dir.go: [EnsureDir] 确保父目录存在（默认权限 0750）
//   - copy.go: [CopyFile] 原子单文件复制、[CopyTree] 递归目录树复制
//   - remove.go: [RemoveTree] 带防护与瞬态错误重试的递归删除
//   - watch.go: [WatchTree] 递归目录监视（新建子目录自动纳入）
//
// # 安全防护
//
// 所有入口拒绝空路径与包含空字节（\x00）的路径：Linux 内核在 VFS 层
// 会在空字节处截断路径，导致 Go 代码与操作系统实际操作的路径不一致。
//
// [RemoveTree] 额外拒绝文件系统根、"." 以及含 ".." 路径段的目标：
// 递归删除的代价不可逆，语义含糊的目标一律拒绝而非猜测。
// ".." 检测按路径段精确匹配，以 ".." 开头的合法文件名（如 "..config"）
// 不会被误判。
//
// # 原子性
//
// [CopyFile] 先写入目标目录下的唯一临时文件（fsync 后 rename 就位），
// 观察者要么看到旧内容要么看到完整新内容，不会读到半写状态。
// rename 在跨文件系统时会失败，临时文件与目标始终同目录，不受影响。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断：
//
//	err := yfile.RemoveTree("/")
//	if errors.Is(err, yfile.ErrUnsafePath) {
//	    // 防护拒绝
//	}
package yfile
