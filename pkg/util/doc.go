// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - yaddr: IP 地址值类型，字节/整数构造、主机名解析、范围检查与解析缓存
//   - yfile: 文件与目录树操作，原子复制、防护删除、递归监视
//   - yio: 缓冲 I/O 工具，池化缓冲复制、带上限读取
//   - yiter: 迭代器适配，切片/映射/通道到 iter.Seq 的桥接与串联
//
// 设计原则：
//   - 小而正交的函数，显式错误返回
//   - 不可变值类型可安全用作 map 键与并发共享
//   - 跨平台兼容
package util
