// Package yaddr 提供 IP 地址值类型 [Addr] 及其规范化构造。
//
// [Addr] 是不可变的定长字节序列值类型：长度恒为 4（IPv4）或 16（IPv6），
// 构造完成后不存在任何修改操作。与 [net/netip] 的 [netip.Addr] 一样，
// Addr 是可比较的值类型，零分配比较，可直接作为 map key。
//
// # 核心功能
//
//   - addr.go: 值类型 [Addr]、规范化构造（[FromBytes]/[FromInts]/[FromOctets]）、
//     结构化相等与稳定哈希（[Addr.Equal]/[Addr.Hash64]）
//   - convert.go: 与平台原生类型 [net.IP]/[netip.Addr] 的显式双向转换、uint32 互转
//   - resolve.go: 主机名解析（[FromHost]/[ResolveAll]），委托平台解析器
//   - ranges.go: IP 范围集合解析与包含判断（委托 [go4.org/netipx]）
//   - cache.go: 带 TTL LRU 缓存与 singleflight 去重的解析器包装 [CachedResolver]
//
// # 规范化规则
//
// 所有构造入口最终收敛到 [FromBytes]：
//
//   - 长度 4 或 16：原样使用，字节按原始值解释，不做 IPv4/IPv6 语义校验
//   - 长度 1–3：右侧补零至 4 字节（视为 IPv4 意图）
//   - 长度 5–15：右侧补零至 16 字节（视为 IPv6 意图）
//   - 长度 0 或 >16：返回 [ErrInvalidLength]，错误信息包含非法长度与输入内容
//
// 补零永远追加在已有字节之后，不会前置。
//
// 整数入口（[FromInts]/[FromOctets]）对每个整数取低 8 位（按二进制补码截断，
// 等价于 Go 的 byte(v) 转换）：300 → 44，-1 → 255，256 → 0。
// 超出范围的整数永远被截断，不会被拒绝。
//
// # 快速示例
//
// 构造与格式化：
//
//	a, _ := yaddr.FromOctets(192, 168, 1, 100)
//	fmt.Println(a.String())              // 192.168.1.100
//	fmt.Println(a.Equal(yaddr.Loopback4)) // false
//
// 主机名解析（委托平台解析器，阻塞时长由调用方 context 控制）：
//
//	addrs, err := yaddr.ResolveAll(ctx, "localhost")
//
// 与平台类型互转（显式转换，逐字节无损往返）：
//
//	ip := a.NetIP()                // net.IP
//	back, _ := yaddr.FromNetIP(ip) // back.Equal(a) == true
//
// # 相等与哈希
//
// 两个 Addr 相等当且仅当字节序列逐元素相等（长度不同必不相等）。
// [Addr.Hash64] 基于有效字节计算 xxhash，相等的值哈希必然相等。
//
// # 错误处理
//
// 错误均为预定义变量，支持 [errors.Is]。核心两类：
//
//   - [ErrInvalidLength]: 输入长度为 0 或超过 16，构造失败，不返回部分对象
//   - [ErrUnknownHost]: 平台解析器无法解析主机名，原始错误通过 %w 链保留
//
// 范围解析与缓存配置另有 [ErrInvalidRange]、[ErrNilLookuper]、
// [ErrInvalidCacheSize]、[ErrInvalidTTL]。
//
// 解析失败不做内部重试，立即向调用方暴露。
//
// # 并发
//
// Addr 是不可变值，任意并发读无需同步。[FromHost] 和 [ResolveAll] 阻塞至
// 平台解析完成，超时与取消通过调用方传入的 context 表达。
// [CachedResolver] 的所有方法并发安全。
package yaddr
