package yaddr

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Addr 是不可变的 IP 地址值类型。
// 内部持有定长字节序列，长度恒为 4（IPv4）或 16（IPv6）。
//
// Addr 是可比较的值类型：== 即为结构化相等（逐字节比较），
// 可直接作为 map key 使用。零值无效（[Addr.IsValid] 返回 false）。
//
// 设计决策: 用 [16]byte 定长数组加长度字段表示，而非 []byte：
//   - 值语义天然不可变，复制即快照，无共享可变状态
//   - 可比较，无需自定义 map key 包装
//   - 构造器保证 n 之后的字节恒为零，因此 == 等价于有效字节逐元素相等
type Addr struct {
	b [16]byte
	n uint8
}

// 预定义的周知地址。
var (
	// Loopback4 是 IPv4 回环地址 127.0.0.1。
	Loopback4 = Addr{b: [16]byte{127, 0, 0, 1}, n: 4}

	// Loopback6 是 IPv6 回环地址 ::1。
	Loopback6 = Addr{b: [16]byte{15: 1}, n: 16}
)

// FromBytes 从原始字节序列构造 [Addr]，是所有构造入口收敛的规范化路径。
//
// 规则：
//   - 长度 4 或 16：原样使用（字节按原始值解释，不做地址语义校验）
//   - 长度 1–3：右侧补零至 4 字节
//   - 长度 5–15：右侧补零至 16 字节
//   - 长度 0 或 >16：返回 [ErrInvalidLength]
//
// 返回的 Addr 不持有 b 的引用，调用后修改 b 不影响已构造的值。
func FromBytes(b []byte) (Addr, error) {
	n := len(b)
	if n == 0 || n > 16 {
		return Addr{}, fmt.Errorf("%w: got %d bytes (%v)", ErrInvalidLength, n, b)
	}
	var a Addr
	copy(a.b[:], b)
	if n <= 4 {
		a.n = 4
	} else {
		a.n = 16
	}
	return a, nil
}

// FromInts 从整数序列构造 [Addr]。
// 每个整数按二进制补码截断为低 8 位（等价于 byte(v)：300 → 44，-1 → 255），
// 然后委托 [FromBytes] 规范化。超出范围的整数永远被截断，不会被拒绝。
func FromInts(vs []int) (Addr, error) {
	n := len(vs)
	if n == 0 || n > 16 {
		return Addr{}, fmt.Errorf("%w: got %d ints (%v)", ErrInvalidLength, n, vs)
	}
	b := make([]byte, n)
	for i, v := range vs {
		b[i] = byte(v)
	}
	return FromBytes(b)
}

// FromOctets 是 [FromInts] 的变长参数形式，适用于直接给出各字节的场景：
//
//	a, _ := yaddr.FromOctets(192, 168, 1, 1)
func FromOctets(vs ...int) (Addr, error) {
	return FromInts(vs)
}

// IsValid 报告 a 是否为有效地址（经构造入口产生）。
// 零值 Addr 返回 false。
func (a Addr) IsValid() bool {
	return a.n == 4 || a.n == 16
}

// Is4 报告 a 是否为 4 字节（IPv4）地址。
func (a Addr) Is4() bool {
	return a.n == 4
}

// Is16 报告 a 是否为 16 字节（IPv6）地址。
func (a Addr) Is16() bool {
	return a.n == 16
}

// Len 返回地址字节长度（4 或 16，无效地址返回 0）。
func (a Addr) Len() int {
	return int(a.n)
}

// Bytes 返回地址字节序列的副本。
// 返回副本而非内部切片，保证 Addr 的不可变性。
func (a Addr) Bytes() []byte {
	if !a.IsValid() {
		return nil
	}
	out := make([]byte, a.n)
	copy(out, a.b[:a.n])
	return out
}

// Equal 报告两个地址是否逐字节相等。
// 长度不同（如 4 字节与 16 字节表示）必不相等。
// 等价于 ==，提供命名方法以明确值语义。
func (a Addr) Equal(other Addr) bool {
	return a == other
}

// Hash64 返回基于有效字节的确定性哈希。
// 相等的地址哈希必然相等；跨进程、跨平台稳定（xxhash 为固定算法）。
func (a Addr) Hash64() uint64 {
	return xxhash.Sum64(a.b[:a.n])
}

// String 返回平台约定的文本形式：4 字节为点分十进制，
// 16 字节为 RFC 5952 冒号十六进制。格式化完全委托 [netip.Addr]，
// 本包不自行实现格式化规则。无效地址返回空字符串。
func (a Addr) String() string {
	if !a.IsValid() {
		return ""
	}
	return a.Netip().String()
}

// IsLoopback 报告 a 是否为回环地址。委托 [netip.Addr.IsLoopback]。
func (a Addr) IsLoopback() bool {
	return a.Netip().IsLoopback()
}

// IsUnspecified 报告 a 是否为未指定地址（0.0.0.0 或 ::）。
// 委托 [netip.Addr.IsUnspecified]。
func (a Addr) IsUnspecified() bool {
	return a.Netip().IsUnspecified()
}
