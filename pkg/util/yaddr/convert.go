package yaddr

import (
	"encoding/binary"
	"net"
	"net/netip"
)

// 与平台原生地址类型的显式双向转换。
// 转换只基于原始字节序列，逐字节无损往返；可达性探测、规范主机名、
// 回环判断等高层能力通过转换到平台类型后调用其方法获得，本包不实现。

// Netip 将 a 转换为平台原生的 [netip.Addr]。
// 4 字节地址转为 IPv4 形式，16 字节地址转为 IPv6 形式
// （包括 IPv4-mapped 字节序列，保持 16 字节语义不折叠）。
// 无效地址返回零值 netip.Addr。
func (a Addr) Netip() netip.Addr {
	switch a.n {
	case 4:
		return netip.AddrFrom4([4]byte(a.b[:4]))
	case 16:
		return netip.AddrFrom16(a.b)
	default:
		return netip.Addr{}
	}
}

// FromNetip 从 [netip.Addr] 构造 [Addr]。
// IPv4 形式得到 4 字节地址，其余有效地址得到 16 字节地址。
// 与 [Addr.Netip] 构成逐字节无损往返。无效输入返回零值 Addr。
func FromNetip(na netip.Addr) Addr {
	if na.Is4() {
		b4 := na.As4()
		return Addr{b: [16]byte{b4[0], b4[1], b4[2], b4[3]}, n: 4}
	}
	if na.IsValid() {
		return Addr{b: na.As16(), n: 16}
	}
	return Addr{}
}

// NetIP 将 a 转换为平台原生的 [net.IP]（字节序列副本）。
// 无效地址返回 nil。
func (a Addr) NetIP() net.IP {
	return net.IP(a.Bytes())
}

// FromNetIP 从 [net.IP] 构造 [Addr]，只取原始字节序列。
// 委托 [FromBytes]：长度 4/16 原样保留（net.IP 的 16 字节 IPv4-in-IPv6
// 表示不会被折叠为 4 字节），其余长度按规范化规则补零或拒绝。
// nil 输入返回 [ErrInvalidLength]。
func FromNetIP(ip net.IP) (Addr, error) {
	return FromBytes(ip)
}

// FromUint32 从 IPv4 的 uint32 表示（网络字节序，大端）构造 4 字节 [Addr]。
func FromUint32(v uint32) Addr {
	var a Addr
	binary.BigEndian.PutUint32(a.b[:4], v)
	a.n = 4
	return a
}

// Uint32 将 4 字节地址转换为 uint32（网络字节序）。
// 非 4 字节地址返回 (0, false)。
func (a Addr) Uint32() (uint32, bool) {
	if a.n != 4 {
		return 0, false
	}
	return binary.BigEndian.Uint32(a.b[:4]), true
}
