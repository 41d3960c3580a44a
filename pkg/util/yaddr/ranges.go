package yaddr

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// IP 范围能力完全委托 [go4.org/netipx]，本包只做格式解析与 [Addr] 的桥接。

// ParseSet 将一组范围描述解析为 [*netipx.IPSet]。
//
// 每条描述支持三种格式：
//   - 单 IP: "192.168.1.1"
//   - CIDR: "192.168.1.0/24"
//   - 显式范围: "10.0.0.1-10.0.0.100"
//
// 重叠范围由 IPSet 自动合并，包含查询为 O(log n)。
// 单 IP 与范围端点中的 IPv4-mapped IPv6 地址归一化为纯 IPv4。
// 带 IPv6 zone ID 的地址（如 "fe80::1%eth0"）被拒绝：netipx 会静默丢弃
// zone 信息，导致后续包含查询误判。
func ParseSet(specs []string) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for i, s := range specs {
		r, err := parseRangeSpec(s)
		if err != nil {
			return nil, fmt.Errorf("spec[%d] %q: %w", i, s, err)
		}
		b.AddRange(r)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	return set, nil
}

// InSet 报告 a 是否落在 set 中。
// 16 字节的 IPv4-mapped 地址按其 IPv4 语义查询（与 [ParseSet] 的归一化一致）。
// set 为 nil 或 a 无效时返回 false。
func (a Addr) InSet(set *netipx.IPSet) bool {
	if set == nil || !a.IsValid() {
		return false
	}
	return set.Contains(a.Netip().Unmap())
}

// parseRangeSpec 解析单条范围描述为 [netipx.IPRange]。
func parseRangeSpec(s string) (netipx.IPRange, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, "/"):
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return netipx.RangeOfPrefix(p.Masked()), nil

	case strings.Contains(s, "-"):
		from, to, ok := strings.Cut(s, "-")
		if !ok {
			return netipx.IPRange{}, fmt.Errorf("%w: malformed range", ErrInvalidRange)
		}
		lo, err := parseRangeAddr(from)
		if err != nil {
			return netipx.IPRange{}, err
		}
		hi, err := parseRangeAddr(to)
		if err != nil {
			return netipx.IPRange{}, err
		}
		r := netipx.IPRangeFrom(lo, hi)
		// IPRangeFrom 对族不一致或 from > to 返回无效范围
		if !r.IsValid() {
			return netipx.IPRange{}, fmt.Errorf("%w: %s-%s", ErrInvalidRange, lo, hi)
		}
		return r, nil

	default:
		a, err := parseRangeAddr(s)
		if err != nil {
			return netipx.IPRange{}, err
		}
		return netipx.IPRangeFrom(a, a), nil
	}
}

// parseRangeAddr 解析范围端点地址：拒绝 zone ID，归一化 IPv4-mapped。
func parseRangeAddr(s string) (netip.Addr, error) {
	a, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if a.Zone() != "" {
		return netip.Addr{}, fmt.Errorf("%w: zone ID not supported", ErrInvalidRange)
	}
	return a.Unmap(), nil
}
