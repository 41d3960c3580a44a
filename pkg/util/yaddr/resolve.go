package yaddr

import (
	"context"
	"fmt"
	"net"
)

// Lookuper 是平台名称解析器的最小接口，[*net.Resolver] 天然满足。
// 抽象出接口以便注入自定义解析器（或测试替身）。
type Lookuper interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// 编译期确认 *net.Resolver 满足 Lookuper。
var _ Lookuper = (*net.Resolver)(nil)

// defaultLookuper 是包级函数使用的平台解析器。
// 测试注入点：非并发安全，同包测试中修改此变量的用例不应使用 t.Parallel()。
var defaultLookuper Lookuper = net.DefaultResolver

// FromHost 将主机名解析为首个地址。
//
// name 为空字符串时返回 [Loopback4]（RFC 3330 §2 / RFC 2373 §2.5.3 约定）。
// 解析委托平台解析器（DNS 与 hosts 文件），调用阻塞至解析完成或失败；
// 超时与取消通过 ctx 表达，本包不施加内部超时，也不做内部重试。
// 解析失败返回包装 [ErrUnknownHost] 的错误。
func FromHost(ctx context.Context, name string) (Addr, error) {
	if name == "" {
		return Loopback4, nil
	}
	addrs, err := lookupAddrs(ctx, defaultLookuper, name)
	if err != nil {
		return Addr{}, err
	}
	return addrs[0], nil
}

// ResolveAll 将主机名解析为全部关联地址，顺序与平台解析器返回的一致。
//
// name 为空字符串时返回仅含 [Loopback4] 的单元素序列。
// 阻塞、超时与错误约定同 [FromHost]。
func ResolveAll(ctx context.Context, name string) ([]Addr, error) {
	if name == "" {
		return []Addr{Loopback4}, nil
	}
	return lookupAddrs(ctx, defaultLookuper, name)
}

// lookupAddrs 调用解析器并把结果规范化为 [Addr] 序列。
// 保证成功时返回非空序列。
func lookupAddrs(ctx context.Context, lk Lookuper, name string) ([]Addr, error) {
	ips, err := lk.LookupIPAddr(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownHost, name, err)
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("%w: %q: resolver returned no addresses", ErrUnknownHost, name)
	}
	out := make([]Addr, 0, len(ips))
	for _, ip := range ips {
		a, err := addrFromIP(ip.IP)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", name, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// addrFromIP 将解析器返回的 [net.IP] 规范化为 [Addr]。
// IPv4 结果（含 16 字节 IPv4-in-IPv6 表示）统一折叠为 4 字节形式，
// 与 A 记录语义一致；纯 IPv6 保持 16 字节。
func addrFromIP(ip net.IP) (Addr, error) {
	if v4 := ip.To4(); v4 != nil {
		return FromBytes(v4)
	}
	return FromBytes(ip)
}
