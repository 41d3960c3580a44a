package yaddr

import "errors"

var (
	// ErrInvalidLength 表示输入字节/整数序列长度为 0 或超过 16。
	ErrInvalidLength = errors.New("yaddr: invalid address length")

	// ErrUnknownHost 表示平台解析器无法解析主机名。
	// 解析器返回的原始错误通过 %w 链保留，可用 errors.As 取出（如 *net.DNSError）。
	ErrUnknownHost = errors.New("yaddr: unknown host")

	// ErrInvalidRange 表示无效的 IP 范围格式。
	ErrInvalidRange = errors.New("yaddr: invalid IP range")

	// ErrNilLookuper 表示解析器参数为 nil。
	ErrNilLookuper = errors.New("yaddr: lookuper cannot be nil")

	// ErrInvalidCacheSize 表示缓存条目数配置无效。
	ErrInvalidCacheSize = errors.New("yaddr: invalid cache size")

	// ErrInvalidTTL 表示缓存 TTL 配置无效。
	ErrInvalidTTL = errors.New("yaddr: invalid cache TTL")
)
