package yaddr

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// maxCacheSize 缓存最大条目数上限。
const maxCacheSize = 1 << 20

// CacheConfig 定义 [CachedResolver] 的缓存配置。
type CacheConfig struct {
	// Size 缓存最大条目数。必须大于 0 且不超过 1,048,576。
	Size int

	// TTL 解析结果的缓存时长。0 表示永不过期，不允许负值。
	TTL time.Duration
}

// CachedResolver 是带缓存的解析器包装：TTL LRU 缓存命中结果，
// singleflight 保证同一主机名的并发未命中只触发一次底层解析。
//
// 缓存是可选的调用方行为；包级的 [FromHost]/[ResolveAll] 始终直连平台
// 解析器，不经过任何缓存，也不做重试。失败结果不缓存（无负缓存），
// 下次调用会重新解析。
//
// 所有方法并发安全。必须通过 [NewCachedResolver] 创建，零值不可用。
type CachedResolver struct {
	lk  Lookuper
	lru *expirable.LRU[string, []Addr]
	sf  singleflight.Group
}

// NewCachedResolver 创建缓存解析器。
// lk 为 nil 返回 [ErrNilLookuper]；通常传入 [net.DefaultResolver]。
// cfg.Size 超出 (0, 1048576] 返回 [ErrInvalidCacheSize]；
// cfg.TTL 为负返回 [ErrInvalidTTL]。
func NewCachedResolver(lk Lookuper, cfg CacheConfig) (*CachedResolver, error) {
	if lk == nil {
		return nil, ErrNilLookuper
	}
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, cfg.Size)
	}
	if cfg.Size > maxCacheSize {
		return nil, fmt.Errorf("%w: %d exceeds max %d", ErrInvalidCacheSize, cfg.Size, maxCacheSize)
	}
	if cfg.TTL < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTTL, cfg.TTL)
	}
	return &CachedResolver{
		lk:  lk,
		lru: expirable.NewLRU[string, []Addr](cfg.Size, nil, cfg.TTL),
	}, nil
}

// ResolveAll 解析主机名的全部地址，命中缓存时不触达平台解析器。
//
// name 为空字符串时返回仅含 [Loopback4] 的序列（不占用缓存条目）。
// 返回的切片是副本，调用方可自由修改。
//
// singleflight 语义：并发未命中的调用共享第一个进入者的解析结果，
// 后来者的 ctx 不参与底层解析的取消控制。
func (r *CachedResolver) ResolveAll(ctx context.Context, name string) ([]Addr, error) {
	if name == "" {
		return []Addr{Loopback4}, nil
	}
	if cached, ok := r.lru.Get(name); ok {
		return cloneAddrs(cached), nil
	}
	v, err, _ := r.sf.Do(name, func() (any, error) {
		// double-check：singleflight 排队期间可能已有同名请求完成并写入缓存
		if cached, ok := r.lru.Get(name); ok {
			return cached, nil
		}
		addrs, err := lookupAddrs(ctx, r.lk, name)
		if err != nil {
			return nil, err
		}
		r.lru.Add(name, addrs)
		return addrs, nil
	})
	if err != nil {
		return nil, err
	}
	addrs, ok := v.([]Addr)
	if !ok || len(addrs) == 0 {
		// lookupAddrs 保证非空，此分支防止 singleflight 结果类型意外变化
		return nil, fmt.Errorf("%w: %q: unexpected cached value", ErrUnknownHost, name)
	}
	return cloneAddrs(addrs), nil
}

// Resolve 解析主机名的首个地址。缓存与空名行为同 [ResolveAll]。
func (r *CachedResolver) Resolve(ctx context.Context, name string) (Addr, error) {
	addrs, err := r.ResolveAll(ctx, name)
	if err != nil {
		return Addr{}, err
	}
	return addrs[0], nil
}

// Purge 清空全部缓存条目。
func (r *CachedResolver) Purge() {
	r.lru.Purge()
}

// Len 返回当前缓存条目数。
func (r *CachedResolver) Len() int {
	return r.lru.Len()
}

// cloneAddrs 复制地址切片，避免缓存内部切片外泄。
// Addr 本身是不可变值，仅需复制切片头与元素。
func cloneAddrs(in []Addr) []Addr {
	out := make([]Addr, len(in))
	copy(out, in)
	return out
}
