package yiter

import "iter"

// FromSlice 将切片适配为迭代器，按下标顺序产出元素。
// 不复制底层数组；nil 或空切片产生空迭代。
func FromSlice[S ~[]E, E any](s S) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// FromMap 将 map 适配为键值迭代器。
// 产出顺序与 range 一致（随机）；nil 或空 map 产生空迭代。
func FromMap[M ~map[K]V, K comparable, V any](m M) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}

// FromChan 将 channel 适配为迭代器，产出元素直到 channel 关闭。
// 消费方提前 break 时停止接收，channel 中剩余元素保持未消费状态；
// 未关闭的 channel 会使迭代阻塞在接收上，生命周期由发送方控制。
func FromChan[E any](ch <-chan E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}

// Chain 将多个迭代器串联为一个：按参数顺序依次耗尽每个源。
// 消费方提前 break 时，当前源立即停止，后续源不再被触碰。
// 无参数或全部为空源时产生空迭代；nil 源被跳过。
func Chain[E any](seqs ...iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Chain2 是 [Chain] 的键值迭代器版本。
func Chain2[K, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Enumerate 为迭代器的每个元素附加从 0 递增的下标。
func Enumerate[E any](seq iter.Seq[E]) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}
