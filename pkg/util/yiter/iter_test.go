package yiter

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	t.Run("order preserved", func(t *testing.T) {
		got := slices.Collect(FromSlice([]int{3, 1, 2}))
		assert.Equal(t, []int{3, 1, 2}, got)
	})

	t.Run("nil slice", func(t *testing.T) {
		assert.Nil(t, slices.Collect(FromSlice[[]string](nil)))
	})

	t.Run("early break", func(t *testing.T) {
		var got []int
		for v := range FromSlice([]int{1, 2, 3, 4}) {
			if v == 3 {
				break
			}
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("named slice type", func(t *testing.T) {
		type ids []int
		got := slices.Collect(FromSlice(ids{7, 8}))
		assert.Equal(t, []int{7, 8}, got)
	})
}

func TestFromMap(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	got := make(map[string]int, len(m))
	for k, v := range FromMap(m) {
		got[k] = v
	}
	assert.Equal(t, m, got)

	// 提前 break 不 panic，且只收到一个元素
	count := 0
	for range FromMap(m) {
		count++
		break
	}
	assert.Equal(t, 1, count)

	assert.Empty(t, collect2(FromMap[map[string]int](nil)))
}

func TestFromChan(t *testing.T) {
	t.Run("drains closed channel", func(t *testing.T) {
		ch := make(chan int, 3)
		ch <- 1
		ch <- 2
		ch <- 3
		close(ch)

		got := slices.Collect(FromChan(ch))
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("early break leaves remainder", func(t *testing.T) {
		ch := make(chan int, 3)
		ch <- 1
		ch <- 2
		ch <- 3
		close(ch)

		for range FromChan(ch) {
			break
		}
		// 剩余元素保持未消费状态
		assert.Equal(t, 2, len(ch))
	})
}

func TestChain(t *testing.T) {
	t.Run("sources in order", func(t *testing.T) {
		got := slices.Collect(Chain(
			FromSlice([]int{1, 2}),
			FromSlice([]int{3}),
			FromSlice([]int{4, 5}),
		))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	})

	t.Run("empty and nil sources", func(t *testing.T) {
		got := slices.Collect(Chain(
			FromSlice([]int{}),
			nil,
			FromSlice([]int{9}),
		))
		assert.Equal(t, []int{9}, got)

		assert.Nil(t, slices.Collect(Chain[int]()))
	})

	t.Run("early break stops later sources", func(t *testing.T) {
		touched := false
		second := func(yield func(int) bool) {
			touched = true
		}

		var got []int
		for v := range Chain(FromSlice([]int{1, 2}), second) {
			got = append(got, v)
			if v == 2 {
				break
			}
		}
		assert.Equal(t, []int{1, 2}, got)
		assert.False(t, touched, "break 后不应触碰后续源")
	})
}

func TestChain2(t *testing.T) {
	got := collect2(Chain2(
		FromMap(map[string]int{"a": 1}),
		FromMap(map[string]int{"b": 2}),
	))
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)
}

func TestEnumerate(t *testing.T) {
	var idx []int
	var vals []string
	for i, v := range Enumerate(FromSlice([]string{"x", "y", "z"})) {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	require.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"x", "y", "z"}, vals)

	// 串联后下标连续递增
	var chained []int
	for i := range Enumerate(Chain(FromSlice([]int{10}), FromSlice([]int{20, 30}))) {
		chained = append(chained, i)
	}
	assert.Equal(t, []int{0, 1, 2}, chained)
}

// collect2 将键值迭代器收集为 map，测试辅助。
func collect2[K comparable, V any](seq func(func(K, V) bool)) map[K]V {
	out := make(map[K]V)
	for k, v := range seq {
		out[k] = v
	}
	return out
}
