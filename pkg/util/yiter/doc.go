// Package yiter 提供集合到迭代器的适配与多源串联迭代。
//
// 基于 Go 1.23 的标准迭代器协议 [iter.Seq] / [iter.Seq2] 构建，
// 不引入自定义迭代器接口：适配结果可直接用于 range-over-func、
// [slices.Collect]、[maps.Collect] 等标准库设施。
//
// # 核心功能
//
//   - [FromSlice] / [FromMap] / [FromChan]: 宿主集合类型 → 迭代器
//   - [Chain] / [Chain2]: 多个迭代器按参数顺序串联为一个
//   - [Enumerate]: 为单值迭代器附加递增下标
//
// # 快速示例
//
//	for v := range yiter.Chain(yiter.FromSlice(a), yiter.FromSlice(b)) {
//	    fmt.Println(v)
//	}
//
// # 语义说明
//
// 所有适配器都是惰性的：不复制底层集合，消费时才逐元素产出；
// 消费方提前 break 时立即停止，后续源不再被触碰。
// 迭代期间修改底层集合的行为由宿主类型决定（与直接 range 一致）。
package yiter
