package scan

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// mapBounded 用固定数量的 worker 并发处理 items，结果按原始下标写回，
// 输出长度恒等于输入长度，顺序与完成先后无关。
// worker 数量为 min(limit, len(items))，共享一个原子游标认领下标。
func mapBounded[T, R any](items []T, limit int, fn func(item T, idx int) R) []R {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out
	}
	if limit < 1 {
		limit = 1
	}
	if limit > len(items) {
		limit = len(items)
	}

	var cursor atomic.Int64
	var g errgroup.Group
	for w := 0; w < limit; w++ {
		g.Go(func() error {
			for {
				idx := int(cursor.Add(1)) - 1
				if idx >= len(items) {
					return nil
				}
				out[idx] = fn(items[idx], idx)
			}
		})
	}
	// worker 不返回错误，失败处理由 fn 自己负责
	_ = g.Wait()
	return out
}
