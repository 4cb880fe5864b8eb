package minheap

import "fmt"

// TotalCost returns the cost of hiring k workers from costs in k rounds.
//
// Each round considers the cheapest worker among the first candidates and the
// last candidates workers not yet hired or queued, hires the cheaper of the
// two (the front group wins ties), and replaces them with the next unqueued
// worker from the same end. A pool is never refilled past the other pool's
// boundary, so every worker is queued at most once.
func TotalCost(costs []int, k, candidates int) (int64, error) {
	switch {
	case k < 0:
		return 0, fmt.Errorf("minheap: k must be >= 0, got %d", k)
	case k > len(costs):
		return 0, fmt.Errorf("minheap: cannot hire %d workers from %d", k, len(costs))
	case candidates < 1:
		return 0, fmt.Errorf("minheap: candidates must be >= 1, got %d", candidates)
	}

	n := len(costs)
	front := New[int](min(candidates, n))
	back := New[int](min(candidates, n))

	// [lo, hi] is the range of workers in neither pool.
	lo, hi := 0, n-1
	for i := 0; i < candidates && lo <= hi; i++ {
		front.Push(costs[lo])
		lo++
	}
	for i := 0; i < candidates && lo <= hi; i++ {
		back.Push(costs[hi])
		hi--
	}

	var total int64
	for i := 0; i < k; i++ {
		f, fok := front.Peek()
		b, bok := back.Peek()

		if fok && (!bok || f <= b) {
			front.Pop()
			total += int64(f)
			if lo <= hi {
				front.Push(costs[lo])
				lo++
			}
			continue
		}
		back.Pop()
		total += int64(b)
		if lo <= hi {
			back.Push(costs[hi])
			hi--
		}
	}
	return total, nil
}
