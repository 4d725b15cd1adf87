package aoc

import "container/heap"

type pqItem[T any] struct {
	v   T
	pri int
	seq int
}

type pqItems[T any] []pqItem[T]

func (q pqItems[T]) Len() int { return len(q) }
func (q pqItems[T]) Less(i, j int) bool {
	if q[i].pri != q[j].pri {
		return q[i].pri < q[j].pri
	}
	return q[i].seq < q[j].seq
}
func (q pqItems[T]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *pqItems[T]) Push(x any)   { *q = append(*q, x.(pqItem[T])) }
func (q *pqItems[T]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// PriorityQueue is a min-heap keyed by an int priority. Equal priorities pop
// in insertion order.
type PriorityQueue[T any] struct {
	items pqItems[T]
	seq   int
}

func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

func (q *PriorityQueue[T]) Len() int { return q.items.Len() }

func (q *PriorityQueue[T]) Push(v T, priority int) {
	q.seq++
	heap.Push(&q.items, pqItem[T]{v: v, pri: priority, seq: q.seq})
}

// Pop removes the lowest-priority item. The queue must not be empty.
func (q *PriorityQueue[T]) Pop() (T, int) {
	it := heap.Pop(&q.items).(pqItem[T])
	return it.v, it.pri
}
