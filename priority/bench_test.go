package priority_test

import (
	"container/heap"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/davidvella/priq/priority"
)

var sizes = []int{100, 1000, 10000, 100000}

func BenchmarkQueue(b *testing.B) {
	b.ReportAllocs()

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Put_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				pq := priority.New[int, int]()
				for j := 0; j < size; j++ {
					pq.Put(j, j*2)
				}
			}
		})

		b.Run(fmt.Sprintf("PutWithCapacity_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				pq := priority.New[int, int](priority.WithCapacity(size))
				for j := 0; j < size; j++ {
					pq.Put(j, j*2)
				}
			}
		})

		b.Run(fmt.Sprintf("Pop_%d", size), func(b *testing.B) {
			pq := priority.New[int, int](priority.WithCapacity(size))
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				for j := 0; j < size; j++ {
					pq.Put(rand.IntN(size), j)
				}
				b.StartTimer()
				for !pq.IsEmpty() {
					pq.Pop()
				}
			}
		})

		b.Run(fmt.Sprintf("Mixed_%d", size), func(b *testing.B) {
			pq := priority.New[float64, int]()
			for j := 0; j < size; j++ {
				pq.Put(rand.Float64(), j)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if rand.IntN(2) == 0 {
					pq.Put(rand.Float64(), i)
				} else {
					pq.Pop()
				}
			}
		})
	}
}

// intHeap is the container/heap baseline the queue is measured against.
type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func BenchmarkContainerHeap(b *testing.B) {
	b.ReportAllocs()

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Push_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				h := &intHeap{}
				for j := 0; j < size; j++ {
					heap.Push(h, j*2)
				}
			}
		})

		b.Run(fmt.Sprintf("Pop_%d", size), func(b *testing.B) {
			h := &intHeap{}
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				for j := 0; j < size; j++ {
					heap.Push(h, rand.IntN(size))
				}
				b.StartTimer()
				for h.Len() > 0 {
					heap.Pop(h)
				}
			}
		})
	}
}
