package priority_test

import (
	"fmt"
	"math"

	"github.com/davidvella/priq/priority"
)

// ExampleQueue_minHeap demonstrates using the priority queue as a min-heap.
func ExampleQueue_minHeap() {
	pq := priority.New[int, string]()

	pq.Put(5, "task1")
	pq.Put(3, "task2")
	pq.Put(7, "task3")

	// Peek at highest priority item
	score, item, ok := pq.Peek()
	if ok {
		fmt.Printf("Highest priority: %s = %d\n", item, score)
	}

	// Pop items in priority order
	for !pq.IsEmpty() {
		score, item, _ := pq.Pop()
		fmt.Printf("Popped: %s = %d\n", item, score)
	}

	// Output:
	// Highest priority: task2 = 3
	// Popped: task2 = 3
	// Popped: task1 = 5
	// Popped: task3 = 7
}

// ExampleQueue_maxHeap demonstrates using the priority queue as a max-heap.
func ExampleQueue_maxHeap() {
	pq := priority.NewFunc[int, string](priority.Reverse(priority.PartialCompare[int]))

	pq.Put(10, "A")
	pq.Put(20, "B")
	pq.Put(15, "C")

	for !pq.IsEmpty() {
		score, item, _ := pq.Pop()
		fmt.Printf("%s: %d\n", item, score)
	}

	// Output:
	// B: 20
	// C: 15
	// A: 10
}

// ExampleQueue_nan shows that NaN scores are served last.
func ExampleQueue_nan() {
	pq := priority.New[float64, int]()

	pq.Put(1.1, 10)
	pq.Put(math.NaN(), -1)
	pq.Put(2.2, 20)
	pq.Put(3.3, 30)
	pq.Put(math.NaN(), -3)
	pq.Put(4.4, 40)

	for i := 0; i < 4; i++ {
		_, item, _ := pq.Pop()
		fmt.Println(item)
	}
	fmt.Println(pq.Len(), "NaN entries left")

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 2 NaN entries left
}

// ExampleQueue_IntoSorted empties a queue into a sorted slice.
func ExampleQueue_IntoSorted() {
	pq := priority.FromEntries([]priority.Entry[int, int]{
		{Score: 5, Item: 55},
		{Score: 1, Item: 11},
		{Score: 4, Item: 44},
	})

	for _, e := range pq.IntoSorted() {
		fmt.Printf("%d ", e.Item)
	}
	fmt.Println(pq.IsEmpty())

	// Output: 11 44 55 true
}

// ExampleMerged pops several queues in one priority order.
func ExampleMerged() {
	a := priority.FromEntries([]priority.Entry[int, string]{{Score: 1, Item: "a1"}, {Score: 4, Item: "a4"}})
	b := priority.FromEntries([]priority.Entry[int, string]{{Score: 2, Item: "b2"}, {Score: 3, Item: "b3"}})

	for _, item := range priority.Merged(a, b) {
		fmt.Printf("%s ", item)
	}

	// Output: a1 b2 b3 a4
}
