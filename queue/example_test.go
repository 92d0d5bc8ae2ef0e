package queue_test

import (
	"fmt"

	"github.com/katalvlaran/rookflow/queue"
)

// ExampleQueue shows FIFO order across chunk boundaries.
func ExampleQueue() {
	q := queue.New[string](2)
	q.Push("source", "row0", "row1")

	head, _ := q.Peek()
	tail, _ := q.Last()
	fmt.Println(head, tail, q.Len())

	for !q.IsEmpty() {
		v, _ := q.Pop()
		fmt.Println(v)
	}
	// Output:
	// source row1 3
	// source
	// row0
	// row1
}
