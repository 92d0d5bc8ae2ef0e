package queue_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/rookflow/queue"
)

// BenchmarkQueue_Frontier simulates a BFS frontier: a burst of pushes followed
// by interleaved pop/push pairs and a final drain.
func BenchmarkQueue_Frontier(b *testing.B) {
	for _, n := range []int{10, 1000, 100000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				q := queue.New[int](queue.DefaultChunkSize)
				for j := 0; j < n; j++ {
					q.Push(j)
				}
				for j := 0; j < n; j++ {
					q.Pop()
					q.Push(j)
				}
				for !q.IsEmpty() {
					q.Pop()
				}
			}
		})
	}
}

// BenchmarkQueue_ChunkSize compares block sizes on a steady stream.
func BenchmarkQueue_ChunkSize(b *testing.B) {
	for _, size := range []int{1, 8, 64, 512} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				q := queue.New[int](size)
				for j := 0; j < 10000; j++ {
					q.Push(j, j)
					q.Pop()
				}
			}
		})
	}
}
