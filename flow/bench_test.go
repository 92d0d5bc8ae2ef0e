package flow_test

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/rookflow/flow"
	"github.com/katalvlaran/rookflow/problem"
)

// BenchmarkSolve measures construction plus solve on random instances of
// increasing size, the same span the CLI times.
func BenchmarkSolve(b *testing.B) {
	cases := []struct {
		name        string
		side, count int
	}{
		{"Small", 50, 10},
		{"Medium", 400, 15},
		{"Large", 2000, 200},
	}
	for _, tc := range cases {
		p := problem.Random(rand.New(rand.NewSource(42)), tc.side, tc.count)
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				n, err := flow.NewNetwork(p)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := n.Solve(context.Background()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkLevels isolates the BFS pass and its queue chunk size.
func BenchmarkLevels(b *testing.B) {
	p := problem.Random(rand.New(rand.NewSource(1)), 1000, 100)
	for _, chunk := range []int{1, 8, 256} {
		n, err := flow.NewNetwork(p, flow.WithChunkSize(chunk))
		if err != nil {
			b.Fatal(err)
		}
		b.Run("chunk="+strconv.Itoa(chunk), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = n.Levels()
			}
		})
	}
}
