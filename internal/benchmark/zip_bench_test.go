package benchmark

import (
	"testing"

	"github.com/vnykmshr/golazy/pkg/sequence/chain"
	"github.com/vnykmshr/golazy/pkg/sequence/lazy"
)

func product(p lazy.Pair[int, int]) int { return p.First * p.Second }

// BenchmarkZip multiplies a sequence with its first half position by position.
func BenchmarkZip(b *testing.B) {
	for _, size := range sizes {
		a := ascending(size)
		half := a[:size/2]

		b.Run("procedural/"+sizeLabel(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				out := make([]int, 0, len(half))
				for j := range half {
					out = append(out, a[j]*half[j])
				}
				verifyLen(b, out, size/2)
			}
		})

		b.Run("adaptors/"+sizeLabel(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				out, err := lazy.Collect(lazy.Map(lazy.Zip(lazy.List[int](a), lazy.List[int](half)), product))
				if err != nil {
					b.Fatal(err)
				}
				verifyLen(b, out, size/2)
			}
		})

		b.Run("chain/"+sizeLabel(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				pairs := chain.Zip[int, int](chain.From(lazy.List[int](a)), lazy.List[int](half))
				out, err := chain.Map(pairs, product).Collect()
				if err != nil {
					b.Fatal(err)
				}
				verifyLen(b, out, size/2)
			}
		})
	}
}

// BenchmarkCombine measures the cross product against a recorded Cycle.
func BenchmarkCombine(b *testing.B) {
	a := ascending(100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		n := 0
		err := lazy.ForEach(lazy.Combine(lazy.List[int](a), lazy.List[int](a)), func(lazy.Pair[int, int]) {
			n++
		})
		if err != nil {
			b.Fatal(err)
		}
		if n != len(a)*len(a) {
			b.Fatalf("got %d pairs", n)
		}
	}
}
