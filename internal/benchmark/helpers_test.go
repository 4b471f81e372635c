package benchmark

import (
	"strconv"
	"testing"
)

var sizes = []int{100, 1000, 100000}

func sizeLabel(size int) string {
	switch {
	case size >= 100000:
		return "100k"
	case size >= 1000:
		return "1k"
	default:
		return strconv.Itoa(size)
	}
}

// ascending returns 1..n.
func ascending(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i + 1
	}
	return data
}

func verifyLen[T any](b *testing.B, got []T, want int) {
	b.Helper()
	if len(got) != want {
		b.Fatalf("got %d results, want %d", len(got), want)
	}
}
