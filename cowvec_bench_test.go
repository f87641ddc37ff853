package cowvec

import (
	"testing"
)

const benchLen = 100

func benchSlice() []int64 {
	s := make([]int64, benchLen)
	for i := range s {
		s[i] = 32
	}
	return s
}

func BenchmarkIterMutBorrowedScan(b *testing.B) {
	src := benchSlice()
	v := From(src)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sum := int64(0)
		it := v.IterMut()
		for it.Next() {
			sum += it.Elem().Get()
		}
		_ = sum
	}
}

func BenchmarkIterMutOwnedScan(b *testing.B) {
	src := benchSlice()
	v := From(src)
	v.EnsureOwned()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sum := int64(0)
		it := v.IterMut()
		for it.Next() {
			sum += it.Elem().Get()
		}
		_ = sum
	}
}

func BenchmarkForEachMut(b *testing.B) {
	src := benchSlice()
	v := From(src)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sum := int64(0)
		v.ForEachMut(func(e Elem[int64]) {
			sum += e.Get()
		})
		_ = sum
	}
}

func BenchmarkIterRead(b *testing.B) {
	src := benchSlice()
	v := From(src)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sum := int64(0)
		it := v.Iter()
		for it.Next() {
			sum += it.Value()
		}
		_ = sum
	}
}

// Baseline: what callers pay when they clone up front instead of lazily.
func BenchmarkEagerCloneScan(b *testing.B) {
	src := benchSlice()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sum := int64(0)
		dup := make([]int64, len(src))
		copy(dup, src)
		for _, x := range dup {
			sum += x
		}
		_ = sum
	}
}
