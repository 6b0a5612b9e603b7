package Trees

import (
	"testing"
)

var (
	bAddN uint32 = 1 << 18
	bQryN uint32 = bAddN / 2
)

func benchEntries() []Entry[pt3, int] {
	es := make([]Entry[pt3, int], bAddN)
	for i := range es {
		es[i] = Entry[pt3, int]{pt3{rg.Int(), rg.Int(), rg.Int()}, i}
	}
	return es
}

func BenchmarkInsert0(b *testing.B) {
	es := benchEntries()
	b.ResetTimer()
	for range b.N {
		tree := New[pt3, int](uint32(0))
		for _, e := range es {
			tree.Insert(e.Key, e.Value)
		}
	}
}

func BenchmarkInsert1(b *testing.B) {
	es := benchEntries()
	b.ResetTimer()
	for range b.N {
		tree := New[pt3, int](bAddN)
		for _, e := range es {
			tree.Insert(e.Key, e.Value)
		}
	}
}

func BenchmarkFrom(b *testing.B) {
	es := benchEntries()
	b.ResetTimer()
	for range b.N {
		From[pt3, int, uint32](es)
	}
}

func BenchmarkErase(b *testing.B) {
	es := benchEntries()
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := From[pt3, int, uint32](es)
		b.StartTimer()
		for _, e := range es {
			tree.Erase(e.Key)
		}
	}
}

var sideEff bool

func BenchmarkFind(b *testing.B) {
	es := benchEntries()
	tree := From[pt3, int, uint32](es)
	b.ResetTimer()
	for range b.N {
		for _, e := range es[:bQryN] {
			sideEff = tree.Has(e.Key)
		}
		for range bAddN - bQryN {
			sideEff = tree.Has(pt3{rg.Int(), rg.Int(), rg.Int()})
		}
	}
}

func BenchmarkFindMin(b *testing.B) {
	tree := From[pt3, int, uint32](benchEntries())
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.FindMin(i).Valid()
	}
}
