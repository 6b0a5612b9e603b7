package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/kdtree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/stretchr/testify/require"
)

// Exact-key lookups of 2-dimensional keys. The ordered containers compare keys lexicographically, the hash maps get
// the key packed into a uint64. None of them answers per-axis minimum queries, which is what the k-d tree is for.

type pt = Trees.Pair[int32, int32]

const (
	elementNum = 1 << 16
	keyRange   = 1 << 12
)

var rg = rand.New(rand.NewSource(0))
var sideEff bool

func pack(k pt) uint64 {
	return uint64(uint32(k.X))<<32 | uint64(uint32(k.Y))
}

func less(a, b pt) bool {
	return a.X < b.X || (a.X == b.X && a.Y < b.Y)
}

type llrbItem pt

func (u llrbItem) Less(than llrb.Item) bool {
	return less(pt(u), pt(than.(llrbItem)))
}

func keys() []pt {
	ks := make([]pt, elementNum)
	for i := range ks {
		ks[i] = pt{X: rg.Int31n(keyRange), Y: rg.Int31n(keyRange)}
	}
	return ks
}

// All containers agree on which keys are present.
func TestContainersAgree(t *testing.T) {
	ks := keys()
	tree := Trees.New[pt, int](uint32(len(ks)))
	bt := btree.NewG(32, less)
	lr := llrb.New()
	for i, k := range ks {
		tree.Insert(k, i)
		bt.ReplaceOrInsert(k)
		lr.ReplaceOrInsert(llrbItem(k))
	}
	require.EqualValues(t, bt.Len(), tree.Size())
	require.Equal(t, lr.Len(), bt.Len())
	for range 1000 {
		k := pt{X: rg.Int31n(keyRange), Y: rg.Int31n(keyRange)}
		require.Equal(t, bt.Has(k), tree.Has(k), "key %v", k)
		require.Equal(t, lr.Has(llrbItem(k)), tree.Has(k), "key %v", k)
	}
}

func BenchmarkKDTree_Find(b *testing.B) {
	ks := keys()
	tree := Trees.New[pt, int](uint32(len(ks)))
	for i, k := range ks {
		tree.Insert(k, i)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Has(ks[i%elementNum])
	}
}

func BenchmarkKDTree_FromFind(b *testing.B) {
	ks := keys()
	es := make([]Trees.Entry[pt, int], len(ks))
	for i, k := range ks {
		es[i] = Trees.Entry[pt, int]{Key: k, Value: i}
	}
	tree := Trees.From[pt, int, uint32](es)
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Has(ks[i%elementNum])
	}
}

func BenchmarkBTree_Find(b *testing.B) {
	ks := keys()
	bt := btree.NewG(32, less)
	for _, k := range ks {
		bt.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = bt.Has(ks[i%elementNum])
	}
}

func BenchmarkLLRB_Find(b *testing.B) {
	ks := keys()
	lr := llrb.New()
	for _, k := range ks {
		lr.ReplaceOrInsert(llrbItem(k))
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = lr.Has(llrbItem(ks[i%elementNum]))
	}
}

func BenchmarkTreeMap_Find(b *testing.B) {
	ks := keys()
	m := treemap.NewWith(utils.Comparator(func(a, b interface{}) int {
		if x, y := a.(pt), b.(pt); less(x, y) {
			return -1
		} else if less(y, x) {
			return 1
		}
		return 0
	}))
	for i, k := range ks {
		m.Put(k, i)
	}
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = m.Get(ks[i%elementNum])
	}
}

func BenchmarkHashMap_Find(b *testing.B) {
	ks := keys()
	m := hashmap.New[uint64, int]()
	for i, k := range ks {
		m.Set(pack(k), i)
	}
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = m.Get(pack(ks[i%elementNum]))
	}
}

func BenchmarkHaxMap_Find(b *testing.B) {
	ks := keys()
	m := haxmap.New[uint64, int]()
	for i, k := range ks {
		m.Set(pack(k), i)
	}
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = m.Get(pack(ks[i%elementNum]))
	}
}

func BenchmarkXSyncMap_Find(b *testing.B) {
	ks := keys()
	m := xsync.NewMapOfWithHasher[uint64, int](func(v uint64, seed uint64) uint64 {
		return v ^ seed
	})
	for i, k := range ks {
		m.Store(pack(k), i)
	}
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = m.Load(pack(ks[i%elementNum]))
	}
}
