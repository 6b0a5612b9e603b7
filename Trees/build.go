package Trees

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// From builds a tree from es, which may be in any order and is left untouched. When a key is listed more than once
// the last listed value is kept. The median on the current axis is placed at each level, so the tree is balanced
// unless many keys share values on an axis.
// Time: O(K*n*log n) on average.
func From[K Key[K], V any, S constraints.Unsigned](es []Entry[K, V]) *KDTree[K, V, S] {
	return build[K, V, S](methodOrder[K](), es)
}

// FromFunc is From for keys ordered by cmpAt, see NewFunc.
func FromFunc[K, V any, S constraints.Unsigned](dims int, cmpAt func(a, b K, axis int) int, es []Entry[K, V]) *KDTree[K, V, S] {
	return build[K, V, S](order[K]{dims, cmpAt}, es)
}

func build[K, V any, S constraints.Unsigned](o order[K], es []Entry[K, V]) *KDTree[K, V, S] {
	u := newTree[K, V, S](o, 0)
	s := u.unique(es)
	u.ifs = make([]info[S], 1, len(s)+1)
	u.ds = make([]Entry[K, V], 0, len(s))
	u.place(s, 0, 0, false)
	return u
}

// unique returns the entries of es with distinct keys, the later ones replacing the earlier ones.
func (u *KDTree[K, V, S]) unique(es []Entry[K, V]) []Entry[K, V] {
	bt := btree.NewG(32, func(a, b Entry[K, V]) bool {
		return u.full(a.Key, b.Key) < 0
	})
	for _, e := range es {
		bt.ReplaceOrInsert(e)
	}
	s := make([]Entry[K, V], 0, bt.Len())
	bt.Ascend(func(e Entry[K, V]) bool {
		s = append(s, e)
		return true
	})
	return s
}

// place the entries of s in a new subtree under parI. s is reordered. Recursive.
func (u *KDTree[K, V, S]) place(s []Entry[K, V], axis int, parI S, left bool) {
	if len(s) == 0 {
		return
	}
	last := len(s) - 1
	selectNth(s, last/2, func(a, b Entry[K, V]) int {
		return u.cmpAt(a.Key, b.Key, axis)
	})
	// median to the end, then keys strictly less on axis to the front.
	s[last/2], s[last] = s[last], s[last/2]
	lt := 0
	for j := range s[:last] {
		if u.goesLeft(s[j].Key, s[last].Key, axis) {
			s[lt], s[j] = s[j], s[lt]
			lt++
		}
	}
	s[lt], s[last] = s[last], s[lt]

	i := u.alloc(s[lt], parI)
	if parI == 0 {
		u.root = i
	} else if left {
		u.ifs[parI].l = i
	} else {
		u.ifs[parI].r = i
	}
	next := u.nextAxis(axis)
	u.place(s[:lt], next, i, true)
	u.place(s[lt+1:], next, i, false)
}

// selectNth reorders s so that s[n] is the element a sort by cmp would put there, nothing before it greater and
// nothing after it less.
// Time: O(len(s)) on average.
func selectNth[T any](s []T, n int, cmp func(a, b T) int) {
	for lo, hi := 0, len(s)-1; lo < hi; {
		p := s[medianOf3(s, lo, lo+(hi-lo)>>1, hi, cmp)]
		// s[lo:lt] < p, s[lt:i] == p, s[gt+1:hi+1] > p
		lt, i, gt := lo, lo, hi
		for i <= gt {
			if c := cmp(s[i], p); c < 0 {
				s[lt], s[i] = s[i], s[lt]
				lt++
				i++
			} else if c > 0 {
				s[i], s[gt] = s[gt], s[i]
				gt--
			} else {
				i++
			}
		}
		if n < lt {
			hi = lt - 1
		} else if n > gt {
			lo = gt + 1
		} else {
			return
		}
	}
}

func medianOf3[T any](s []T, a, b, c int, cmp func(a, b T) int) int {
	if cmp(s[a], s[b]) > 0 {
		a, b = b, a
	}
	if cmp(s[b], s[c]) <= 0 {
		return b
	} else if cmp(s[a], s[c]) > 0 {
		return a
	}
	return c
}
