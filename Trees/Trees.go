package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"
)

// KDTree is a k-d tree mapping keys of K dimensions to values. At depth d the tree is ordered on
// axis d mod K: keys less than the node's on that axis are in the left subtree, the rest are in the
// right subtree. The tree is never rebalanced, so D, the depth, is O(log n) only when the keys
// arrive in a random order or the tree was built by From.
// S is the type of the slot indexes; it bounds the number of nodes the tree can ever hold at once.
// A KDTree isn't safe for concurrent use.
type KDTree[K, V any, S constraints.Unsigned] struct {
	base[K, V, S]
	order[K]
}

// New returns an empty tree for keys that describe their own ordering.
func New[K Key[K], V any, S constraints.Unsigned](hint S) *KDTree[K, V, S] {
	return newTree[K, V, S](methodOrder[K](), hint)
}

// NewFunc returns an empty tree of dims dimensions ordered by cmpAt, which compares a and b on a single axis.
// It panics if dims < 1.
func NewFunc[K, V any, S constraints.Unsigned](dims int, cmpAt func(a, b K, axis int) int, hint S) *KDTree[K, V, S] {
	return newTree[K, V, S](order[K]{dims, cmpAt}, hint)
}

func newTree[K, V any, S constraints.Unsigned](o order[K], hint S) *KDTree[K, V, S] {
	if o.dims < 1 {
		panic(xerrors.Errorf("got %d dimensions: %w", o.dims, ErrZeroDims))
	}
	return &KDTree[K, V, S]{base[K, V, S]{ifs: make([]info[S], 1, int(hint)+1), ds: make([]Entry[K, V], 0, hint)}, o}
}

// Dims of the keys.
func (u *KDTree[K, V, S]) Dims() int {
	return u.dims
}

// find the slot holding k and the axis of its depth. Returns 0 if k isn't in the tree.
// Time: O(K*D); Space: O(1)
func (u *KDTree[K, V, S]) find(k K) (S, int) {
	axis := 0
	for curI := u.root; curI != 0; axis = u.nextAxis(axis) {
		cur := u.getD(curI)
		if u.full(k, cur.Key) == 0 {
			return curI, axis
		} else if u.goesLeft(k, cur.Key, axis) {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return 0, 0
}

// Find the element with key k. Returns End() if it isn't found.
func (u *KDTree[K, V, S]) Find(k K) Iterator[K, V, S] {
	i, _ := u.find(k)
	return u.at(i)
}

// Get the pointer to the value stored under k.
func (u *KDTree[K, V, S]) Get(k K) (*V, bool) {
	if i, _ := u.find(k); i != 0 {
		return &u.getD(i).Value, true
	}
	return nil, false
}

// Has key k.
func (u *KDTree[K, V, S]) Has(k K) bool {
	i, _ := u.find(k)
	return i != 0
}

// Insert v under k. Returns true if a node was created, false if k was already present, in which case only its value
// is replaced.
// Time: O(K*D); Space: O(1)
func (u *KDTree[K, V, S]) Insert(k K, v V) bool {
	_, created := u.insert(k, v)
	return created
}

func (u *KDTree[K, V, S]) insert(k K, v V) (S, bool) {
	var parI S
	left, axis := false, 0
	for curI := u.root; curI != 0; axis = u.nextAxis(axis) {
		parI = curI
		if cur := u.getD(curI); u.full(k, cur.Key) == 0 {
			cur.Value = v
			return curI, false
		} else if left = u.goesLeft(k, cur.Key, axis); left {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	i := u.alloc(Entry[K, V]{k, v}, parI)
	if parI == 0 {
		u.root = i
	} else if left {
		u.ifs[parI].l = i
	} else {
		u.ifs[parI].r = i
	}
	return i, true
}

// Clear the tree. Every node is released exactly once, and every iterator of the tree becomes stale.
// Time: O(n)
func (u *KDTree[K, V, S]) Clear() {
	var st []S
	if u.root != 0 {
		st = append(st, u.root)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if cur := u.ifs[curI]; cur.l != 0 && cur.r != 0 {
			st = append(st, cur.l, cur.r)
		} else if cur.l|cur.r != 0 {
			st = append(st, cur.l|cur.r)
		}
		u.release(curI)
	}
	u.root = 0
}

// Clone returns a deep copy of the tree. Nodes are re-inserted in the pre-order of u, so the copy has the same shape.
// Time: O(K*n*D)
func (u *KDTree[K, V, S]) Clone() *KDTree[K, V, S] {
	c := newTree[K, V, S](u.order, u.size)
	c.copyFrom(u)
	return c
}

// Assign replaces the content of u with a deep copy of src.
func (u *KDTree[K, V, S]) Assign(src *KDTree[K, V, S]) {
	if u == src {
		return
	}
	u.Clear()
	u.order = src.order
	u.copyFrom(src)
}

func (u *KDTree[K, V, S]) copyFrom(src *KDTree[K, V, S]) {
	src.preOrder(func(i S) bool {
		d := src.getD(i)
		u.insert(d.Key, d.Value)
		return true
	}, make([]S, 0, 64))
}

// Begin returns an iterator on the first element of the in-order sequence, or End() if the tree is empty.
func (u *KDTree[K, V, S]) Begin() Iterator[K, V, S] {
	return u.at(u.leftmost(u.root))
}

// End returns the off-end iterator.
func (u *KDTree[K, V, S]) End() Iterator[K, V, S] {
	return Iterator[K, V, S]{u, 0, 0}
}

// All yields the entries in order. The tree mustn't be modified during the iteration.
func (u *KDTree[K, V, S]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		u.InOrder(func(d *Entry[K, V]) bool {
			return yield(d.Key, d.Value)
		}, nil)
	}
}

func (u *KDTree[K, V, S]) at(i S) Iterator[K, V, S] {
	if i == 0 {
		return u.End()
	}
	return Iterator[K, V, S]{u, i, u.ifs[i].gen}
}
