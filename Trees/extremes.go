package Trees

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"
)

// pick the better of the slots a and b on axis q. want is -1 for the minimum, +1 for the maximum.
func (u *KDTree[K, V, S]) pick(a, b S, aAxis, bAxis, q, want int) (S, int) {
	if a == 0 {
		return b, bAxis
	} else if b == 0 {
		return a, aAxis
	} else if u.key(u.getD(a).Key, u.getD(b).Key, q)*want > 0 {
		return a, aAxis
	}
	return b, bAxis
}

// extreme finds the node with the minimum (want=-1) or maximum (want=+1) key on axis q in the subtree at curI,
// whose depth has axis axis. Returns the slot and the axis of its depth.
// Only one child is searched where the subtree is ordered on q, both children otherwise, so among nodes tied on q
// the one returned isn't necessarily the smallest by full key. Recursive.
func (u *KDTree[K, V, S]) extreme(curI S, axis, q, want int) (S, int) {
	if curI == 0 {
		return 0, 0
	}
	next, cur := u.nextAxis(axis), u.ifs[curI]
	near, far := cur.l, cur.r
	if want > 0 {
		near, far = far, near
	}
	best, bestAxis := u.extreme(near, next, q, want)
	if axis != q {
		o, oAxis := u.extreme(far, next, q, want)
		best, bestAxis = u.pick(best, o, bestAxis, oAxis, q, want)
	}
	return u.pick(best, curI, bestAxis, axis, q, want)
}

// FindMin returns an iterator on an element whose key is minimal on axis. axis is taken modulo the number of dimensions.
// Returns End() if the tree is empty.
func (u *KDTree[K, V, S]) FindMin(axis int) Iterator[K, V, S] {
	i, _ := u.extreme(u.root, 0, u.reduce(axis), -1)
	return u.at(i)
}

// FindMax returns an iterator on an element whose key is maximal on axis. axis is taken modulo the number of dimensions.
// Returns End() if the tree is empty.
func (u *KDTree[K, V, S]) FindMax(axis int) Iterator[K, V, S] {
	i, _ := u.extreme(u.root, 0, u.reduce(axis), 1)
	return u.at(i)
}

func (u *KDTree[K, V, S]) reduce(axis int) int {
	if axis %= u.dims; axis < 0 {
		axis += u.dims
	}
	return axis
}

// Axis names a fixed dimension at the type level, see MinOf and MaxOf.
type Axis interface {
	~struct{}
	Index() int
}

type (
	Dim0 struct{}
	Dim1 struct{}
	Dim2 struct{}
	Dim3 struct{}
)

func (Dim0) Index() int { return 0 }
func (Dim1) Index() int { return 1 }
func (Dim2) Index() int { return 2 }
func (Dim3) Index() int { return 3 }

func fixed[A Axis](dims int) int {
	var a A
	if q := a.Index(); q < dims {
		return q
	}
	panic(xerrors.Errorf("axis %d of %d dimensions: %w", a.Index(), dims, ErrAxis))
}

// MinOf is FindMin on the fixed axis A. It panics if A isn't below t.Dims().
func MinOf[A Axis, K, V any, S constraints.Unsigned](t *KDTree[K, V, S]) Iterator[K, V, S] {
	i, _ := t.extreme(t.root, 0, fixed[A](t.dims), -1)
	return t.at(i)
}

// MaxOf is FindMax on the fixed axis A. It panics if A isn't below t.Dims().
func MaxOf[A Axis, K, V any, S constraints.Unsigned](t *KDTree[K, V, S]) Iterator[K, V, S] {
	i, _ := t.extreme(t.root, 0, fixed[A](t.dims), 1)
	return t.at(i)
}
