package Trees

import "cmp"

// Key is a point with a fixed number of independently ordered dimensions.
// Dims must return the same value, at least 1, for every value of the type.
// CompareAt returns -1, 0 or +1 as u is less than, equal to or greater than o on the given axis.
type Key[K any] interface {
	Dims() int
	CompareAt(o K, axis int) int
}

// Entry is a key-value pair stored in the tree. Key must not be modified through the pointer handed out by iterators.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Pair is a 2-dimensional key with natural ordering on both axes.
type Pair[A, B cmp.Ordered] struct {
	X A
	Y B
}

func (Pair[A, B]) Dims() int { return 2 }

func (u Pair[A, B]) CompareAt(o Pair[A, B], axis int) int {
	if axis == 0 {
		return cmp.Compare(u.X, o.X)
	}
	return cmp.Compare(u.Y, o.Y)
}

// Triple is a 3-dimensional key with natural ordering on all axes.
type Triple[A, B, C cmp.Ordered] struct {
	X A
	Y B
	Z C
}

func (Triple[A, B, C]) Dims() int { return 3 }

func (u Triple[A, B, C]) CompareAt(o Triple[A, B, C], axis int) int {
	switch axis {
	case 0:
		return cmp.Compare(u.X, o.X)
	case 1:
		return cmp.Compare(u.Y, o.Y)
	default:
		return cmp.Compare(u.Z, o.Z)
	}
}

// order of a key type: its dimension count and the per-axis comparator.
type order[K any] struct {
	dims  int
	cmpAt func(a, b K, axis int) int
}

// full compares a and b lexicographically over all axes.
func (o order[K]) full(a, b K) int {
	for axis := range o.dims {
		if c := o.cmpAt(a, b, axis); c != 0 {
			return c
		}
	}
	return 0
}

// key compares a and b on axis, ties broken by the full tuple.
func (o order[K]) key(a, b K, axis int) int {
	if c := o.cmpAt(a, b, axis); c != 0 {
		return c
	}
	return o.full(a, b)
}

// goesLeft reports whether a key is routed to the left of a node holding n on axis. Equal values go right.
func (o order[K]) goesLeft(k, n K, axis int) bool {
	return o.cmpAt(k, n, axis) < 0
}

// nextAxis after axis.
func (o order[K]) nextAxis(axis int) int {
	if axis++; axis == o.dims {
		return 0
	}
	return axis
}

func methodOrder[K Key[K]]() order[K] {
	var z K
	return order[K]{z.Dims(), func(a, b K, axis int) int { return a.CompareAt(b, axis) }}
}
