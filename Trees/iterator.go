package Trees

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"
)

// Iterator is a bidirectional cursor over the in-order sequence of a KDTree. The sequence follows the
// structure of the tree, it isn't sorted on any single axis.
// The zero value isn't usable; iterators are produced by the tree. An iterator stays usable as long as
// the node it refers to holds the same entry; after that every method reports ErrStale.
type Iterator[K, V any, S constraints.Unsigned] struct {
	t   *KDTree[K, V, S]
	i   S // 0 is off-end
	gen uint32
}

// check that the iterator can be dereferenced.
func (u Iterator[K, V, S]) check() error {
	if u.i == 0 {
		return ErrOffEnd
	} else if !u.t.live(u.i, u.gen) {
		return xerrors.Errorf("slot %d: %w", u.i, ErrStale)
	}
	return nil
}

// Valid reports whether the iterator refers to a live element.
func (u Iterator[K, V, S]) Valid() bool {
	return u.check() == nil
}

// Equal reports whether both iterators refer to the same node of the same tree. Two off-end iterators of a tree
// are equal.
func (u Iterator[K, V, S]) Equal(o Iterator[K, V, S]) bool {
	return u.t == o.t && u.i == o.i
}

// Entry the iterator refers to. The value may be modified through it, the key mustn't.
func (u Iterator[K, V, S]) Entry() (*Entry[K, V], error) {
	if err := u.check(); err != nil {
		return nil, err
	}
	return u.t.getD(u.i), nil
}

// Key of the element. It panics if the iterator can't be dereferenced.
func (u Iterator[K, V, S]) Key() K {
	d, err := u.Entry()
	if err != nil {
		panic(err)
	}
	return d.Key
}

// Value of the element. It panics if the iterator can't be dereferenced.
func (u Iterator[K, V, S]) Value() *V {
	d, err := u.Entry()
	if err != nil {
		panic(err)
	}
	return &d.Value
}

// Next moves to the in-order successor, or off-end after the last element. Advancing an off-end iterator
// returns ErrOffEnd and leaves it unchanged.
// Time: O(D); Space: O(1)
func (u *Iterator[K, V, S]) Next() error {
	if err := u.check(); err != nil {
		return err
	}
	u.moveTo(u.t.next(u.i))
	return nil
}

// Prev moves to the in-order predecessor. From off-end it moves to the last element. Moving before the first
// element returns ErrBeforeBegin and leaves the iterator unchanged.
// Time: O(D); Space: O(1)
func (u *Iterator[K, V, S]) Prev() error {
	if u.i == 0 {
		if u.t.root == 0 {
			return ErrBeforeBegin
		}
		u.moveTo(u.t.rightmost(u.t.root))
		return nil
	}
	if err := u.check(); err != nil {
		return err
	}
	p := u.t.prev(u.i)
	if p == 0 {
		return ErrBeforeBegin
	}
	u.moveTo(p)
	return nil
}

func (u *Iterator[K, V, S]) moveTo(i S) {
	*u = u.t.at(i)
}
