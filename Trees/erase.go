package Trees

import "golang.org/x/xerrors"

// eraseAt removes the entry held by slot i, whose depth has axis axis.
// A node with children takes over the entry of the node that is minimal on axis in its right subtree, which is then
// removed the same way. A node with only a left child first moves that subtree to the right: the minimum of it
// keeps every other key of it not less on axis, so equal keys stay on the right as find expects.
// Time: O(D*findMin)
func (u *KDTree[K, V, S]) eraseAt(i S, axis int) {
	for {
		cur := &u.ifs[i]
		if cur.l == 0 && cur.r == 0 {
			*u.child(cur.p, i) = 0
			u.release(i)
			return
		} else if cur.r == 0 {
			cur.l, cur.r = 0, cur.l
		}
		m, mAxis := u.extreme(cur.r, u.nextAxis(axis), axis, -1)
		*u.getD(i) = *u.getD(m)
		cur.gen++
		i, axis = m, mAxis
	}
}

// Erase the element with key k. Returns false if k isn't in the tree.
func (u *KDTree[K, V, S]) Erase(k K) bool {
	if i, axis := u.find(k); i != 0 {
		u.eraseAt(i, axis)
		return true
	}
	return false
}

// EraseAt erases the element it refers to and returns an iterator on the element that followed it, or End() if it
// was the last one. The successor is tracked by key, since erasing may move it to another node.
// it and every other iterator on a node touched by the erasure become stale.
func (u *KDTree[K, V, S]) EraseAt(it Iterator[K, V, S]) (Iterator[K, V, S], error) {
	if it.t != u {
		return it, ErrForeign
	} else if err := it.check(); err != nil {
		return it, xerrors.Errorf("erase: %w", err)
	}
	n := u.next(it.i)
	var succ K
	if n != 0 {
		succ = u.getD(n).Key
	}
	u.eraseAt(it.i, u.depthOf(it.i)%u.dims)
	if n == 0 {
		return u.End(), nil
	}
	return u.Find(succ), nil
}
