package Trees

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"
)

// info is the link record of a slot in the arena.
// The zero value is meaningful: ifs[0] is the nil slot, every index 0 means "no node".
type info[S constraints.Unsigned] struct {
	l, r, p S
	gen     uint32 // bumped whenever the slot stops holding the entry it held, so iterators can detect it.
}

// base is an arena of slots addressed by S. ds[i-1] is the entry of ifs[i].
type base[K, V any, S constraints.Unsigned] struct {
	root, free, size S // free is the beginning of the linked list that contains all the free indexes; info[S].l represents next.
	ifs              []info[S]
	ds               []Entry[K, V]
}

func (u *base[K, V, S]) getD(i S) *Entry[K, V] {
	return &u.ds[i-1]
}

// child returns the address of the link in p that holds i, or the root link if p is 0.
func (u *base[K, V, S]) child(p, i S) *S {
	if p == 0 {
		return &u.root
	} else if u.ifs[p].l == i {
		return &u.ifs[p].l
	}
	return &u.ifs[p].r
}

// alloc a slot holding d with parent p. Holes are filled first before appending to the underlying arrays.
func (u *base[K, V, S]) alloc(d Entry[K, V], p S) S {
	if i := u.popFree(); i != 0 {
		g := u.ifs[i].gen
		u.ifs[i] = info[S]{p: p, gen: g}
		u.ds[i-1] = d
		u.size++
		return i
	}
	i := S(len(u.ifs))
	if int(i) != len(u.ifs) || i == 0 {
		panic(xerrors.Errorf("arena holds %d slots: %w", len(u.ifs)-1, ErrCapacity))
	}
	u.ifs = append(u.ifs, info[S]{p: p})
	u.ds = append(u.ds, d)
	u.size++
	return i
}

// release slot i once. The caller is responsible for unlinking it from its parent first.
func (u *base[K, V, S]) release(i S) {
	var zero Entry[K, V]
	u.ds[i-1] = zero
	g := u.ifs[i].gen + 1
	u.ifs[i] = info[S]{gen: g}
	u.addFree(i)
	u.size--
}

// addFree index once.
func (u *base[K, V, S]) addFree(a S) {
	u.ifs[a].l = u.free
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[K, V, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// live reports whether i addresses an allocated slot whose generation is still gen.
func (u *base[K, V, S]) live(i S, gen uint32) bool {
	return i != 0 && int(i) < len(u.ifs) && u.ifs[i].gen == gen && (u.ifs[i].p != 0 || u.root == i)
}

// leftmost node of the subtree at i.
func (u *base[K, V, S]) leftmost(i S) S {
	for i != 0 && u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

// rightmost node of the subtree at i.
func (u *base[K, V, S]) rightmost(i S) S {
	for i != 0 && u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// next in-order node after i, 0 when i is the last one.
// Time: O(D); Space: O(1)
func (u *base[K, V, S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.leftmost(r)
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].l == i {
			return p
		}
	}
	return 0
}

// prev in-order node before i, 0 when i is the first one.
// Time: O(D); Space: O(1)
func (u *base[K, V, S]) prev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.rightmost(l)
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].r == i {
			return p
		}
	}
	return 0
}

// depthOf i, the root being 0.
func (u *base[K, V, S]) depthOf(i S) (d int) {
	for p := u.ifs[i].p; p != 0; p = u.ifs[p].p {
		d++
	}
	return
}

// preOrder walks the tree root first. st is used as the stack and returned for reuse.
func (u *base[K, V, S]) preOrder(f func(S) bool, st []S) []S {
	if u.root == 0 {
		return st
	}
	for st = append(st[:0], u.root); len(st) > 0; {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(curI) {
			break
		}
		if r := u.ifs[curI].r; r != 0 {
			st = append(st, r)
		}
		if l := u.ifs[curI].l; l != 0 {
			st = append(st, l)
		}
	}
	return st
}

// InOrder traversal of the tree using a stack. st is used as the stack and returned for reuse.
func (u *base[K, V, S]) InOrder(f func(*Entry[K, V]) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(u.getD(curI)) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// Size of the tree.
func (u *base[K, V, S]) Size() S {
	return u.size
}
