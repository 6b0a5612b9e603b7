package Trees

import (
	"fmt"

	Go_Utils "github.com/g-m-twostay/kdtree"
	"github.com/xlab/treeprint"
)

// Corrupt returns whether the tree has corrupt structures: a key on the wrong side of an ancestor on that ancestor's
// axis, a broken parent link, a node reachable twice, or a size that doesn't match the reachable nodes.
// This is to be distinguished from whether the tree is balanced or not.
// Time: O(n*D)
func (u *KDTree[K, V, S]) Corrupt() bool {
	type step struct {
		i    S
		left bool
	}
	seen := Go_Utils.New(len(u.ifs))
	path := make([]step, 0, 64)
	var n S
	var walk func(curI, parI S) bool
	walk = func(curI, parI S) bool {
		if curI == 0 {
			return true
		}
		if int(curI) >= len(u.ifs) || seen.Swap(int(curI)) || u.ifs[curI].p != parI {
			return false
		}
		n++
		// every ancestor must route k the way the path went.
		k := u.getD(curI).Key
		for j, st := range path {
			if u.goesLeft(k, u.getD(st.i).Key, j%u.dims) != st.left {
				return false
			}
		}
		path = append(path, step{curI, true})
		ok := walk(u.ifs[curI].l, curI)
		path[len(path)-1].left = false
		ok = ok && walk(u.ifs[curI].r, curI)
		path = path[:len(path)-1]
		return ok
	}
	return !walk(u.root, 0) || n != u.size
}

// Depth is the average depth of the leaves, the root being at depth 1. It is 0 for an empty tree.
func (u *KDTree[K, V, S]) Depth() float64 {
	var leaves, total int
	var walk func(curI S, d int)
	walk = func(curI S, d int) {
		cur := u.ifs[curI]
		if cur.l != 0 {
			walk(cur.l, d+1)
		}
		if cur.r != 0 {
			walk(cur.r, d+1)
		}
		if cur.l == 0 && cur.r == 0 {
			leaves++
			total += d
		}
	}
	if u.root == 0 {
		return 0
	}
	walk(u.root, 1)
	return float64(total) / float64(leaves)
}

// String draws the structure of the tree, the left child of a node listed before its right child.
func (u *KDTree[K, V, S]) String() string {
	if u.root == 0 {
		return treeprint.NewWithRoot("(empty)").String()
	}
	tr := treeprint.NewWithRoot(u.label(u.root, 0))
	var walk func(curI S, axis int, br treeprint.Tree)
	walk = func(curI S, axis int, br treeprint.Tree) {
		next := u.nextAxis(axis)
		for _, c := range [2]S{u.ifs[curI].l, u.ifs[curI].r} {
			if c == 0 {
				continue
			}
			side := "L"
			if c == u.ifs[curI].r {
				side = "R"
			}
			walk(c, next, br.AddBranch(side+" "+u.label(c, next)))
		}
	}
	walk(u.root, 0, tr)
	return tr.String()
}

func (u *KDTree[K, V, S]) label(i S, axis int) string {
	d := u.getD(i)
	return fmt.Sprintf("%v=%v @%d", d.Key, d.Value, axis)
}
