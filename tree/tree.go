// Package tree provides a balanced search tree (an AA tree) whose ordering is
// delegated to an external comparator. The comparator may be stateful: its
// answers are allowed to depend on context that changes between operations,
// as long as the relative order of the stored keys is re-established before
// the tree is searched again. This is what lets a plane sweep reuse one tree
// as its status structure while the sweep line moves.
//
// The comparator also accepts probes of a different type than the stored
// keys, so a tree of line segments can be searched with a point probe.
package tree

import (
	"cmp"

	"github.com/pkg/errors"
)

// ErrEmptyTree is returned when a result-bearing operation runs on an empty
// tree.
var ErrEmptyTree = errors.New("tree: empty tree")

// A Comparator orders stored keys against probes. Compare returns a negative
// value if the key orders before the probe, zero if they compare equal, and a
// positive value otherwise. The probe is either another key or a foreign type
// the comparator knows how to place among the keys.
type Comparator[K any] interface {
	Compare(key K, probe any) int
}

// ComparatorFunc adapts a plain function to the Comparator interface.
type ComparatorFunc[K any] func(key K, probe any) int

func (f ComparatorFunc[K]) Compare(key K, probe any) int { return f(key, probe) }

// Ordered is the default comparator for naturally ordered key types. Probes
// must be of the key type.
func Ordered[K cmp.Ordered]() Comparator[K] {
	return ComparatorFunc[K](func(key K, probe any) int {
		return cmp.Compare(key, probe.(K))
	})
}

type node[K, V any] struct {
	key         K
	value       V
	level       int
	left, right *node[K, V]
}

// Tree is a key-ordered container usable both as an ordered set and as an
// ordered map. The zero value is not usable; construct with New.
type Tree[K, V any] struct {
	root *node[K, V]
	cmp  Comparator[K]
	size int
}

func New[K, V any](cmp Comparator[K]) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp}
}

func (t *Tree[K, V]) IsEmpty() bool { return t.root == nil }
func (t *Tree[K, V]) Len() int      { return t.size }

// Insert adds an entry. Inserting a key that compares equal to an existing
// one is a no-op; the return value reports whether the key was already
// present.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	var present bool
	t.root, present = t.insert(t.root, key, value)
	if !present {
		t.size++
	}
	return present
}

// Update inserts the key if absent and rewrites its value through fn either
// way. fn receives the previous value and whether the key was present.
// Returns whether the key was already present.
func (t *Tree[K, V]) Update(key K, fn func(old V, present bool) V) bool {
	var present bool
	t.root, present = t.update(t.root, key, fn)
	if !present {
		t.size++
	}
	return present
}

// Delete removes the entry whose key compares equal to key, returning its
// value. If several keys compare equal, one of them is removed.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	var (
		value V
		ok    bool
	)
	t.root, value, ok = t.delete(t.root, key)
	if ok {
		t.size--
	}
	return value, ok
}

// PopMin removes and returns the smallest entry. It fails with ErrEmptyTree
// on an empty tree.
func (t *Tree[K, V]) PopMin() (K, V, error) {
	if t.root == nil {
		var k K
		var v V
		return k, v, ErrEmptyTree
	}
	var (
		key   K
		value V
	)
	t.root, key, value = t.popMin(t.root)
	t.size--
	return key, value, nil
}

// SmallerNeighbour returns the largest key that orders strictly before the
// probe.
func (t *Tree[K, V]) SmallerNeighbour(probe any) (K, bool) {
	var (
		best  K
		found bool
	)
	for n := t.root; n != nil; {
		if t.cmp.Compare(n.key, probe) < 0 {
			best, found = n.key, true
			n = n.right
		} else {
			n = n.left
		}
	}
	return best, found
}

// GreaterNeighbour returns the smallest key that orders strictly after the
// probe.
func (t *Tree[K, V]) GreaterNeighbour(probe any) (K, bool) {
	var (
		best  K
		found bool
	)
	for n := t.root; n != nil; {
		if t.cmp.Compare(n.key, probe) > 0 {
			best, found = n.key, true
			n = n.left
		} else {
			n = n.right
		}
	}
	return best, found
}

// Matching returns, in ascending order, every stored key that compares equal
// to the probe. Runs in O(log n + |output| log n).
func (t *Tree[K, V]) Matching(probe any) []K {
	var out []K
	t.matching(t.root, probe, &out)
	return out
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	out := make([]K, 0, t.size)
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)
	return out
}

func (t *Tree[K, V]) insert(n *node[K, V], key K, value V) (*node[K, V], bool) {
	if n == nil {
		return &node[K, V]{key: key, value: value, level: 1}, false
	}
	var present bool
	switch c := t.cmp.Compare(n.key, key); {
	case c > 0:
		n.left, present = t.insert(n.left, key, value)
	case c < 0:
		n.right, present = t.insert(n.right, key, value)
	default:
		present = true
	}
	if !present {
		n = split(skew(n))
	}
	return n, present
}

func (t *Tree[K, V]) update(n *node[K, V], key K, fn func(V, bool) V) (*node[K, V], bool) {
	if n == nil {
		var zero V
		return &node[K, V]{key: key, value: fn(zero, false), level: 1}, false
	}
	var present bool
	switch c := t.cmp.Compare(n.key, key); {
	case c > 0:
		n.left, present = t.update(n.left, key, fn)
	case c < 0:
		n.right, present = t.update(n.right, key, fn)
	default:
		n.value = fn(n.value, true)
		present = true
	}
	if !present {
		n = split(skew(n))
	}
	return n, present
}

func (t *Tree[K, V]) delete(n *node[K, V], probe any) (*node[K, V], V, bool) {
	var (
		value V
		ok    bool
	)
	if n == nil {
		return nil, value, false
	}
	switch c := t.cmp.Compare(n.key, probe); {
	case c > 0:
		n.left, value, ok = t.delete(n.left, probe)
	case c < 0:
		n.right, value, ok = t.delete(n.right, probe)
	default:
		value, ok = n.value, true
		if n.left == nil && n.right == nil {
			return nil, value, true
		}
		if n.left == nil {
			succ := n.right
			for succ.left != nil {
				succ = succ.left
			}
			n.key, n.value = succ.key, succ.value
			n.right, _, _ = t.delete(n.right, succ.key)
		} else {
			pred := n.left
			for pred.right != nil {
				pred = pred.right
			}
			n.key, n.value = pred.key, pred.value
			n.left, _, _ = t.delete(n.left, pred.key)
		}
	}
	return rebalance(n), value, ok
}

func (t *Tree[K, V]) popMin(n *node[K, V]) (*node[K, V], K, V) {
	if n.left == nil {
		return n.right, n.key, n.value
	}
	var (
		key   K
		value V
	)
	n.left, key, value = t.popMin(n.left)
	return rebalance(n), key, value
}

func (t *Tree[K, V]) matching(n *node[K, V], probe any, out *[]K) {
	if n == nil {
		return
	}
	switch c := t.cmp.Compare(n.key, probe); {
	case c > 0:
		t.matching(n.left, probe, out)
	case c < 0:
		t.matching(n.right, probe, out)
	default:
		t.matching(n.left, probe, out)
		*out = append(*out, n.key)
		t.matching(n.right, probe, out)
	}
}

func level[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.level
}

// skew fixes a left horizontal link by rotating right.
func skew[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil || n.left == nil || n.left.level != n.level {
		return n
	}
	l := n.left
	n.left = l.right
	l.right = n
	return l
}

// split fixes two consecutive right horizontal links by rotating left and
// promoting the middle node.
func split[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil || n.right == nil || n.right.right == nil || n.right.right.level != n.level {
		return n
	}
	r := n.right
	n.right = r.left
	r.left = n
	r.level++
	return r
}

// rebalance restores the AA invariants on the way back up from a deletion.
func rebalance[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	want := min(level(n.left), level(n.right)) + 1
	if want < n.level {
		n.level = want
		if n.right != nil && want < n.right.level {
			n.right.level = want
		}
	}
	n = skew(n)
	if n.right != nil {
		n.right = skew(n.right)
		if n.right.right != nil {
			n.right.right = skew(n.right.right)
		}
	}
	n = split(n)
	if n.right != nil {
		n.right = split(n.right)
	}
	return n
}
