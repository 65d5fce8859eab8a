// Package rope implements a segmented immutable-sharing rope: a persistent
// B-tree of byte-string segments supporting O(log n) concatenation,
// substring, insertion, erase, and replace, with copy-on-write subtree
// sharing between rope values.
package rope

import (
    "github.com/tawesoft/unitext/must"
)

// Rope is an immutable, persistently-shared sequence of bytes. The zero
// value is the empty rope. Ropes are cheap to copy (a Rope value is just a
// root pointer) and any number of Rope values may share subtrees; a
// mutating operation never modifies a shared subtree in place, it builds a
// new one, so existing Rope values are unaffected by operations on others.
type Rope struct {
    root *node
}

// Empty returns the empty rope.
func Empty() Rope { return Rope{} }

// New returns a rope containing the bytes of s.
func New(s string) Rope {
    return NewBytes([]byte(s))
}

// NewBytes returns a rope containing a copy of b.
func NewBytes(b []byte) Rope {
    if len(b) == 0 {
        return Rope{}
    }
    return Rope{root: buildBalanced(b)}
}

// buildBalanced builds a height-balanced tree bottom-up from b: chop it
// into leaves of at most MaxLeaf bytes, then group those into interior
// nodes of at most MaxChildren, repeating level by level until a single
// root remains.
func buildBalanced(b []byte) *node {
    var level []*node
    for len(b) > 0 {
        n := MaxLeaf
        if n > len(b) {
            n = len(b)
        }
        level = append(level, newOwnedLeafNode(b[:n]))
        b = b[n:]
    }
    if len(level) == 0 {
        return nil
    }
    for len(level) > 1 {
        var next []*node
        for i := 0; i < len(level); i += MaxChildren {
            end := i + MaxChildren
            if end > len(level) {
                end = len(level)
            }
            next = append(next, newInterior(level[i:end]))
        }
        level = next
    }
    return level[0]
}

// Size returns the number of bytes in the rope.
func (r Rope) Size() int { return r.root.size() }

// ByteAt returns the byte at offset i, which must be in [0, Size()).
func (r Rope) ByteAt(i int) byte {
    must.True(i >= 0 && i < r.Size(), "rope: ByteAt offset %d out of range [0, %d)", i, r.Size())
    l, o := findLeaf(r.root, i)
    return l.leaf.bytes[o]
}

// ForEachSegment calls f once for each contiguous owned-leaf byte slice in
// the rope, in order, without ever materializing the whole rope into a
// single buffer. It stops early if f returns false.
func (r Rope) ForEachSegment(f func([]byte) bool) {
    if r.root == nil {
        return
    }
    forEachSegment(r.root, f)
}

func forEachSegment(n *node, f func([]byte) bool) bool {
    if n.isLeaf() {
        return f(n.leaf.bytes)
    }
    for _, c := range n.children {
        if !forEachSegment(c, f) {
            return false
        }
    }
    return true
}

// Bytes materializes the rope's full byte content into a single slice.
func (r Rope) Bytes() []byte {
    out := make([]byte, 0, r.Size())
    r.ForEachSegment(func(b []byte) bool {
        out = append(out, b...)
        return true
    })
    return out
}

// String materializes the rope's full byte content as a string.
func (r Rope) String() string { return string(r.Bytes()) }

// EqualRoot reports whether r and other share the same root node pointer:
// a sufficient, but not necessary, test of equality that short-circuits
// without comparing any bytes.
func (r Rope) EqualRoot(other Rope) bool { return r.root == other.root }

// Concat returns a new rope containing r's bytes followed by other's.
func (r Rope) Concat(other Rope) Rope {
    return Rope{root: concatNodes(r.root, other.root)}
}

// Concat concatenates any number of ropes in order.
func Concat(ropes ...Rope) Rope {
    acc := Empty()
    for _, x := range ropes {
        acc = acc.Concat(x)
    }
    return acc
}

// Substr returns the rope covering byte range [lo, hi). The result shares
// structure with r wherever possible: interior subtrees entirely within
// [lo, hi) are reused unchanged, and at most two fresh reference leaves
// are created to trim the boundaries.
func (r Rope) Substr(lo, hi int) Rope {
    must.True(lo >= 0 && hi <= r.Size() && lo <= hi,
        "rope: invalid substr range [%d, %d) of size %d", lo, hi, r.Size())
    return Rope{root: substrNode(r.root, lo, hi)}
}

// Insert returns a new rope with s spliced in at byte offset.
func (r Rope) Insert(offset int, s string) Rope {
    must.True(offset >= 0 && offset <= r.Size(), "rope: invalid insert offset %d of size %d", offset, r.Size())
    if len(s) == 0 {
        return r
    }
    return Rope{root: insertNode(r.root, offset, New(s).root)}
}

// Erase returns a new rope with byte range [lo, hi) removed.
func (r Rope) Erase(lo, hi int) Rope {
    must.True(lo >= 0 && hi <= r.Size() && lo <= hi,
        "rope: invalid erase range [%d, %d) of size %d", lo, hi, r.Size())
    return Rope{root: eraseNode(r.root, lo, hi)}
}

// Replace returns a new rope with byte range [lo, hi) replaced by s.
func (r Rope) Replace(lo, hi int, s string) Rope {
    return r.Substr(0, lo).Concat(New(s)).Concat(r.Substr(hi, r.Size()))
}
