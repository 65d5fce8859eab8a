// Package gtext presents a rope.Rope as a grapheme-cluster rope: a byte
// sequence guaranteed to be valid UTF-8 and FCC-normalized, whose edits
// re-normalize only a bounded neighborhood around the edit rather than the
// whole text. This is the facade described in spec.md section 4.5.
package gtext

import (
    "github.com/tawesoft/unitext/iter"
    "github.com/tawesoft/unitext/must"
    "github.com/tawesoft/unitext/text/grapheme"
    "github.com/tawesoft/unitext/text/normalize"
    "github.com/tawesoft/unitext/text/rope"
)

// Text is a rope of bytes that is always valid UTF-8 and FCC-normalized.
type Text struct {
    r rope.Rope
}

// New returns a Text holding the FCC normalization of s.
func New(s string) Text {
    return Text{r: rope.New(normalize.String(normalize.FCC, s))}
}

// Install wraps a rope.Rope as a Text without normalizing it. r's bytes
// must already be valid UTF-8 and FCC-normalized; this is a precondition
// the caller attests to, not one this function checks, mirroring the
// unencoded_rope -> rope pattern in the Boost.Text source this library's
// facade was ported from.
func Install(r rope.Rope) Text {
    return Text{r: r}
}

// Extract returns the underlying byte rope, handing the caller the raw
// bytes without copying.
func (t Text) Extract() rope.Rope { return t.r }

// Size returns the number of bytes in the text.
func (t Text) Size() int { return t.r.Size() }

// String returns the text's full UTF-8 content.
func (t Text) String() string { return t.r.String() }

// ForEachSegment visits each contiguous owned byte segment of the
// underlying rope in order; see rope.Rope.ForEachSegment.
func (t Text) ForEachSegment(f func([]byte) bool) { t.r.ForEachSegment(f) }

// GraphemeCount returns the number of grapheme clusters in the text.
func (t Text) GraphemeCount() int { return grapheme.Count(t.r.String()) }

// Graphemes returns the text's grapheme clusters as a slice of strings.
func (t Text) Graphemes() []string { return grapheme.Split(t.r.String()) }

// CodePoints returns the text's content as a slice of code points.
func (t Text) CodePoints() []rune { return iter.ToSlice(iter.FromString(t.r.String())) }

// Iterator returns a bidirectional grapheme-cluster iterator positioned at
// the start of the text: the outer layer of the three-layer composition
// (UTF-8 bytes -> code points -> graphemes) described in spec.md section
// 4.5.
func (t Text) Iterator() *grapheme.Iterator {
    return grapheme.NewIterator(t.r.String())
}

// Replace implements the three-phase algorithm of spec.md section 4.5:
// it expands [from, to) outward, and shrinks insertion inward, to the
// nearest FCC-stable code points; builds the renormalized replacement
// bytes, copying insertion's stable middle verbatim only if
// insertionIsNormalized attests that it already is FCC-normalized; and
// splices the result into the rope. It returns the updated Text and the
// half-open byte range of the replacement in the post-mutation text,
// which may be wider than [from, to) if the edit merged into neighboring
// graphemes.
func (t Text) Replace(from, to int, insertion string, insertionIsNormalized bool) (Text, int, int) {
    s := t.r.String()
    must.True(from >= 0 && to >= from && to <= len(s),
        "gtext: invalid replace range [%d, %d) of size %d", from, to, len(s))

    lo := normalize.LastStableCP(normalize.FCC, s[:from])
    hi := to + normalize.FirstStableCP(normalize.FCC, s[to:])

    insPrefixEnd := normalize.FirstStableCP(normalize.FCC, insertion)
    insSuffixStart := normalize.LastStableCP(normalize.FCC, insertion)
    if insSuffixStart < insPrefixEnd {
        // zero or one stable code point in insertion: none of it is safe
        // to treat as a verbatim middle, so all of it joins the window.
        insPrefixEnd = len(insertion)
        insSuffixStart = len(insertion)
    }
    insPrefix := insertion[:insPrefixEnd]
    insMiddle := insertion[insPrefixEnd:insSuffixStart]
    insSuffix := insertion[insSuffixStart:]

    headNorm := normalize.String(normalize.FCC, s[lo:from]+insPrefix)
    var middleFinal string
    if insertionIsNormalized {
        middleFinal = insMiddle
    } else {
        middleFinal = normalize.String(normalize.FCC, insMiddle)
    }
    tailNorm := normalize.String(normalize.FCC, insSuffix+s[to:hi])

    newBytes := headNorm + middleFinal + tailNorm
    newRope := t.r.Replace(lo, hi, newBytes)
    return Text{r: newRope}, lo, lo + len(newBytes)
}

// Insert is Replace with an empty erased range.
func (t Text) Insert(at int, insertion string, insertionIsNormalized bool) (Text, int, int) {
    return t.Replace(at, at, insertion, insertionIsNormalized)
}

// Erase is Replace with an empty insertion.
func (t Text) Erase(from, to int) (Text, int, int) {
    return t.Replace(from, to, "", true)
}
