// Package grapheme segments text into extended grapheme clusters, per
// Unicode Standard Annex #29 (UAX #29), section 3 "Grapheme Cluster
// Boundaries".
package grapheme

import (
    "unicode/utf8"

    "github.com/tawesoft/unitext/iter"
    "github.com/tawesoft/unitext/text/gbp"
)

// breakBetween implements the ordinary (context-free) grapheme-cluster
// break rules as a matrix over the Grapheme_Cluster_Break property of the
// code point immediately before and immediately after a candidate
// boundary. The context-sensitive rules - GB11 (the ZWJ/ExtPict rule) and
// GB12/GB13 (Regional_Indicator pairing) - require scanning further back
// than a single property and are applied by [IsBreak] before falling back
// to this matrix.
func breakBetween(prev, cur gbp.Property) bool {
    switch {
    case prev == gbp.CR && cur == gbp.LF:
        return false // GB3
    case prev == gbp.CR || prev == gbp.LF || prev == gbp.Control:
        return true // GB4
    case cur == gbp.CR || cur == gbp.LF || cur == gbp.Control:
        return true // GB5
    case prev == gbp.L && (cur == gbp.L || cur == gbp.V || cur == gbp.LV || cur == gbp.LVT):
        return false // GB6
    case (prev == gbp.LV || prev == gbp.V) && (cur == gbp.V || cur == gbp.T):
        return false // GB7
    case (prev == gbp.LVT || prev == gbp.T) && cur == gbp.T:
        return false // GB8
    case cur == gbp.Extend || cur == gbp.ZWJ:
        return false // GB9
    case cur == gbp.SpacingMark:
        return false // GB9a
    case prev == gbp.Prepend:
        return false // GB9b
    default:
        return true // GB999
    }
}

// IsBreak reports whether byte offset i is a grapheme-cluster boundary in
// s. Offsets 0 and len(s) are always boundaries (GB1, GB2). i must fall on
// a UTF-8 rune boundary.
func IsBreak(s string, i int) bool {
    if i <= 0 || i >= len(s) {
        return true
    }

    prevR, _ := utf8.DecodeLastRuneInString(s[:i])
    curR, _ := utf8.DecodeRuneInString(s[i:])
    prev := gbp.Of(prevR)
    cur := gbp.Of(curR)

    if prev == gbp.RegionalIndicator && cur == gbp.RegionalIndicator {
        // GB12/GB13: do not break if the run of Regional_Indicators
        // ending immediately before i (inclusive of prev) has odd length
        // - that is, prev is the first half of an as-yet-unpaired RI.
        return countRegionalIndicatorsBackward(s, i)%2 == 0
    }

    if prev == gbp.ZWJ && cur == gbp.ExtPict {
        // GB11: ExtPict Extend* ZWJ x ExtPict
        if hasExtPictZWJPrefix(s, i) {
            return false
        }
    }

    return breakBetween(prev, cur)
}

func countRegionalIndicatorsBackward(s string, i int) int {
    count := 0
    j := i
    for j > 0 {
        r, sz := utf8.DecodeLastRuneInString(s[:j])
        if gbp.Of(r) != gbp.RegionalIndicator {
            break
        }
        count++
        j -= sz
    }
    return count
}

// hasExtPictZWJPrefix reports whether the code point run immediately
// before the ZWJ ending at byte offset zwjEnd matches ExtPict Extend*:
// scanning backward from the ZWJ, skip any Extend code points, then check
// that the next code point (if any) is ExtPict.
func hasExtPictZWJPrefix(s string, zwjEnd int) bool {
    _, zwjSz := utf8.DecodeLastRuneInString(s[:zwjEnd])
    j := zwjEnd - zwjSz
    for j > 0 {
        r, sz := utf8.DecodeLastRuneInString(s[:j])
        if gbp.Of(r) == gbp.Extend {
            j -= sz
            continue
        }
        return gbp.Of(r) == gbp.ExtPict
    }
    return false
}

// NextBreak returns the byte offset of the next grapheme-cluster boundary
// strictly after i, or len(s) if none remains.
func NextBreak(s string, i int) int {
    if i >= len(s) {
        return len(s)
    }
    _, sz := utf8.DecodeRuneInString(s[i:])
    j := i + sz
    for j < len(s) {
        if IsBreak(s, j) {
            return j
        }
        _, sz = utf8.DecodeRuneInString(s[j:])
        j += sz
    }
    return len(s)
}

// PrevBreak returns the byte offset of the nearest grapheme-cluster
// boundary strictly before i, or 0 if none remains.
func PrevBreak(s string, i int) int {
    if i <= 0 {
        return 0
    }
    j := i
    for j > 0 {
        _, sz := utf8.DecodeLastRuneInString(s[:j])
        j -= sz
        if IsBreak(s, j) {
            return j
        }
    }
    return 0
}

// Iterator is a bidirectional iterator over the grapheme clusters of a
// string, composed conceptually over the UTF-8 byte layer and the
// grapheme-break layer described in this package. Its position always
// sits on a grapheme boundary.
type Iterator struct {
    s   string
    pos int
}

// NewIterator returns an Iterator positioned at the start of s.
func NewIterator(s string) *Iterator {
    return &Iterator{s: s}
}

// Pos returns the iterator's current byte offset, which always falls on a
// grapheme-cluster boundary.
func (it *Iterator) Pos() int { return it.pos }

// SeekTo repositions the iterator to the grapheme boundary at or before
// byte offset i.
func (it *Iterator) SeekTo(i int) {
    if i < 0 {
        i = 0
    }
    if i > len(it.s) {
        i = len(it.s)
    }
    for i > 0 && i < len(it.s) && !utf8.RuneStart(it.s[i]) {
        i--
    }
    for i > 0 && !IsBreak(it.s, i) {
        _, sz := utf8.DecodeLastRuneInString(it.s[:i])
        i -= sz
    }
    it.pos = i
}

// Next returns the next grapheme cluster and advances the iterator,
// or ("", false) if the iterator is at the end of the string.
func (it *Iterator) Next() (string, bool) {
    if it.pos >= len(it.s) {
        return "", false
    }
    end := NextBreak(it.s, it.pos)
    g := it.s[it.pos:end]
    it.pos = end
    return g, true
}

// Prev moves the iterator back one grapheme cluster and returns it,
// or ("", false) if the iterator is at the start of the string.
func (it *Iterator) Prev() (string, bool) {
    if it.pos <= 0 {
        return "", false
    }
    start := PrevBreak(it.s, it.pos)
    g := it.s[start:it.pos]
    it.pos = start
    return g, true
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
    n := 0
    it := NewIterator(s)
    for {
        if _, ok := it.Next(); !ok {
            break
        }
        n++
    }
    return n
}

// Split returns the grapheme clusters of s as a slice of substrings.
func Split(s string) []string {
    return iter.ToSlice(Breaks(s))
}

// Breaks returns a forward-only [iter.It] over the grapheme clusters of s,
// for callers composing with the rest of the iter package (Filter, Map,
// Take, and so on) rather than stepping an Iterator by hand. Backward
// iteration is not expressible this way - iter.It is forward-only - which
// is why [Iterator] exists as a separate, bidirectional type.
func Breaks(s string) iter.It[string] {
    it := NewIterator(s)
    return iter.Func(it.Next)
}
