package grapheme_test

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/tawesoft/unitext/text/grapheme"
)

func TestIsBreakCRLF(t *testing.T) {
    s := "a\r\nb"
    assert.True(t, grapheme.IsBreak(s, 0))
    assert.True(t, grapheme.IsBreak(s, 1))  // before \r
    assert.False(t, grapheme.IsBreak(s, 2)) // between \r and \n: GB3
    assert.True(t, grapheme.IsBreak(s, 3))  // after \n
    assert.True(t, grapheme.IsBreak(s, 4))  // end
}

func TestIsBreakHangul(t *testing.T) {
    // L V T jamo sequence forms a single grapheme cluster (GB6-GB8)
    s := string([]rune{0x1100, 0x1161, 0x11A8})
    assert.True(t, grapheme.IsBreak(s, 0))
    assert.False(t, grapheme.IsBreak(s, 3)) // between L and V
    assert.False(t, grapheme.IsBreak(s, 6)) // between V and T
    assert.True(t, grapheme.IsBreak(s, 9))
}

func TestIsBreakRegionalIndicator(t *testing.T) {
    // two flags: US US. Each flag is a pair of Regional_Indicator code
    // points; a flag pair never breaks, but two flags in a row do
    // (GB12/GB13).
    us := "\U0001F1FA\U0001F1F8" // U, S
    s := us + us
    assert.True(t, grapheme.IsBreak(s, 0))
    assert.False(t, grapheme.IsBreak(s, 4)) // inside first flag, between U and S
    assert.True(t, grapheme.IsBreak(s, 8))  // between the two flags
    assert.False(t, grapheme.IsBreak(s, 12))
    assert.True(t, grapheme.IsBreak(s, 16))
}

func TestIsBreakZWJEmojiSequence(t *testing.T) {
    // GB11: ExtPict Extend* ZWJ x ExtPict does not break, joining the two
    // pictographs (and the ZWJ itself) into one extended grapheme cluster.
    e1 := "\U0001F600" // emoticon, ExtPict
    zwj := string(rune(0x200D))
    e2 := "\U0001F680" // transport symbol, ExtPict
    s := e1 + zwj + e2

    assert.True(t, grapheme.IsBreak(s, 0))
    assert.False(t, grapheme.IsBreak(s, len(e1)))          // before ZWJ: GB9
    assert.False(t, grapheme.IsBreak(s, len(e1)+len(zwj))) // ZWJ x ExtPict: GB11
    assert.True(t, grapheme.IsBreak(s, len(s)))

    // a ZWJ not followed by ExtPict still breaks after it (GB11 does not
    // apply, and nothing else keeps the following character attached).
    s2 := e1 + zwj + "a"
    assert.False(t, grapheme.IsBreak(s2, len(e1)))
    assert.True(t, grapheme.IsBreak(s2, len(e1)+len(zwj)))
}

func TestSplitAndCount(t *testing.T) {
    s := "A\r\nB" + "\U0001F1FA\U0001F1F8" + "\U0001F1FA\U0001F1F8" + "C"
    clusters := grapheme.Split(s)
    assert.Equal(t, []string{"A", "\r\n", "B", "\U0001F1FA\U0001F1F8", "\U0001F1FA\U0001F1F8", "C"}, clusters)
    assert.Equal(t, 6, grapheme.Count(s))
}

func TestIteratorForwardBackward(t *testing.T) {
    s := "e" + "̈" // e + combining diaeresis: one extended grapheme cluster
    s += "f"

    it := grapheme.NewIterator(s)
    g, ok := it.Next()
    assert.True(t, ok)
    assert.Equal(t, "ë", g)

    g, ok = it.Next()
    assert.True(t, ok)
    assert.Equal(t, "f", g)

    _, ok = it.Next()
    assert.False(t, ok)

    g, ok = it.Prev()
    assert.True(t, ok)
    assert.Equal(t, "f", g)

    g, ok = it.Prev()
    assert.True(t, ok)
    assert.Equal(t, "ë", g)

    _, ok = it.Prev()
    assert.False(t, ok)
}

func TestIteratorSeekTo(t *testing.T) {
    s := "ëf"
    it := grapheme.NewIterator(s)
    it.SeekTo(2) // lands inside the e+diaeresis cluster
    assert.Equal(t, 0, it.Pos())

    g, ok := it.Next()
    assert.True(t, ok)
    assert.Equal(t, "ë", g)
}

func TestNextPrevBreak(t *testing.T) {
    s := "ëf"
    assert.Equal(t, 3, grapheme.NextBreak(s, 0))
    assert.Equal(t, 4, grapheme.NextBreak(s, 3))
    assert.Equal(t, 4, grapheme.NextBreak(s, 4))

    assert.Equal(t, 0, grapheme.PrevBreak(s, 3))
    assert.Equal(t, 3, grapheme.PrevBreak(s, 4))
    assert.Equal(t, 0, grapheme.PrevBreak(s, 0))
}
