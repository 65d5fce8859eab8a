package gtext_test

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/tawesoft/unitext/text/gtext"
    "github.com/tawesoft/unitext/text/rope"
)

func TestNewNormalizes(t *testing.T) {
    // e + combining diaeresis -> composed to e-with-diaeresis under FCC
    tx := gtext.New("e" + "̈")
    assert.Equal(t, "ë", tx.String())
}

func TestInsertCombiningMarkAtEnd(t *testing.T) {
    // spec.md section 8: inserting a combining diaeresis right after a
    // plain "e" must merge into a single precomposed grapheme.
    tx := gtext.New("e")
    tx2, lo, hi := tx.Insert(1, "̈", false)

    assert.Equal(t, "ë", tx2.String())
    assert.Equal(t, 0, lo) // the edit widened back to the start of the grapheme
    assert.Equal(t, tx2.Size(), hi)
    assert.Equal(t, 1, tx2.GraphemeCount())
}

func TestRepeatedInsertionAtEnd(t *testing.T) {
    // ë -> insert another combining diaeresis -> ë̈ (still one grapheme
    // cluster: a base letter followed by two combining marks)
    tx := gtext.New("ë")
    tx2, _, _ := tx.Insert(tx.Size(), "̈", false)

    assert.Equal(t, 1, tx2.GraphemeCount())
    // the new mark cannot itself compose further, so FCC leaves it
    // trailing the already-composed "ë" as a second combining mark
    assert.Equal(t, "ë"+"̈", tx2.String())
}

func TestHangulComposition(t *testing.T) {
    decomposed := string([]rune{0x1100, 0x1161, 0x11A8}) // L V T jamo
    tx := gtext.New(decomposed)
    assert.Equal(t, string(rune(0xAC01)), tx.String()) // composed syllable "gag"
    assert.Equal(t, 1, tx.GraphemeCount())
}

func TestCRLFAndRegionalIndicatorGraphemes(t *testing.T) {
    us := "\U0001F1FA\U0001F1F8" // regional indicator pair: US flag
    tx := gtext.New("A\r\nB" + us + us + "C")

    clusters := tx.Graphemes()
    assert.Equal(t, []string{"A", "\r\n", "B", us, us, "C"}, clusters)
    assert.Equal(t, 6, tx.GraphemeCount())
}

func TestEraseCombiningMark(t *testing.T) {
    // "k" followed by a combining tilde that has no composition partner:
    // erasing just the tilde leaves a plain "k" behind.
    tx := gtext.New("ab" + "k" + "̃" + "cd")
    tx2, lo, hi := tx.Erase(3, 5)

    assert.Equal(t, "abkcd", tx2.String())
    assert.Equal(t, 2, lo)
    assert.Equal(t, 4, hi)
}

func TestExtractAndInstall(t *testing.T) {
    tx := gtext.New("hello")
    r := tx.Extract()
    assert.Equal(t, "hello", r.String())

    tx2 := gtext.Install(rope.New("hello"))
    assert.Equal(t, "hello", tx2.String())
}

func TestIterator(t *testing.T) {
    tx := gtext.New("ab" + "ë")
    it := tx.Iterator()

    g, ok := it.Next()
    assert.True(t, ok)
    assert.Equal(t, "a", g)

    g, ok = it.Next()
    assert.True(t, ok)
    assert.Equal(t, "b", g)

    g, ok = it.Next()
    assert.True(t, ok)
    assert.Equal(t, "ë", g)

    _, ok = it.Next()
    assert.False(t, ok)
}
