package comp_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/tawesoft/unitext/text/comp"
)

func TestComposeHangul(t *testing.T) {
    // U+1100 (L, choseong kiyeok) + U+1161 (V, jungseong a) -> U+AC00 (ga)
    r, ok := comp.ComposeHangul(0x1100, 0x1161)
    assert.True(t, ok)
    assert.Equal(t, rune(0xAC00), r)

    // U+AC00 (ga) + U+11A8 (T, jongseong kiyeok) -> U+AC01 (gag)
    r, ok = comp.ComposeHangul(0xAC00, 0x11A8)
    assert.True(t, ok)
    assert.Equal(t, rune(0xAC01), r)

    // a syllable that already has a trailing consonant cannot take another
    _, ok = comp.ComposeHangul(0xAC01, 0x11A8)
    assert.False(t, ok)

    // non-Hangul input
    _, ok = comp.ComposeHangul('a', 'b')
    assert.False(t, ok)
}

func TestDecomposeHangul(t *testing.T) {
    l, v, tj, ok := comp.DecomposeHangul(0xAC01)
    assert.True(t, ok)
    assert.Equal(t, rune(0x1100), l)
    assert.Equal(t, rune(0x1161), v)
    assert.Equal(t, rune(0x11A8), tj)

    // LV syllable with no trailing consonant: t is 0
    l, v, tj, ok = comp.DecomposeHangul(0xAC00)
    assert.True(t, ok)
    assert.Equal(t, rune(0x1100), l)
    assert.Equal(t, rune(0x1161), v)
    assert.Equal(t, rune(0), tj)

    _, _, _, ok = comp.DecomposeHangul('a')
    assert.False(t, ok)
}

func TestCompose(t *testing.T) {
    // Hangul jamo, routed through the algorithmic path
    r, ok := comp.Compose(0x1100, 0x1161)
    assert.True(t, ok)
    assert.Equal(t, rune(0xAC00), r)

    // a canonical pair from the general table: A + combining ring above -> A with ring above
    r, ok = comp.Compose('A', 0x030A)
    assert.True(t, ok)
    assert.Equal(t, rune(0x00C5), r)

    // no such composition
    _, ok = comp.Compose('a', 'z')
    assert.False(t, ok)
}

func TestIsHangulSyllable(t *testing.T) {
    assert.True(t, comp.IsHangulSyllable(0xAC00))
    assert.True(t, comp.IsHangulSyllable(0xD7A3))
    assert.False(t, comp.IsHangulSyllable(0xD7A4))
    assert.False(t, comp.IsHangulSyllable(0xABFF))
}
