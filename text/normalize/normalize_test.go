package normalize_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "golang.org/x/text/transform"

    "github.com/tawesoft/unitext/text/normalize"
)

func TestStringBasic(t *testing.T) {
    eDiaeresis := "e" + "̈" // e + combining diaeresis, ccc 230

    assert.Equal(t, eDiaeresis, normalize.String(normalize.NFD, "ë"))
    assert.Equal(t, "ë", normalize.String(normalize.NFC, eDiaeresis))
    assert.Equal(t, "ascii only", normalize.String(normalize.NFD, "ascii only"))
}

func TestStringHangul(t *testing.T) {
    composed := string(rune(0xAC01)) // gag
    decomposed := string([]rune{0x1100, 0x1161, 0x11A8})

    assert.Equal(t, decomposed, normalize.String(normalize.NFD, composed))
    assert.Equal(t, composed, normalize.String(normalize.NFC, decomposed))
}

// TestFCCForbidsDiscontiguousComposition reproduces the textbook
// discontiguous-composition example: a base letter, a combining ring
// below (ccc 220), then a combining ring above (ccc 230). The ring above
// is not blocked from composing with the base under ordinary canonical
// ordering rules (220 < 230), so NFC composes it into "å" and leaves the
// ring below in place - even though, textually, the ring below sits
// between the base and the mark it composed with. FCC's stricter
// adjacency rule forbids exactly this: it refuses to compose across the
// intervening ring below.
func TestFCCForbidsDiscontiguousComposition(t *testing.T) {
    s := string([]rune{'a', 0x0325, 0x030A}) // a + ring below + ring above

    nfc := normalize.String(normalize.NFC, s)
    fcc := normalize.String(normalize.FCC, s)

    assert.Equal(t, string([]rune{0x00E5, 0x0325}), nfc) // å, then the stranded ring below
    assert.Equal(t, s, fcc)                               // FCC leaves it fully decomposed
    assert.NotEqual(t, nfc, fcc)
}

func TestIsNormalized(t *testing.T) {
    assert.True(t, normalize.IsNormalized(normalize.NFC, "hello"))
    assert.False(t, normalize.IsNormalized(normalize.NFD, "é"))
    assert.True(t, normalize.IsNormalized(normalize.NFD, normalize.String(normalize.NFD, "é")))
}

func TestFirstLastStableCP(t *testing.T) {
    s := "a" + "̈" + "b" // a, combining diaeresis, b

    assert.Equal(t, 1, normalize.FirstStableCP(normalize.FCC, s))   // 'a' alone is stable
    assert.Equal(t, len(s)-1, normalize.LastStableCP(normalize.FCC, s)) // 'b' is the last stable code point

    assert.Equal(t, 0, normalize.LastStableCP(normalize.FCC, "̈"))         // no stable code point at all
    assert.Equal(t, len("̈"), normalize.FirstStableCP(normalize.FCC, "̈")) // none found: returns len(s)
}

func TestTransformer(t *testing.T) {
    tr := normalize.Transformer(normalize.NFC)
    got, _, err := transform.String(tr, "e"+"̈"+"ffi")
    assert.NoError(t, err)
    assert.Equal(t, "ë"+"ffi", got)
}

func TestTransformerChunking(t *testing.T) {
    // force the transformer to run with a tiny destination buffer, to
    // exercise the chunk-buffering / un-consume path
    tr := normalize.Transformer(normalize.NFD)
    src := []byte("café")
    var out []byte
    nSrc := 0
    dst := make([]byte, 3)
    for nSrc < len(src) {
        n, m, err := tr.Transform(dst, src[nSrc:], true)
        out = append(out, dst[:n]...)
        nSrc += m
        if err != nil && err != transform.ErrShortDst {
            t.Fatalf("unexpected error: %v", err)
        }
    }
    assert.Equal(t, normalize.String(normalize.NFD, "café"), string(out))
}
