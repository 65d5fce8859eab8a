// Package normalize implements the four Unicode Normalization Forms (NFD,
// NFKD, NFC, NFKC) and FCC, a variant of NFC that forbids discontiguous
// composition, over the lower-level tables and transformers of
// text/dm, text/ccc, text/comp, and text/qc.
package normalize

import (
    "sort"
    "unicode/utf8"

    "golang.org/x/text/transform"

    "github.com/tawesoft/unitext/text/ccc"
    "github.com/tawesoft/unitext/text/comp"
    "github.com/tawesoft/unitext/text/dm"
    "github.com/tawesoft/unitext/text/qc"
)

// Form identifies one of the Unicode normalization forms, or FCC.
type Form int

const (
    NFD Form = iota
    NFKD
    NFC
    NFKC
    FCC
)

func (f Form) String() string {
    switch f {
        case NFD:  return "NFD"
        case NFKD: return "NFKD"
        case NFC:  return "NFC"
        case NFKC: return "NFKC"
        case FCC:  return "FCC"
    }
    return "?"
}

func (f Form) decomposer() dm.Decomposer {
    if f == NFKD || f == NFKC {
        return dm.KD
    }
    return dm.CD
}

func (f Form) composes() bool {
    return f == NFC || f == NFKC || f == FCC
}

func (f Form) qcForm() qc.Form {
    switch f {
        case NFD:  return qc.NFD
        case NFKD: return qc.NFKD
        case NFC:  return qc.NFC
        case NFKC: return qc.NFKC
        case FCC:  return qc.NFC // FCC shares NFC's quick-check table
    }
    return qc.NFC
}

// String returns s normalized to form f.
func String(f Form, s string) string {
    rs := decomposeAndOrder(f, []rune(s))
    if f.composes() {
        rs = composeRunes(rs, f == FCC)
    }
    return string(rs)
}

// Bytes returns b normalized to form f.
func Bytes(f Form, b []byte) []byte {
    return []byte(String(f, string(b)))
}

// Append appends the normalization (to form f) of src to dst and returns
// the extended buffer.
func Append(f Form, dst []byte, src string) []byte {
    return append(dst, String(f, src)...)
}

// decomposeAndOrder fully (recursively) decomposes every rune of xs under
// f's decomposition type, then applies the canonical ordering algorithm: a
// stable sort by ccc within each maximal run of non-starters.
func decomposeAndOrder(f Form, xs []rune) []rune {
    d := f.decomposer()
    out := make([]rune, 0, len(xs))
    for _, x := range xs {
        if l, v, t, ok := comp.DecomposeHangul(x); ok {
            out = append(out, l, v)
            if t != 0 {
                out = append(out, t)
            }
            continue
        }
        out = append(out, d.Flatten(x)...)
    }
    reorderCanonical(out)
    return out
}

func reorderCanonical(xs []rune) {
    i := 0
    for i < len(xs) {
        if ccc.Of(xs[i]) == 0 {
            i++
            continue
        }
        j := i
        for j < len(xs) && ccc.Of(xs[j]) != 0 {
            j++
        }
        run := xs[i:j]
        sort.SliceStable(run, func(a, b int) bool {
            return ccc.Of(run[a]) < ccc.Of(run[b])
        })
        i = j
    }
}

// composeRunes applies the canonical composition algorithm of spec section
// 4.1 to an already decomposed-and-ordered rune sequence: walking the
// buffer while tracking the last-emitted starter S, each following code
// point X is folded into S if a composition exists and X is unblocked (no
// intervening non-starter in the same chunk has ccc >= ccc(X)). When fcc is
// true, composition is additionally restricted to X immediately adjacent to
// S (no intervening non-starters at all), which is exactly the difference
// between FCC and NFC.
func composeRunes(xs []rune, fcc bool) []rune {
    out := make([]rune, 0, len(xs))
    starterIdx := -1

    for _, x := range xs {
        cx := ccc.Of(x)

        if starterIdx == -1 {
            out = append(out, x)
            if cx == 0 {
                starterIdx = len(out) - 1
            }
            continue
        }

        adjacent := len(out)-1 == starterIdx
        blocked := false
        if !adjacent {
            if fcc {
                blocked = true
            } else {
                for j := starterIdx + 1; j < len(out); j++ {
                    if ccc.Of(out[j]) >= cx {
                        blocked = true
                        break
                    }
                }
            }
        }

        if !blocked {
            if composed, ok := comp.Compose(out[starterIdx], x); ok {
                out[starterIdx] = composed
                continue
            }
        }

        out = append(out, x)
        if cx == 0 {
            starterIdx = len(out) - 1
        }
    }

    return out
}

// IsNormalized reports whether s is already in form f. It uses the
// quick-check fast path (text/qc) and falls back to a full normalization
// and byte comparison only when quick-check is inconclusive ("maybe").
func IsNormalized(f Form, s string) bool {
    switch qc.Check(f.qcForm(), s) {
    case qc.Yes:
        return true
    case qc.No:
        return false
    default:
        return String(f, s) == s
    }
}

// isStable reports whether r is a stable code point in form f: a starter
// (ccc 0) whose quick-check flag for f is Yes.
func isStable(f Form, r rune) bool {
    return ccc.Of(r) == 0 && qc.Of(f.qcForm(), r) == qc.Yes
}

// FirstStableCP returns the smallest byte offset j in s such that the last
// code point of s[:j] is stable in form f - the smallest safe cut point at
// or after the start of s. If no code point in s is stable, it returns
// len(s).
func FirstStableCP(f Form, s string) int {
    for i, r := range s {
        if isStable(f, r) {
            return i + utf8.RuneLen(r)
        }
    }
    return len(s)
}

// LastStableCP returns the largest byte offset i in s such that the first
// code point of s[i:] is stable in form f - the largest safe cut point at
// or before the end of s. If no code point in s is stable, it returns 0.
func LastStableCP(f Form, s string) int {
    last := 0
    for i, r := range s {
        if isStable(f, r) {
            last = i
        }
    }
    return last
}

// Transformer returns a [transform.Transformer] that normalizes its input
// to form f, processing one canonical chunk (a starter plus its following
// run of non-starters) at a time so that memory use is bounded by
// ccc.MaxNonStarters regardless of input length.
func Transformer(f Form) transform.Transformer {
    return &chunkTransformer{form: f}
}

type chunkTransformer struct {
    form Form
}

func (t *chunkTransformer) Reset() {}

func (t *chunkTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
    d := t.form.decomposer()
    var chunk []rune
    chunkStartSrc := 0

    flush := func(c []rune) bool {
        rs := make([]rune, len(c))
        copy(rs, c)
        sort.SliceStable(rs, func(a, b int) bool {
            return ccc.Of(rs[a]) < ccc.Of(rs[b])
        })
        if t.form.composes() {
            rs = composeRunes(rs, t.form == FCC)
        }
        for _, r := range rs {
            sz := utf8.RuneLen(r)
            if cap(dst)-nDst < sz {
                return false
            }
            nDst += utf8.EncodeRune(dst[nDst:], r)
        }
        return true
    }

    for nSrc < len(src) {
        before := nSrc
        r, sz := utf8.DecodeRune(src[nSrc:])
        if r == utf8.RuneError && sz <= 1 {
            if sz == 0 {
                break // incomplete rune at end of src; wait for more
            }
            if !atEOF && nSrc+sz == len(src) {
                break // could be the start of a longer sequence
            }
            sz = 1 // genuinely invalid byte: treat as u+fffd and advance one byte
        }

        var decomposed []rune
        if l, v, tj, ok := comp.DecomposeHangul(r); ok {
            decomposed = append(decomposed, l, v)
            if tj != 0 {
                decomposed = append(decomposed, tj)
            }
        } else {
            decomposed = d.Flatten(r)
        }

        for _, dr := range decomposed {
            if ccc.Of(dr) == 0 && len(chunk) > 0 {
                if !flush(chunk) {
                    nSrc = chunkStartSrc
                    err = transform.ErrShortDst
                    return
                }
                chunk = chunk[:0]
            }
            if len(chunk) == 0 {
                chunkStartSrc = before
            }
            if len(chunk)+1 > ccc.MaxNonStarters+1 {
                err = ccc.ErrMaxNonStarters
                return
            }
            chunk = append(chunk, dr)
        }
        nSrc += sz
    }

    if len(chunk) > 0 {
        if atEOF {
            if !flush(chunk) {
                nSrc = chunkStartSrc
                err = transform.ErrShortDst
                return
            }
        } else {
            nSrc = chunkStartSrc
            err = transform.ErrShortSrc
        }
    }

    return
}
