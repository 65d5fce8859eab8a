// Package streamsafe implements the Unicode Stream-Safe Text Format: it
// bounds the number of contiguous non-starter code points so that a
// normalization engine's reorder buffer never has to grow without limit,
// even for adversarial input.
package streamsafe

import (
    "unicode/utf8"

    "golang.org/x/text/transform"

    "github.com/tawesoft/unitext/text/ccc"
)

// NonstarterCap is the maximum number of contiguous non-starter code
// points (ccc != 0) permitted before a Combining Grapheme Joiner (U+034F)
// is inserted to break up the run.
const NonstarterCap = 30

// CGJ is the Combining Grapheme Joiner, U+034F, inserted by [Transformer]
// and [String] to break up runs longer than [NonstarterCap].
const CGJ = '͏'

// IsStreamSafe returns true if no contiguous run of non-starter code
// points in s exceeds [NonstarterCap].
func IsStreamSafe(s string) bool {
    run := 0
    for _, r := range s {
        if ccc.Of(r) == 0 {
            run = 0
            continue
        }
        run++
        if run > NonstarterCap {
            return false
        }
    }
    return true
}

// String returns s transformed into the Stream-Safe Text Format: wherever
// a run of non-starters would exceed [NonstarterCap], a [CGJ] is inserted
// (which is itself a starter, resetting the run).
func String(s string) string {
    var sb []rune
    run := 0
    for _, r := range s {
        if ccc.Of(r) == 0 {
            run = 0
            sb = append(sb, r)
            continue
        }
        if run == NonstarterCap {
            sb = append(sb, CGJ)
            run = 0
        }
        sb = append(sb, r)
        run++
    }
    return string(sb)
}

// NewTransformer returns a fresh [transform.Transformer] that applies the
// Stream-Safe Text Format across its input, inserting a [CGJ] after every
// [NonstarterCap] contiguous non-starter code points. Unlike a stateless
// transformer, it must track the non-starter run length across successive
// Transform calls so that a run is not undercounted when it straddles a
// dst-full boundary.
func NewTransformer() transform.Transformer {
    return &streamSafeTransformer{}
}

type streamSafeTransformer struct {
    run int
}

func (t *streamSafeTransformer) Reset() { t.run = 0 }

func (t *streamSafeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
    run := t.run
    defer func() { t.run = run }()
    for nSrc < len(src) {
        r, sz := utf8.DecodeRune(src[nSrc:])
        if r == utf8.RuneError && sz <= 1 {
            if sz == 0 {
                break // incomplete rune at end of src; wait for more
            }
            if !atEOF && nSrc+sz == len(src) {
                break // could be the start of a longer sequence
            }
        }

        need := sz
        if ccc.Of(r) != 0 && run == NonstarterCap {
            need += utf8.RuneLen(CGJ)
        }
        if cap(dst)-nDst < need {
            err = transform.ErrShortDst
            return
        }

        if ccc.Of(r) == 0 {
            run = 0
        } else {
            if run == NonstarterCap {
                if cap(dst)-nDst < utf8.RuneLen(CGJ) {
                    err = transform.ErrShortDst
                    return
                }
                nDst += utf8.EncodeRune(dst[nDst:], CGJ)
                run = 0
            }
            run++
        }

        if cap(dst)-nDst < sz {
            err = transform.ErrShortDst
            return
        }
        n := copy(dst[nDst:], src[nSrc:nSrc+sz])
        nDst += n
        nSrc += sz
    }
    return
}
