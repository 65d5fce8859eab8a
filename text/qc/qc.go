// Package qc implements the three-valued Quick_Check property used as a
// fast path for deciding whether a code-point sequence is already in a
// given Unicode normalization form, without running the full
// decompose/reorder/compose pipeline.
package qc

import (
    "github.com/tawesoft/unitext/text/ccc"
    "github.com/tawesoft/unitext/text/dm"
)

// Form identifies which of the four Unicode normalization forms a
// Quick_Check answer is being computed for.
type Form int

const (
    NFD Form = iota
    NFKD
    NFC
    NFKC
)

// QC is a Quick_Check flag: Yes, No, or Maybe. It must never be collapsed
// to a plain bool — Maybe means the fast path cannot decide and the slow,
// full normalization path must run.
type QC int

const (
    Yes QC = iota
    No
    Maybe
)

func (q QC) String() string {
    switch q {
        case Yes:   return "Yes"
        case No:    return "No"
        case Maybe: return "Maybe"
    }
    return "?"
}

// hangul syllable and jamo ranges, per Unicode section 3.12.
const (
    hangulLFirst, hangulLLast = 0x1100, 0x1112
    hangulVFirst, hangulVLast = 0x1161, 0x1175
    hangulTFirst, hangulTLast = 0x11A8, 0x11C2
    hangulSFirst, hangulSLast = 0xAC00, 0xD7A3
)

func inRange(r, lo, hi rune) bool { return r >= lo && r <= hi }

// Of returns the Quick_Check flag for a single code point under the given
// normalization form.
func Of(form Form, r rune) QC {
    switch form {
    case NFD:
        return ofDecomposed(r, dm.CD)
    case NFKD:
        return ofDecomposed(r, dm.KD)
    case NFC:
        return ofComposed(r, dm.CD)
    case NFKC:
        return ofComposed(r, dm.KD)
    }
    return Yes
}

func ofDecomposed(r rune, d dm.Decomposer) QC {
    if inRange(r, hangulSFirst, hangulSLast) {
        return No // Hangul syllables always decompose under NFD/NFKD
    }
    if dt, _ := d.Map(r); dt != dm.None {
        return No
    }
    return Yes
}

func ofComposed(r rune, d dm.Decomposer) QC {
    // Hangul: precomposed syllables are already fully composed; the jamo
    // that make them up are not, since they may yet combine with a
    // following jamo.
    if inRange(r, hangulSFirst, hangulSLast) {
        return Yes
    }
    if inRange(r, hangulLFirst, hangulLLast) || inRange(r, hangulVFirst, hangulVLast) ||
        inRange(r, hangulTFirst, hangulTLast) {
        return Maybe
    }

    if ccc.Of(r) != 0 {
        // a non-starter might combine with a preceding starter; the
        // fast path cannot decide this without seeing context.
        return Maybe
    }
    if dt, _ := d.Map(r); dt != dm.None {
        // has a decomposition of its own: it may be the second half of
        // some other character's canonical pair and thus participate in
        // recomposition in a way the fast path cannot rule out.
        return Maybe
    }
    return Yes
}

// Check scans s and applies the Quick_Check algorithm: tracking the
// previous code point's canonical combining class, it returns No as soon
// as a disqualifying code point or a canonical-ordering violation is
// found, Maybe if any code point's flag is Maybe (and no No is found),
// and Yes only if every code point's flag is Yes and the whole sequence is
// already in canonical order.
func Check(form Form, s string) QC {
    result := Yes
    prevCCC := ccc.CCC(0)
    for _, r := range s {
        flag := Of(form, r)
        if flag == No {
            return No
        }
        if flag == Maybe {
            result = Maybe
        }
        c := ccc.Of(r)
        if c != 0 && c < prevCCC {
            return No
        }
        prevCCC = c
    }
    return result
}
