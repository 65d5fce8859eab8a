// Package fold implements character foldings: operations that map similar
// characters to a common target so that callers can ignore certain
// distinctions between them (for example, when building a search index over
// grapheme-rope text).
//
// DISCLAIMER: these folders are based on suggested foldings that appear in
// withdrawn drafts of Unicode technical reports. They may not be complete.
//
// WARNING: folding is not appropriate for security-sensitive comparisons
// such as identifier confusability checks.
package fold

import (
    "unicode"

    "golang.org/x/text/runes"
    "golang.org/x/text/transform"

    "github.com/tawesoft/unitext/ks"
    "github.com/tawesoft/unitext/text/dm"
)

// Accents is a transformer that removes accents from Latin/Greek/Cyrillic
// characters by canonically decomposing them and dropping the resulting
// non-spacing combining marks. Only characters with an entry in package
// dm's table are decomposed; that table lists Latin letters only, so
// precomposed Greek and Cyrillic letters pass through unchanged.
var Accents = transform.Chain(
    dm.CD.TransformerWithFilter(func(r rune) bool {
        return unicode.In(r, unicode.Latin, unicode.Greek, unicode.Cyrillic)
    }),
    runes.Remove(runes.Predicate(func(r rune) bool {
        return unicode.Is(unicode.Mn, r)
    })),
)

// CanonicalDuplicates folds duplicate singletons - characters that, for
// historical reasons, have two different code points for the same meaning
// (for example, Ohm Sign folds to Greek Capital Letter Omega).
var CanonicalDuplicates = dm.CD.TransformerWithFilter(func(r rune) bool {
    return ks.In(r,
        0x0374, 0x037E, 0x0387, 0x1FBE,
        0x1FEF, 0x1FFD, 0x2000, 0x2001,
        0x2126, 0x212A, 0x212B,
    )
})

// Dashes folds everything in Unicode class Pd ("dash punctuation") to
// hyphen-minus '-'.
var Dashes = runes.Map(func(r rune) rune {
    if unicode.Is(unicode.Pd, r) {
        return 0x002D
    }
    return r
})

// Space folds every Unicode space separator (class Zs) to the ASCII space.
var Space = runes.Map(func(r rune) rune {
    if unicode.Is(unicode.Zs, r) {
        return 0x0020
    }
    return r
})
