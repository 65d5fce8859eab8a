// Hand-written table; it is not produced by internal/unicode/gen-13.0.0/dm,
// which writes binary files instead.
//
// A curated subset of the Unicode Character Database's decomposition
// mappings, covering the Latin-1 Supplement accented letters, a handful of
// superscript/vulgar-fraction compatibility mappings, and the canonical
// singletons and two-stage decompositions exercised elsewhere in this
// module; see DESIGN.md.
package dm

// dms holds the concatenated decomposition mapping runes referenced by
// dtis, each entry's mapping occupying dms[dmi:dmi+dml].
var dms = []rune{
    0x0032, 0x0033, 0x0031, 0x0031, 0x2044, 0x0034, 0x0031, 0x2044, 0x0032, 0x0033, 0x2044, 0x0034,
    0x0041, 0x0300, 0x0041, 0x0301, 0x0041, 0x0302, 0x0041, 0x0303, 0x0041, 0x0308, 0x0041, 0x030A,
    0x0043, 0x0327, 0x0045, 0x0300, 0x0045, 0x0301, 0x0045, 0x0302, 0x0045, 0x0308, 0x0049, 0x0300,
    0x0049, 0x0301, 0x0049, 0x0302, 0x0049, 0x0308, 0x004E, 0x0303, 0x004F, 0x0300, 0x004F, 0x0301,
    0x004F, 0x0302, 0x004F, 0x0303, 0x004F, 0x0308, 0x0055, 0x0300, 0x0055, 0x0301, 0x0055, 0x0302,
    0x0055, 0x0308, 0x0059, 0x0301, 0x0061, 0x0300, 0x0061, 0x0301, 0x0061, 0x0302, 0x0061, 0x0303,
    0x0061, 0x0308, 0x0061, 0x030A, 0x0063, 0x0327, 0x0065, 0x0300, 0x0065, 0x0301, 0x0065, 0x0302,
    0x0065, 0x0308, 0x0069, 0x0300, 0x0069, 0x0301, 0x0069, 0x0302, 0x0069, 0x0308, 0x006E, 0x0303,
    0x006F, 0x0300, 0x006F, 0x0301, 0x006F, 0x0302, 0x006F, 0x0303, 0x006F, 0x0308, 0x0075, 0x0300,
    0x0075, 0x0301, 0x0075, 0x0302, 0x0075, 0x0308, 0x0079, 0x0301, 0x0079, 0x0308, 0x0064, 0x0307,
    0x00EA, 0x0301, 0x03A9, 0x00C5,
}

// dtis lists, in increasing order of codepoint, every code point with a
// decomposition mapping. Map relies on this being sorted for sort.Search.
var dtis = []struct{
    codepoint rune
    dt        Type
    dmi       int
    dml       int
}{
    {0x00B2, Super, 0, 1},       // superscript two
    {0x00B3, Super, 1, 1},       // superscript three
    {0x00B9, Super, 2, 1},       // superscript one
    {0x00BC, Fraction, 3, 3},    // vulgar fraction one quarter
    {0x00BD, Fraction, 6, 3},    // vulgar fraction one half
    {0x00BE, Fraction, 9, 3},    // vulgar fraction three quarters
    {0x00C0, Canonical, 12, 2},  // A with grave
    {0x00C1, Canonical, 14, 2},  // A with acute
    {0x00C2, Canonical, 16, 2},  // A with circumflex
    {0x00C3, Canonical, 18, 2},  // A with tilde
    {0x00C4, Canonical, 20, 2},  // A with diaeresis
    {0x00C5, Canonical, 22, 2},  // A with ring above
    {0x00C7, Canonical, 24, 2},  // C with cedilla
    {0x00C8, Canonical, 26, 2},  // E with grave
    {0x00C9, Canonical, 28, 2},  // E with acute
    {0x00CA, Canonical, 30, 2},  // E with circumflex
    {0x00CB, Canonical, 32, 2},  // E with diaeresis
    {0x00CC, Canonical, 34, 2},  // I with grave
    {0x00CD, Canonical, 36, 2},  // I with acute
    {0x00CE, Canonical, 38, 2},  // I with circumflex
    {0x00CF, Canonical, 40, 2},  // I with diaeresis
    {0x00D1, Canonical, 42, 2},  // N with tilde
    {0x00D2, Canonical, 44, 2},  // O with grave
    {0x00D3, Canonical, 46, 2},  // O with acute
    {0x00D4, Canonical, 48, 2},  // O with circumflex
    {0x00D5, Canonical, 50, 2},  // O with tilde
    {0x00D6, Canonical, 52, 2},  // O with diaeresis
    {0x00D9, Canonical, 54, 2},  // U with grave
    {0x00DA, Canonical, 56, 2},  // U with acute
    {0x00DB, Canonical, 58, 2},  // U with circumflex
    {0x00DC, Canonical, 60, 2},  // U with diaeresis
    {0x00DD, Canonical, 62, 2},  // Y with acute
    {0x00E0, Canonical, 64, 2},  // a with grave
    {0x00E1, Canonical, 66, 2},  // a with acute
    {0x00E2, Canonical, 68, 2},  // a with circumflex
    {0x00E3, Canonical, 70, 2},  // a with tilde
    {0x00E4, Canonical, 72, 2},  // a with diaeresis
    {0x00E5, Canonical, 74, 2},  // a with ring above
    {0x00E7, Canonical, 76, 2},  // c with cedilla
    {0x00E8, Canonical, 78, 2},  // e with grave
    {0x00E9, Canonical, 80, 2},  // e with acute
    {0x00EA, Canonical, 82, 2},  // e with circumflex
    {0x00EB, Canonical, 84, 2},  // e with diaeresis
    {0x00EC, Canonical, 86, 2},  // i with grave
    {0x00ED, Canonical, 88, 2},  // i with acute
    {0x00EE, Canonical, 90, 2},  // i with circumflex
    {0x00EF, Canonical, 92, 2},  // i with diaeresis
    {0x00F1, Canonical, 94, 2},  // n with tilde
    {0x00F2, Canonical, 96, 2},  // o with grave
    {0x00F3, Canonical, 98, 2},  // o with acute
    {0x00F4, Canonical, 100, 2}, // o with circumflex
    {0x00F5, Canonical, 102, 2}, // o with tilde
    {0x00F6, Canonical, 104, 2}, // o with diaeresis
    {0x00F9, Canonical, 106, 2}, // u with grave
    {0x00FA, Canonical, 108, 2}, // u with acute
    {0x00FB, Canonical, 110, 2}, // u with circumflex
    {0x00FC, Canonical, 112, 2}, // u with diaeresis
    {0x00FD, Canonical, 114, 2}, // y with acute
    {0x00FF, Canonical, 116, 2}, // y with diaeresis
    {0x1E0B, Canonical, 118, 2}, // d with dot above
    {0x1EBF, Canonical, 120, 2}, // e with circumflex and acute
    {0x2126, Canonical, 122, 1}, // ohm sign -> greek capital letter omega
    {0x212B, Canonical, 123, 1}, // angstrom sign -> A with ring above
}
