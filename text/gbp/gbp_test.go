package gbp_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/tawesoft/unitext/text/gbp"
)

func TestOf(t *testing.T) {
    type row struct {
        r    rune
        want gbp.Property
    }

    rows := []row{
        {'a', gbp.Other},
        {'\r', gbp.CR},
        {'\n', gbp.LF},
        {0x0001, gbp.Control},
        {0x0300, gbp.Extend},        // combining grave accent
        {0x200D, gbp.ZWJ},
        {0x0903, gbp.SpacingMark},
        {0x1F1E6, gbp.RegionalIndicator}, // regional indicator symbol letter A
        {0x231A, gbp.ExtPict},        // watch

        // Hangul, computed directly rather than from the table
        {0x1100, gbp.L},
        {0x1161, gbp.V},
        {0x11A8, gbp.T},
        {0xAC00, gbp.LV}, // ga, no trailing consonant
        {0xAC01, gbp.LVT}, // gag, has trailing consonant

        // boundaries between table entries must resolve correctly despite
        // the table not being monotonic in property value
        {0x0009, gbp.Control}, // just before LF
        {0x000C, gbp.Control}, // between LF and CR
    }

    for i, r := range rows {
        got := gbp.Of(r.r)
        assert.Equal(t, r.want, got, "row %d: U+%04X", i, r.r)
    }
}

func TestPropertyString(t *testing.T) {
    assert.Equal(t, "Other", gbp.Other.String())
    assert.Equal(t, "Regional_Indicator", gbp.RegionalIndicator.String())
    assert.Equal(t, "LVT", gbp.LVT.String())
}
