package qc_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/tawesoft/unitext/text/qc"
)

func TestOf(t *testing.T) {
    type row struct {
        form qc.Form
        r    rune
        want qc.QC
    }

    rows := []row{
        {qc.NFC, 'a', qc.Yes},
        {qc.NFD, 'a', qc.Yes},
        {qc.NFC, 0x00E9, qc.Maybe}, // e with acute: has its own decomposition, so the fast path defers
        {qc.NFD, 0x00E9, qc.No},    // precomposed form is not NFD
        {qc.NFC, 0x0301, qc.Maybe}, // combining acute accent may compose with a preceding starter
        {qc.NFD, 0x0301, qc.Yes},
    }

    for i, r := range rows {
        got := qc.Of(r.form, r.r)
        assert.Equal(t, r.want, got, "row %d: %s of U+%04X", i, r.form, r.r)
    }
}

func TestCheck(t *testing.T) {
    type row struct {
        form qc.Form
        s    string
        want qc.QC
    }

    rows := []row{
        {qc.NFC, "hello world", qc.Yes},
        {qc.NFD, "hello world", qc.Yes},
        {qc.NFD, "café", qc.No},
        {qc.NFC, "café", qc.Maybe},
    }

    for i, r := range rows {
        got := qc.Check(r.form, r.s)
        assert.Equal(t, r.want, got, "row %d: %s of %q", i, r.form, r.s)
    }
}

func TestQCString(t *testing.T) {
    assert.Equal(t, "Yes", qc.Yes.String())
    assert.Equal(t, "No", qc.No.String())
    assert.Equal(t, "Maybe", qc.Maybe.String())
}
