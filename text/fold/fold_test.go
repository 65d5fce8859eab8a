package fold_test

import (
    "io"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "golang.org/x/text/transform"

    "github.com/tawesoft/unitext/text/fold"
)

func trans(t transform.Transformer, x string) string {
    r := transform.NewReader(strings.NewReader(x), t)
    bs, err := io.ReadAll(r)
    s := string(bs)
    if err != nil {
        s = "error: " + err.Error()
    }
    return s
}

func Test(t *testing.T) {
    type row struct {
        t        transform.Transformer
        input    string
        expected string
    }

    rows := []row{
        {fold.Accents, "", ""},
        {fold.Accents, "café", "cafe"},

        {fold.CanonicalDuplicates, "", ""},
        {fold.CanonicalDuplicates, "café", "café"},
        {fold.CanonicalDuplicates, "a" + string(rune(0x2126)) + "a", "a" + string(rune(0x03A9)) + "a"}, // Ohm => Omega

        {fold.Dashes, "", ""},
        {fold.Dashes, "a-b-c", "a-b-c"},
        {fold.Dashes, "a" + string(rune(0x2011)) + "b", "a-b"}, // non-breaking hyphen => hyphen-minus

        {fold.Space, "", ""},
        {fold.Space, "café", "café"},
        {fold.Space, "a" + string(rune(0x00A0)) + "b", "a b"}, // nbsp => space
        {fold.Space, "a" + string(rune(0x3000)) + "b", "a b"}, // ideographic space => space
    }

    for i, r := range rows {
        output := trans(r.t, r.input)
        assert.Equal(t, r.expected, output, "test %d on input %q", i, r.input)
    }
}
