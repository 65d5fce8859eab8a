package collate_test

import (
    "bytes"
    "sort"
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/tawesoft/unitext/text/collate"
)

// byteOrderTable is a trivial Table that orders by raw byte comparison,
// standing in for a compiled DUCET-plus-tailoring table in these tests.
type byteOrderTable struct{}

func (byteOrderTable) Compare(a, b []byte) int { return bytes.Compare(a, b) }

func TestTableSortsWords(t *testing.T) {
    var tbl collate.Table = byteOrderTable{}

    words := [][]byte{[]byte("banana"), []byte("apple"), []byte("cherry")}
    sort.Slice(words, func(i, j int) bool {
        return tbl.Compare(words[i], words[j]) < 0
    })

    want := [][]byte{[]byte("apple"), []byte("banana"), []byte("cherry")}
    for i := range want {
        assert.Equal(t, want[i], words[i])
    }
}
