package ks_test

// CONTRIBUTORS: keep tests in alphabetical order, but with examples grouped
// first.

import (
    "errors"
    "fmt"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/tawesoft/unitext/ks"
)

func ExampleWrapBlock() {
    fmt.Println(ks.WrapBlock("the quick brown fox jumps over the lazy dog", 20))

    // Output:
    // the quick brown fox
    // jumps over the lazy
    // dog
}

func TestFilterError(t *testing.T) {
    sentinel := errors.New("sentinel")
    other := errors.New("other")

    assert.NoError(t, ks.FilterError(nil, sentinel))
    assert.NoError(t, ks.FilterError(sentinel, sentinel, other))
    assert.Error(t, ks.FilterError(other, sentinel))
}

func TestIn(t *testing.T) {
    assert.True(t, ks.In(2, 1, 2, 3))
    assert.False(t, ks.In(4, 1, 2, 3))
}

func TestMustMap(t *testing.T) {
    var m map[string]int
    m = ks.MustMap(m)
    m["x"] = 1
    assert.Equal(t, 1, m["x"])

    m2 := map[string]int{"y": 2}
    assert.Equal(t, m2, ks.MustMap(m2))
}

func TestReserve(t *testing.T) {
    xs := make([]int, 0, 2)
    xs = ks.Reserve(xs, 10)
    assert.GreaterOrEqual(t, cap(xs), 10)
}

func TestTestCompletes(t *testing.T) {
    ks.TestCompletes(t, time.Second, func() {})
}
