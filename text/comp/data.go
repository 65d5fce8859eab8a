package comp

import "github.com/tawesoft/unitext/text/dm"

func init() {
    table = make(map[pair]rune)
    dm.CanonicalPairs(func(composed, a, b rune) {
        table[pair{a, b}] = composed
    })
}
