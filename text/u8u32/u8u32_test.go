package u8u32_test

import (
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/tawesoft/unitext/text/u8u32"
)

func TestDecodeAllValid(t *testing.T) {
    rs, err := u8u32.DecodeAll([]byte("héllo"), nil)
    assert.NoError(t, err)
    assert.Equal(t, []rune("héllo"), rs)
}

func TestDecodeAllReplacePolicy(t *testing.T) {
    // 0xFF is never a valid UTF-8 lead byte
    src := append([]byte("ab"), 0xFF)
    src = append(src, []byte("cd")...)

    rs, err := u8u32.DecodeAll(src, u8u32.ReplacePolicy)
    assert.NoError(t, err)
    assert.Equal(t, []rune{'a', 'b', 0xFFFD, 'c', 'd'}, rs)
}

func TestDecodeAllThrowPolicy(t *testing.T) {
    src := append([]byte("ab"), 0xFF)
    _, err := u8u32.DecodeAll(src, u8u32.ThrowPolicy)
    assert.ErrorIs(t, err, u8u32.ErrInvalidUTF8)
}

func TestDecoderPos(t *testing.T) {
    d := u8u32.NewDecoder([]byte("aé"), nil)
    r, ok, err := d.Next()
    assert.NoError(t, err)
    assert.True(t, ok)
    assert.Equal(t, 'a', r)
    assert.Equal(t, 1, d.Pos())

    r, ok, err = d.Next()
    assert.NoError(t, err)
    assert.True(t, ok)
    assert.Equal(t, 'é', r)
    assert.Equal(t, 3, d.Pos())

    _, ok, err = d.Next()
    assert.NoError(t, err)
    assert.False(t, ok)
}

func TestDecodeReaderValid(t *testing.T) {
    rs, err := u8u32.DecodeReader(strings.NewReader("héllo"), nil)
    assert.NoError(t, err)
    assert.Equal(t, []rune("héllo"), rs)
}

func TestDecodeReaderReplacePolicy(t *testing.T) {
    src := append([]byte("ab"), 0xFF)
    src = append(src, []byte("cd")...)

    rs, err := u8u32.DecodeReader(strings.NewReader(string(src)), u8u32.ReplacePolicy)
    assert.NoError(t, err)
    assert.Equal(t, []rune{'a', 'b', 0xFFFD, 'c', 'd'}, rs)
}

func TestDecodeReaderThrowPolicy(t *testing.T) {
    src := append([]byte("ab"), 0xFF)
    _, err := u8u32.DecodeReader(strings.NewReader(string(src)), u8u32.ThrowPolicy)
    assert.ErrorIs(t, err, u8u32.ErrInvalidUTF8)
}

func TestReaderDecoderNext(t *testing.T) {
    d := u8u32.NewReaderDecoder(strings.NewReader("aé"), nil)
    r, ok, err := d.Next()
    assert.NoError(t, err)
    assert.True(t, ok)
    assert.Equal(t, 'a', r)

    r, ok, err = d.Next()
    assert.NoError(t, err)
    assert.True(t, ok)
    assert.Equal(t, 'é', r)

    _, ok, err = d.Next()
    assert.NoError(t, err)
    assert.False(t, ok)
}

func TestEncode(t *testing.T) {
    got := u8u32.Encode([]rune("héllo"))
    assert.Equal(t, []byte("héllo"), got)

    // an out-of-range rune is replaced
    got = u8u32.Encode([]rune{'a', 0x110000, 'b'})
    assert.Equal(t, []byte{'a', 0xEF, 0xBF, 0xBD, 'b'}, got)
}
