// Package u8u32 provides boundary transcoding between UTF-8 bytes and
// UTF-32 code points, with a caller-supplied policy for handling invalid
// input, in the style of [golang.org/x/text/encoding]'s error-handling
// modes. [Decoder] transcodes an in-memory []byte; [ReaderDecoder] layers
// the same policy over a streaming [github.com/tawesoft/unitext/text/runeio.Reader]
// for callers reading from an io.Reader instead.
package u8u32

import (
    "errors"
    "io"
    "unicode/utf8"

    "github.com/tawesoft/unitext/text/runeio"
)

// ErrInvalidUTF8 is returned by a [Policy] that throws on invalid input,
// and by [DecodeAll] when no policy handles the error.
var ErrInvalidUTF8 = errors.New("u8u32: invalid utf-8 sequence")

// Policy decides what happens when the decoder encounters a byte sequence
// that is not valid UTF-8. It is given the offending byte; it may return a
// replacement code point to substitute and continue (ok = true), or ask the
// decoder to stop by returning ok = false.
type Policy func(offendingByte byte) (replacement rune, ok bool)

// ReplacePolicy is a [Policy] that substitutes the Unicode replacement
// character U+FFFD for every invalid byte and continues.
func ReplacePolicy(byte) (rune, bool) {
    return utf8.RuneError, true
}

// ThrowPolicy is a [Policy] that rejects any invalid input.
func ThrowPolicy(byte) (rune, bool) {
    return 0, false
}

// Decoder presents a UTF-8 byte slice as a forward iterator over UTF-32
// code points, applying policy to any invalid byte sequences encountered.
type Decoder struct {
    src    []byte
    pos    int
    policy Policy
}

// NewDecoder returns a Decoder over src using the given policy. A nil
// policy defaults to [ReplacePolicy].
func NewDecoder(src []byte, policy Policy) *Decoder {
    if policy == nil {
        policy = ReplacePolicy
    }
    return &Decoder{src: src, policy: policy}
}

// Next returns the next code point, or (0, false) at end of input. err is
// non-nil only if the policy rejected an invalid byte sequence.
func (d *Decoder) Next() (r rune, ok bool, err error) {
    if d.pos >= len(d.src) {
        return 0, false, nil
    }
    x, sz := utf8.DecodeRune(d.src[d.pos:])
    if x == utf8.RuneError && sz <= 1 {
        replacement, proceed := d.policy(d.src[d.pos])
        if !proceed {
            return 0, false, ErrInvalidUTF8
        }
        d.pos++
        return replacement, true, nil
    }
    d.pos += sz
    return x, true, nil
}

// Pos returns the decoder's current byte offset into src.
func (d *Decoder) Pos() int { return d.pos }

// DecodeAll decodes every code point of src, applying policy to invalid
// byte sequences, stopping (and returning an error) if the policy rejects
// one.
func DecodeAll(src []byte, policy Policy) ([]rune, error) {
    d := NewDecoder(src, policy)
    out := make([]rune, 0, len(src))
    for {
        r, ok, err := d.Next()
        if err != nil {
            return out, err
        }
        if !ok {
            return out, nil
        }
        out = append(out, r)
    }
}

// ReaderDecoder presents an io.Reader, via a [runeio.Reader], as a forward
// iterator over UTF-32 code points, applying policy to any invalid byte
// sequence encountered in the stream.
type ReaderDecoder struct {
    r      *runeio.Reader
    policy Policy
}

// NewReaderDecoder wraps rd in a runeio.Reader and returns a ReaderDecoder
// that applies policy to invalid byte sequences. A nil policy defaults to
// [ReplacePolicy].
func NewReaderDecoder(rd io.Reader, policy Policy) *ReaderDecoder {
    if policy == nil {
        policy = ReplacePolicy
    }
    return &ReaderDecoder{r: runeio.NewReader(rd), policy: policy}
}

// Next returns the next code point, or (0, false, nil) at end of stream.
// err is non-nil if the underlying reader failed, or the policy rejected
// an invalid byte sequence.
func (d *ReaderDecoder) Next() (r rune, ok bool, err error) {
    x, rerr := d.r.Next()
    if rerr != nil {
        if errors.Is(rerr, io.EOF) {
            return 0, false, nil
        }
        return 0, false, rerr
    }
    if x == utf8.RuneError {
        // runeio.Reader's Next is built on bufio.Reader.ReadRune, which
        // already consumes the offending byte before reporting
        // utf8.RuneError and does not expose it back to the caller, so
        // unlike Decoder.Next, policy is always invoked with 0 here.
        replacement, proceed := d.policy(0)
        if !proceed {
            return 0, false, ErrInvalidUTF8
        }
        return replacement, true, nil
    }
    return x, true, nil
}

// DecodeReader decodes every code point from rd, via a ReaderDecoder
// applying policy to invalid byte sequences, stopping (and returning an
// error) if the policy rejects one.
func DecodeReader(rd io.Reader, policy Policy) ([]rune, error) {
    d := NewReaderDecoder(rd, policy)
    var out []rune
    for {
        r, ok, err := d.Next()
        if err != nil {
            return out, err
        }
        if !ok {
            return out, nil
        }
        out = append(out, r)
    }
}

// Encode transcodes a sequence of UTF-32 code points back to UTF-8 bytes.
// Code points outside the valid range (or surrogates) are replaced with
// U+FFFD.
func Encode(rs []rune) []byte {
    out := make([]byte, 0, len(rs)*3)
    buf := make([]byte, utf8.UTFMax)
    for _, r := range rs {
        if !utf8.ValidRune(r) {
            r = utf8.RuneError
        }
        n := utf8.EncodeRune(buf, r)
        out = append(out, buf[:n]...)
    }
    return out
}
