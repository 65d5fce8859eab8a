// Package collate defines the minimal interface this library expects from
// a collation table, without implementing UCA/DUCET lookup or tailoring-
// rule parsing: both are explicitly out of scope (see spec.md section 1,
// "out of scope" and "non-goals"). A future tailoring frontend supplies a
// Table implementation; this package only gives it somewhere to plug in.
package collate

// Table compares two byte sequences according to some collation order.
// Implementations are expected to consume a pre-built collation table
// (for example, a compiled DUCET plus tailoring rules) rather than parse
// tailoring rules themselves.
//
// Compare returns a negative number if a sorts before b, zero if they are
// considered equal under the collation, and a positive number if a sorts
// after b.
type Table interface {
    Compare(a, b []byte) int
}
