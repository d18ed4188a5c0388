// Package uuid decomposes UUIDs into their RFC 4122 fields.
//
// A UUID can be held in either of its two canonical representations: 16 raw
// bytes ([BytesUUID], built by [FromBytes]) or the 36-character hyphenated
// lowercase string ([StringUUID], built by [FromString]). Both expose the
// same [Fields] and agree on every derived value. Each field is computed on
// first use and remembered, so callers that only need the version never pay
// for the node or the timestamp.
package uuid

import (
	"bytes"
	"fmt"
	"math/big"
	"time"
)

const (
	// Size is the length in bytes of the binary representation.
	Size = 16

	// StringSize is the length of the canonical string representation.
	StringSize = 36
)

// Versions defined by RFC 4122 and RFC 9562.
const (
	V1 = 1 // Gregorian time
	V2 = 2 // DCE security
	V3 = 3 // MD5 name-based
	V4 = 4 // random
	V5 = 5 // SHA-1 name-based
	V6 = 6 // reordered Gregorian time
	V7 = 7 // Unix epoch time
	V8 = 8 // custom
)

// Variant is the layout family named by the top bits of
// clock_seq_hi_and_reserved.
type Variant int

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC4122:
		return "RFC4122"
	case VariantMicrosoft:
		return "Microsoft"
	case VariantFuture:
		return "Future"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

const (
	nilString = "00000000-0000-0000-0000-000000000000"
	maxString = "ffffffff-ffff-ffff-ffff-ffffffffffff"
)

var (
	nilBytes = [Size]byte{}
	maxBytes = [Size]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
)

// UUID is the behavior shared by the bytes-backed and string-backed values.
// Two values compare equal when their 16-byte forms are equal, whichever
// representation they were built from.
type UUID interface {
	fmt.Stringer

	Bytes() [Size]byte
	Fields() Fields

	Variant() Variant
	Version() (int, bool)
	Timestamp() (string, error)
	DateTime() (time.Time, error)

	Hex() string
	Integer() *big.Int
	URN() string

	Compare(other UUID) int
	Equal(other any) bool
}

var (
	_ UUID = (*BytesUUID)(nil)
	_ UUID = (*StringUUID)(nil)
)

// Compare orders a and b by their 16-byte forms, returning -1, 0 or +1. A nil
// UUID, including a typed nil pointer, sorts before every other value.
func Compare(a, b UUID) int {
	switch an, bn := isNilPointer(a), isNilPointer(b); {
	case an && bn:
		return 0
	case an:
		return -1
	case bn:
		return 1
	}

	ab, bb := a.Bytes(), b.Bytes()
	return bytes.Compare(ab[:], bb[:])
}

func isNilPointer(u any) bool {
	switch p := u.(type) {
	case nil:
		return true
	case *BytesUUID:
		return p == nil
	case *StringUUID:
		return p == nil
	}
	return false
}

// Nil returns the nil UUID, 00000000-0000-0000-0000-000000000000.
func Nil() *StringUUID {
	return newStringUUID(newStringFields(nilString))
}

// Max returns the max UUID, ffffffff-ffff-ffff-ffff-ffffffffffff.
func Max() *StringUUID {
	return newStringUUID(newStringFields(maxString))
}

// Must returns v, and panics if err is non-nil. It is meant for
// package-level fixtures:
//
//	var ns = uuid.Must(uuid.FromString("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// equal reports whether other is a non-nil UUID with the same bytes as u.
func equal(u UUID, other any) bool {
	if isNilPointer(other) {
		return false
	}
	o, ok := other.(UUID)
	if !ok {
		return false
	}
	return Compare(u, o) == 0
}
