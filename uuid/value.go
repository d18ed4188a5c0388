package uuid

import (
	"encoding/hex"
	"encoding/json"
	"math/big"
	"strings"
	"time"
)

const urnPrefix = "urn:uuid:"

// BytesUUID is a UUID held as 16 bytes. The canonical string is encoded on
// first use.
type BytesUUID struct {
	fields *BytesFields

	str      cell[string]
	hex      cell[string]
	integer  cell[*big.Int]
	dateTime cell[dateTimeResult]
}

// FromBytes returns a UUID backed by a copy of b, which must be exactly Size
// bytes long.
func FromBytes(b []byte) (*BytesUUID, error) {
	f, err := NewBytesFields(b)
	if err != nil {
		return nil, err
	}
	return newBytesUUID(f), nil
}

// FromHex returns a UUID from its 32-digit lowercase hex digest, as produced
// by Hex.
func FromHex(s string) (*BytesUUID, error) {
	if !hexPattern.MatchString(s) {
		return nil, &InvalidFormatError{Input: s}
	}

	var b [Size]byte
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return nil, &InvalidFormatError{Input: s}
	}
	return newBytesUUID(newBytesFields(b)), nil
}

func newBytesUUID(f *BytesFields) *BytesUUID {
	return &BytesUUID{fields: f}
}

func (u *BytesUUID) Fields() Fields {
	return u.fields
}

func (u *BytesUUID) Bytes() [Size]byte {
	return u.fields.Bytes()
}

func (u *BytesUUID) String() string {
	return u.str.get(func() string {
		return encodeCanonical(u.fields.Bytes())
	})
}

func (u *BytesUUID) Hex() string {
	return u.hex.get(func() string {
		b := u.fields.Bytes()
		return hex.EncodeToString(b[:])
	})
}

// Integer returns the UUID as an unsigned 128-bit integer. The result is a
// fresh copy the caller may modify.
func (u *BytesUUID) Integer() *big.Int {
	n := u.integer.get(func() *big.Int {
		b := u.fields.Bytes()
		return new(big.Int).SetBytes(b[:])
	})
	return new(big.Int).Set(n)
}

func (u *BytesUUID) URN() string {
	return urnPrefix + u.String()
}

func (u *BytesUUID) Variant() Variant {
	return u.fields.Variant()
}

func (u *BytesUUID) Version() (int, bool) {
	return u.fields.Version()
}

func (u *BytesUUID) Timestamp() (string, error) {
	return u.fields.Timestamp()
}

func (u *BytesUUID) DateTime() (time.Time, error) {
	r := u.dateTime.get(func() dateTimeResult {
		t, err := dateTimeOf(u.fields)
		return dateTimeResult{t: t, err: err}
	})
	return r.t, r.err
}

func (u *BytesUUID) Compare(other UUID) int {
	return Compare(u, other)
}

func (u *BytesUUID) Equal(other any) bool {
	return equal(u, other)
}

func (u *BytesUUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *BytesUUID) MarshalBinary() ([]byte, error) {
	b := u.fields.Bytes()
	return b[:], nil
}

func (u *BytesUUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// StringUUID is a UUID held as its canonical string. The bytes are decoded
// on first use.
type StringUUID struct {
	fields *StringFields

	hex      cell[string]
	integer  cell[*big.Int]
	dateTime cell[dateTimeResult]
}

// FromString returns a UUID backed by the canonical string s. See
// NewStringFields for the accepted forms.
func FromString(s string) (*StringUUID, error) {
	f, err := NewStringFields(s)
	if err != nil {
		return nil, err
	}
	return newStringUUID(f), nil
}

func newStringUUID(f *StringFields) *StringUUID {
	return &StringUUID{fields: f}
}

func (u *StringUUID) Fields() Fields {
	return u.fields
}

func (u *StringUUID) Bytes() [Size]byte {
	return u.fields.Bytes()
}

func (u *StringUUID) String() string {
	return u.fields.Value()
}

func (u *StringUUID) Hex() string {
	return u.hex.get(func() string {
		return strings.ReplaceAll(u.fields.Value(), "-", "")
	})
}

// Integer returns the UUID as an unsigned 128-bit integer. The result is a
// fresh copy the caller may modify.
func (u *StringUUID) Integer() *big.Int {
	n := u.integer.get(func() *big.Int {
		n, _ := new(big.Int).SetString(u.Hex(), 16)
		return n
	})
	return new(big.Int).Set(n)
}

func (u *StringUUID) URN() string {
	return urnPrefix + u.String()
}

func (u *StringUUID) Variant() Variant {
	return u.fields.Variant()
}

func (u *StringUUID) Version() (int, bool) {
	return u.fields.Version()
}

func (u *StringUUID) Timestamp() (string, error) {
	return u.fields.Timestamp()
}

func (u *StringUUID) DateTime() (time.Time, error) {
	r := u.dateTime.get(func() dateTimeResult {
		t, err := dateTimeOf(u.fields)
		return dateTimeResult{t: t, err: err}
	})
	return r.t, r.err
}

func (u *StringUUID) Compare(other UUID) int {
	return Compare(u, other)
}

func (u *StringUUID) Equal(other any) bool {
	return equal(u, other)
}

func (u *StringUUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *StringUUID) MarshalBinary() ([]byte, error) {
	b := u.fields.Bytes()
	return b[:], nil
}

func (u *StringUUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}
