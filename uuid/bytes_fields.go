package uuid

import (
	"encoding/binary"
	"encoding/hex"
)

// BytesFields reads fields out of the 16-byte binary form.
type BytesFields struct {
	bytes [Size]byte

	variant   cell[Variant]
	version   cell[versionResult]
	clockSeq  cell[string]
	timestamp cell[timestampResult]

	timeLow               cell[string]
	timeMid               cell[string]
	timeHiAndVersion      cell[string]
	clockSeqHiAndReserved cell[string]
	clockSeqLow           cell[string]
	node                  cell[string]
}

// NewBytesFields copies b, which must be exactly Size bytes long. Any bit
// pattern is accepted.
func NewBytesFields(b []byte) (*BytesFields, error) {
	if len(b) != Size {
		return nil, &MalformedInputError{Length: len(b)}
	}

	var buf [Size]byte
	copy(buf[:], b)
	return newBytesFields(buf), nil
}

func newBytesFields(b [Size]byte) *BytesFields {
	return &BytesFields{bytes: b}
}

func (f *BytesFields) Bytes() [Size]byte {
	return f.bytes
}

func (f *BytesFields) IsNil() bool {
	return f.bytes == nilBytes
}

func (f *BytesFields) IsMax() bool {
	return f.bytes == maxBytes
}

func (f *BytesFields) sentinel() bool {
	return f.IsNil() || f.IsMax()
}

func (f *BytesFields) Variant() Variant {
	return f.variant.get(func() Variant {
		return variantOf(f.sentinel(), f.bytes[8]>>4)
	})
}

func (f *BytesFields) Version() (int, bool) {
	r := f.version.get(func() versionResult {
		v, ok := versionOf(f.sentinel(), f.Variant(), f.bytes[6]>>4)
		return versionResult{version: v, ok: ok}
	})
	return r.version, r.ok
}

func (f *BytesFields) ClockSeq() string {
	return f.clockSeq.get(func() string {
		return clockSeqHex(f.IsNil(), f.IsMax(), binary.BigEndian.Uint16(f.bytes[8:10]))
	})
}

func (f *BytesFields) TimeLow() string {
	return f.timeLow.get(func() string { return hex.EncodeToString(f.bytes[0:4]) })
}

func (f *BytesFields) TimeMid() string {
	return f.timeMid.get(func() string { return hex.EncodeToString(f.bytes[4:6]) })
}

func (f *BytesFields) TimeHiAndVersion() string {
	return f.timeHiAndVersion.get(func() string { return hex.EncodeToString(f.bytes[6:8]) })
}

func (f *BytesFields) ClockSeqHiAndReserved() string {
	return f.clockSeqHiAndReserved.get(func() string { return hex.EncodeToString(f.bytes[8:9]) })
}

func (f *BytesFields) ClockSeqLow() string {
	return f.clockSeqLow.get(func() string { return hex.EncodeToString(f.bytes[9:10]) })
}

func (f *BytesFields) Node() string {
	return f.node.get(func() string { return hex.EncodeToString(f.bytes[10:16]) })
}

func (f *BytesFields) Timestamp() (string, error) {
	r := f.timestamp.get(func() timestampResult {
		v, ok := f.Version()
		ts, err := assembleTimestamp("timestamp", v, ok, f)
		return timestampResult{hex: ts, err: err}
	})
	return r.hex, r.err
}
