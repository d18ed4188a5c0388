package uuid

import "strconv"

// StringFields reads fields out of the canonical string form. The string
// already delimits every subfield, so subfields are plain substrings and
// only Bytes needs real decoding.
type StringFields struct {
	value string

	bytes     cell[[Size]byte]
	variant   cell[Variant]
	version   cell[versionResult]
	clockSeq  cell[string]
	timestamp cell[timestampResult]
}

// NewStringFields accepts the canonical 8-4-4-4-12 lowercase form, including
// the nil and max UUIDs. Uppercase digits, braces and "urn:uuid:" prefixes
// are rejected; normalize before calling if needed.
func NewStringFields(s string) (*StringFields, error) {
	if !isCanonical(s) {
		return nil, &InvalidFormatError{Input: s}
	}
	return newStringFields(s), nil
}

func newStringFields(s string) *StringFields {
	return &StringFields{value: s}
}

// Value returns the canonical string the fields were parsed from.
func (f *StringFields) Value() string {
	return f.value
}

func (f *StringFields) Bytes() [Size]byte {
	return f.bytes.get(func() [Size]byte {
		return decodeCanonical(f.value)
	})
}

func (f *StringFields) IsNil() bool {
	return f.value == nilString
}

func (f *StringFields) IsMax() bool {
	return f.value == maxString
}

func (f *StringFields) sentinel() bool {
	return f.IsNil() || f.IsMax()
}

func (f *StringFields) Variant() Variant {
	return f.variant.get(func() Variant {
		return variantOf(f.sentinel(), fromHexChar(f.value[19]))
	})
}

func (f *StringFields) Version() (int, bool) {
	r := f.version.get(func() versionResult {
		v, ok := versionOf(f.sentinel(), f.Variant(), fromHexChar(f.value[14]))
		return versionResult{version: v, ok: ok}
	})
	return r.version, r.ok
}

func (f *StringFields) ClockSeq() string {
	return f.clockSeq.get(func() string {
		// validated as four hex digits, so this cannot fail
		raw, _ := strconv.ParseUint(f.value[19:23], 16, 16)
		return clockSeqHex(f.IsNil(), f.IsMax(), uint16(raw))
	})
}

func (f *StringFields) TimeLow() string {
	return f.value[0:8]
}

func (f *StringFields) TimeMid() string {
	return f.value[9:13]
}

func (f *StringFields) TimeHiAndVersion() string {
	return f.value[14:18]
}

func (f *StringFields) ClockSeqHiAndReserved() string {
	return f.value[19:21]
}

func (f *StringFields) ClockSeqLow() string {
	return f.value[21:23]
}

func (f *StringFields) Node() string {
	return f.value[24:36]
}

func (f *StringFields) Timestamp() (string, error) {
	r := f.timestamp.get(func() timestampResult {
		v, ok := f.Version()
		ts, err := assembleTimestamp("timestamp", v, ok, f)
		return timestampResult{hex: ts, err: err}
	})
	return r.hex, r.err
}
