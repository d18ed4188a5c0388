package uuid

// Fields exposes the RFC 4122 subfields of a UUID. Subfields are returned as
// lowercase hex strings of their natural width.
//
// BytesFields and StringFields implement Fields and return identical values
// for the same UUID.
type Fields interface {
	Bytes() [Size]byte

	IsNil() bool
	IsMax() bool

	Variant() Variant
	// Version reports false when the UUID has no version: it is nil, max, or
	// not of the RFC 4122 variant.
	Version() (int, bool)

	TimeLow() string               // 8 digits
	TimeMid() string               // 4 digits
	TimeHiAndVersion() string      // 4 digits
	ClockSeqHiAndReserved() string // 2 digits
	ClockSeqLow() string           // 2 digits
	ClockSeq() string              // 4 digits, variant bits cleared
	Node() string                  // 12 digits

	// Timestamp returns the 60-bit timestamp as 15 hex digits for versions
	// 1, 2, 6 and 7, and an *UnsupportedOperationError otherwise.
	Timestamp() (string, error)
}

var (
	_ Fields = (*BytesFields)(nil)
	_ Fields = (*StringFields)(nil)
)
