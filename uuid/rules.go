package uuid

import (
	"encoding/binary"
	"encoding/hex"
)

// Masks applied to the high nibble of clock_seq_hi_and_reserved.
const (
	variantMask3 = 0b1110
	variantMask2 = 0b1100

	variantBitsFuture    = 0b1110
	variantBitsMicrosoft = 0b1100
	variantBitsRFC4122   = 0b1000
)

// clockSeqMask clears the two variant bits from the 16-bit clock sequence.
const clockSeqMask = 0x3fff

// timeFields is the subset of Fields the timestamp is assembled from.
type timeFields interface {
	TimeLow() string
	TimeMid() string
	TimeHiAndVersion() string
}

// variantOf classifies a UUID by the high nibble of
// clock_seq_hi_and_reserved. RFC 4122 defines the nil and max UUIDs itself,
// so both sentinels report VariantRFC4122 whatever their bits say.
func variantOf(sentinel bool, nibble byte) Variant {
	if sentinel {
		return VariantRFC4122
	}

	switch {
	case nibble&variantMask3 == variantBitsFuture:
		return VariantFuture
	case nibble&variantMask3 == variantBitsMicrosoft:
		return VariantMicrosoft
	case nibble&variantMask2 == variantBitsRFC4122:
		return VariantRFC4122
	default:
		return VariantNCS
	}
}

// versionOf returns the high nibble of time_hi_and_version for RFC 4122
// UUIDs other than nil and max. Nibbles outside 1-8 are returned as they are.
func versionOf(sentinel bool, variant Variant, nibble byte) (int, bool) {
	if sentinel || variant != VariantRFC4122 {
		return 0, false
	}
	return int(nibble), true
}

// clockSeqHex formats the 14-bit clock sequence as four hex digits. The max
// UUID keeps all sixteen bits.
func clockSeqHex(isNil, isMax bool, raw uint16) string {
	switch {
	case isMax:
		return "ffff"
	case isNil:
		return "0000"
	}

	var b [2]byte
	binary.BigEndian.PutUint16(b[:], raw&clockSeqMask)
	return hex.EncodeToString(b[:])
}

func isTimeBased(version int, ok bool) bool {
	if !ok {
		return false
	}
	switch version {
	case V1, V2, V6, V7:
		return true
	}
	return false
}

// assembleTimestamp rebuilds the 60-bit timestamp as 15 hex digits.
//
// The top digit of time_hi_and_version is the version, so dropping it from the
// four-digit field is the same as masking with 0x0fff.
//
//	v1: time_hi | time_mid | time_low
//	v2: time_hi | time_mid | 00000000 (time_low holds the local identifier)
//	v6: time_low | time_mid | time_hi
//	v7: 000 | time_low | time_mid (48-bit Unix milliseconds)
func assembleTimestamp(op string, version int, ok bool, f timeFields) (string, error) {
	if !isTimeBased(version, ok) {
		return "", &UnsupportedOperationError{Op: op, Version: version, HasVersion: ok}
	}

	switch version {
	case V1:
		return f.TimeHiAndVersion()[1:] + f.TimeMid() + f.TimeLow(), nil
	case V2:
		return f.TimeHiAndVersion()[1:] + f.TimeMid() + "00000000", nil
	case V6:
		return f.TimeLow() + f.TimeMid() + f.TimeHiAndVersion()[1:], nil
	default:
		return "000" + f.TimeLow() + f.TimeMid(), nil
	}
}

// fromHexChar returns the value of a lowercase hex digit. Callers only pass
// characters that have already been validated.
func fromHexChar(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	}
	return 0
}
