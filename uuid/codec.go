package uuid

import (
	"encoding/hex"
	"regexp"
)

var (
	canonicalPattern = regexp.MustCompile(`\A[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\z`)
	hexPattern       = regexp.MustCompile(`\A[0-9a-f]{32}\z`)

	// offsets of each byte's two hex digits in the canonical string
	canonicalOffsets = [Size]int{0, 2, 4, 6, 9, 11, 14, 16, 19, 21, 24, 26, 28, 30, 32, 34}
)

func encodeCanonical(b [Size]byte) string {
	var buf [StringSize]byte
	hex.Encode(buf[0:8], b[0:4])
	hex.Encode(buf[9:13], b[4:6])
	hex.Encode(buf[14:18], b[6:8])
	hex.Encode(buf[19:23], b[8:10])
	hex.Encode(buf[24:36], b[10:16])
	buf[8] = '-'
	buf[13] = '-'
	buf[18] = '-'
	buf[23] = '-'
	return string(buf[:])
}

// decodeCanonical converts a validated canonical string to its 16 bytes.
func decodeCanonical(s string) [Size]byte {
	var b [Size]byte
	for i, x := range canonicalOffsets {
		b[i] = fromHexChar(s[x])<<4 | fromHexChar(s[x+1])
	}
	return b
}

func isCanonical(s string) bool {
	return s == nilString || s == maxString || canonicalPattern.MatchString(s)
}
