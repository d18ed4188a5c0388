package uuid

import "encoding/binary"

// V6FromV1 reorders a version 1 UUID into version 6: the 60-bit timestamp
// is stored most significant bits first so that values sort by time. The
// clock sequence, node and variant are kept.
func V6FromV1(u UUID) (*BytesUUID, error) {
	if v, ok := u.Version(); !ok || v != V1 {
		return nil, &UnsupportedOperationError{Op: "v6 from v1", Version: v, HasVersion: ok}
	}

	b := u.Bytes()
	ts := uint64(binary.BigEndian.Uint16(b[6:8])&0x0fff)<<48 |
		uint64(binary.BigEndian.Uint16(b[4:6]))<<32 |
		uint64(binary.BigEndian.Uint32(b[0:4]))

	binary.BigEndian.PutUint32(b[0:4], uint32(ts>>28))
	binary.BigEndian.PutUint16(b[4:6], uint16(ts>>12))
	binary.BigEndian.PutUint16(b[6:8], uint16(ts&0x0fff)|V6<<12)

	return newBytesUUID(newBytesFields(b)), nil
}
