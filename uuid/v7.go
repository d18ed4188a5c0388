package uuid

import (
	"crypto/rand"
	"errors"
	"io"
	"time"
)

var ErrTimeOverflow = errors.New("uuid: timestamp overflow, cannot generate")

const maxUnixMilli = int64(0xFFFF_FFFF_FFFF) // maximum 48-bit value

// NewV7 generates a version 7 UUID from the current time and crypto/rand.
//
// The bit layout is
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                           unix_ts_ms                          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|          unix_ts_ms           |  ver  |       rand_a          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|var|                        rand_b                             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                            rand_b                             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// Every call draws a fresh 74 bits of randomness; there is no monotonic
// counter within a millisecond.
func NewV7() (*BytesUUID, error) {
	return newV7(time.Now(), rand.Reader)
}

func newV7(now time.Time, r io.Reader) (*BytesUUID, error) {
	ms := now.UnixMilli()
	if ms < 0 || ms > maxUnixMilli {
		return nil, ErrTimeOverflow
	}
	ts := uint64(ms)

	var b [Size]byte
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)

	if _, err := io.ReadFull(r, b[6:]); err != nil {
		return nil, err
	}

	b[6] = (b[6] & 0x0F) | (V7 << 4)
	b[8] = (b[8] & 0x3F) | (0x02 << 6)

	return newBytesUUID(newBytesFields(b)), nil
}
