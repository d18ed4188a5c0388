package uuid

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkNewV7(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = NewV7()
	}
}

func TestNewV7(t *testing.T) {
	n := 10_000
	timestamps := make([]time.Time, n)

	start := time.Now().Truncate(time.Millisecond)

	for i := 0; i < n; i++ {
		u, err := NewV7()
		require.NoError(t, err)

		v, ok := u.Version()
		require.True(t, ok)
		require.Equal(t, V7, v)
		require.Equal(t, VariantRFC4122, u.Variant())

		ts, err := u.DateTime()
		require.NoError(t, err)
		timestamps[i] = ts
	}

	stop := time.Now()

	assert.IsNonDecreasing(t, timestamps)
	assert.WithinDuration(t, start, timestamps[0], 1*time.Millisecond)
	assert.WithinDuration(t, stop, timestamps[n-1], 1*time.Millisecond)
}

func TestNewV7Layout(t *testing.T) {
	now := time.UnixMilli(1663124380547)
	random := bytes.Repeat([]byte{0xff}, 10)

	u, err := newV7(now, bytes.NewReader(random))
	require.NoError(t, err)

	assert.Equal(t, "018339f0-1b83-7fff-bfff-ffffffffffff", u.String())

	ts, err := u.Timestamp()
	require.NoError(t, err)
	assert.Equal(t, "000018339f01b83", ts)

	dt, err := u.DateTime()
	require.NoError(t, err)
	assert.True(t, now.Equal(dt))
}

func TestNewV7Overflow(t *testing.T) {
	_, err := newV7(time.UnixMilli(maxUnixMilli+1), bytes.NewReader(make([]byte, 10)))
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = newV7(time.UnixMilli(-1), bytes.NewReader(make([]byte, 10)))
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestNewV7ShortRead(t *testing.T) {
	_, err := newV7(time.Now(), bytes.NewReader(make([]byte, 3)))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
