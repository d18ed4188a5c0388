package uuid

import (
	"strconv"
	"time"
)

const (
	// seconds from 1582-10-15T00:00:00Z, the Gregorian reform, to the Unix epoch
	gregorianToUnixSeconds = 12_219_292_800
	ticksPerSecond         = 10_000_000 // 100 ns ticks
	nanosecondsPerTick     = 100

	minYear = 0
	maxYear = 9999
)

type dateTimeResult struct {
	t   time.Time
	err error
}

// dateTimeOf interprets the timestamp of f as an instant in UTC. Versions 1, 2
// and 6 count 100 ns ticks since the Gregorian reform; version 7 counts Unix
// milliseconds.
func dateTimeOf(f Fields) (time.Time, error) {
	version, ok := f.Version()
	if !isTimeBased(version, ok) {
		return time.Time{}, &UnsupportedOperationError{Op: "date-time", Version: version, HasVersion: ok}
	}

	ts, err := f.Timestamp()
	if err != nil {
		return time.Time{}, err
	}

	return dateTime(version, ts)
}

func dateTime(version int, timestamp string) (time.Time, error) {
	// at most 60 bits, so this fits
	n, err := strconv.ParseUint(timestamp, 16, 64)
	if err != nil {
		return time.Time{}, err
	}

	var t time.Time
	if version == V7 {
		t = time.UnixMilli(int64(n)).UTC()
	} else {
		sec := int64(n/ticksPerSecond) - gregorianToUnixSeconds
		nsec := int64(n%ticksPerSecond) * nanosecondsPerTick
		t = time.Unix(sec, nsec).UTC()
	}

	if y := t.Year(); y < minYear || y > maxYear {
		return time.Time{}, &DateTimeError{Version: version, Timestamp: timestamp}
	}
	return t, nil
}
