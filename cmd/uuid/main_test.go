package main

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/replicate/uuidkit/uuid"
)

const sampleV1 = "ff6f8cb0-c57d-11e1-9b21-0800200c9a66"

func run(t *testing.T, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer

	err := newApp(&out, zap.New(core)).Run(append([]string{"uuid"}, args...))
	return out.String(), logs, err
}

// textFields parses inspect's text output for a single UUID.
func textFields(t *testing.T, out string) map[string]string {
	t.Helper()

	fields := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		parts := strings.Fields(line)
		require.Len(t, parts, 2, line)
		fields[parts[0]] = parts[1]
	}
	return fields
}

func TestInspectText(t *testing.T) {
	out, _, err := run(t, "inspect", sampleV1)
	require.NoError(t, err)

	fields := textFields(t, out)
	assert.Equal(t, sampleV1, fields["uuid"])
	assert.Equal(t, "RFC4122", fields["variant"])
	assert.Equal(t, "1", fields["version"])
	assert.Equal(t, "ff6f8cb0", fields["time_low"])
	assert.Equal(t, "c57d", fields["time_mid"])
	assert.Equal(t, "11e1", fields["time_hi_and_version"])
	assert.Equal(t, "9b", fields["clock_seq_hi_and_reserved"])
	assert.Equal(t, "21", fields["clock_seq_low"])
	assert.Equal(t, "1b21", fields["clock_seq"])
	assert.Equal(t, "0800200c9a66", fields["node"])
	assert.Equal(t, "1e1c57dff6f8cb0", fields["timestamp"])
	assert.Equal(t, "2012-07-04T02:14:34.491Z", fields["date_time"])
	assert.Equal(t, "ff6f8cb0c57d11e19b210800200c9a66", fields["hex"])
	assert.Equal(t, "339532337419071774305803111643925486182", fields["integer"])
	assert.Equal(t, "urn:uuid:"+sampleV1, fields["urn"])
}

func TestInspectNil(t *testing.T) {
	out, logs, err := run(t, "inspect", "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)

	fields := textFields(t, out)
	assert.Equal(t, "-", fields["version"])
	assert.Equal(t, "-", fields["timestamp"])
	assert.Equal(t, "-", fields["date_time"])
	assert.Equal(t, "0000", fields["clock_seq"])

	assert.Equal(t, 1, logs.FilterMessage("no timestamp").Len())
	assert.Equal(t, 1, logs.FilterMessage("no date-time").Len())
}

func TestInspectJSON(t *testing.T) {
	out, _, err := run(t, "inspect", "--json", sampleV1, "16fd27068baf433b82eb8c7fada847da")
	require.NoError(t, err)

	var reports []report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)

	assert.Equal(t, sampleV1, reports[0].UUID)
	require.NotNil(t, reports[0].Version)
	assert.Equal(t, 1, *reports[0].Version)
	assert.Equal(t, "2012-07-04T02:14:34.491Z", reports[0].DateTime)

	assert.Equal(t, "16fd2706-8baf-433b-82eb-8c7fada847da", reports[1].UUID)
	require.NotNil(t, reports[1].Version)
	assert.Equal(t, 4, *reports[1].Version)
	assert.Empty(t, reports[1].Timestamp)
	assert.Empty(t, reports[1].DateTime)
}

func TestInspectPartialFailure(t *testing.T) {
	out, logs, err := run(t, "inspect", "--json", "nope", sampleV1, "FF6F8CB0-C57D-11E1-9B21-0800200C9A66")
	require.EqualError(t, err, "2 of 3 arguments could not be parsed")

	var reports []report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, sampleV1, reports[0].UUID)

	warnings := logs.FilterMessage("cannot parse UUID").All()
	require.Len(t, warnings, 2)
	assert.Equal(t, zapcore.WarnLevel, warnings[0].Level)
	assert.Equal(t, "nope", warnings[0].ContextMap()["input"])
	assert.Equal(t, "FF6F8CB0-C57D-11E1-9B21-0800200C9A66", warnings[1].ContextMap()["input"])
}

func TestInspectRequiresArgs(t *testing.T) {
	_, _, err := run(t, "inspect")
	assert.EqualError(t, err, "at least one UUID is required")
}

func lines(out string) []string {
	return strings.Split(strings.TrimSpace(out), "\n")
}

func TestNewDefaultsToV7(t *testing.T) {
	out, _, err := run(t, "new", "--count", "3")
	require.NoError(t, err)

	ls := lines(out)
	require.Len(t, ls, 3)
	for _, l := range ls {
		u, err := uuid.FromString(l)
		require.NoError(t, err)

		v, ok := u.Version()
		assert.True(t, ok)
		assert.Equal(t, uuid.V7, v)
	}
}

func TestNewVersions(t *testing.T) {
	for _, v := range []int{uuid.V1, uuid.V2, uuid.V4, uuid.V6, uuid.V7} {
		out, _, err := run(t, "new", "--version", strconv.Itoa(v))
		require.NoError(t, err, v)

		u, err := uuid.FromString(strings.TrimSpace(out))
		require.NoError(t, err, v)

		got, ok := u.Version()
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestNewTimestamps(t *testing.T) {
	start := time.Now()

	for _, v := range []int{uuid.V1, uuid.V6, uuid.V7} {
		out, _, err := run(t, "new", "--version", strconv.Itoa(v), "--timestamps", "--count", "3")
		require.NoError(t, err, v)

		for _, l := range lines(out) {
			parts := strings.Fields(l)
			require.Len(t, parts, 2, l)

			dt, err := time.Parse(time.RFC3339Nano, parts[1])
			require.NoError(t, err, l)
			assert.WithinDuration(t, start, dt, time.Minute, l)

			u, err := uuid.FromString(parts[0])
			require.NoError(t, err, l)
			got, err := u.DateTime()
			require.NoError(t, err, l)
			assert.True(t, got.Equal(dt), l)
		}
	}

	// random UUIDs have no date-time, so only the UUID is printed
	out, _, err := run(t, "new", "--version", "4", "--timestamps")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 1)
}

func TestNewNameBased(t *testing.T) {
	out, _, err := run(t, "new", "--version", "5", "--name", "replicate.com", "--count", "2")
	require.NoError(t, err)

	ls := lines(out)
	require.Len(t, ls, 2)
	assert.Equal(t, ls[0], ls[1])

	_, _, err = run(t, "new", "--version", "3")
	assert.EqualError(t, err, "--name is required for version 3")
}

func TestNewInvalid(t *testing.T) {
	_, _, err := run(t, "new", "--count", "-1")
	assert.EqualError(t, err, "count cannot be less than 0")

	_, _, err = run(t, "new", "--version", "8")
	assert.ErrorContains(t, err, "unsupported version 8")
}

func TestNewCountFromEnv(t *testing.T) {
	t.Setenv("UUIDKIT_COUNT", "4")

	out, _, err := run(t, "new")
	require.NoError(t, err)
	assert.Len(t, lines(out), 4)
}
