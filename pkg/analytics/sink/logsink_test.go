package sink

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teavault/storefront-analytics/pkg/analytics/log"
)

func captureRootLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := log.RootLogger.Out
	log.RootLogger.SetOutput(&buf)
	t.Cleanup(func() {
		log.RootLogger.SetOutput(prev)
	})

	return &buf
}

func TestLogSinkWritesFlattenedRecord(t *testing.T) {
	buf := captureRootLogger(t)

	logSink := NewLogSink()
	logSink.now = func() time.Time {
		return time.Date(2026, 2, 13, 23, 31, 30, 123e6, time.UTC)
	}

	logSink.Record("video_play", map[string]any{
		"video_id":    "tea-brewing-guide",
		"video_title": "Brewing Guide",
	})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "video_play", record["event"])
	assert.Equal(t, "2026-02-13T23:31:30.123Z", record["timestamp"])
	assert.Equal(t, "tea-brewing-guide", record["video_id"])
	assert.Equal(t, "Brewing Guide", record["video_title"])
}

func TestLogSinkWritesOneRecordPerEvent(t *testing.T) {
	buf := captureRootLogger(t)

	logSink := NewLogSink()
	logSink.Record("form_start", nil)
	logSink.Record("form_submit", nil)

	dec := json.NewDecoder(buf)

	records := 0
	for dec.More() {
		var record map[string]any
		require.NoError(t, dec.Decode(&record))
		records++
	}

	assert.Equal(t, 2, records)
}
