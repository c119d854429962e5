package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEventDefaultsNilParameters(t *testing.T) {
	event := NewEvent("page_view", nil, time.Now())

	assert.NotNil(t, event.Parameters)
	assert.Empty(t, event.Parameters)
}

func TestNewEventCopiesParameters(t *testing.T) {
	params := map[string]any{"page_path": "/"}
	event := NewEvent("page_view", params, time.Now())

	// Mutating the caller's map after emission must not alter the record.
	params["page_path"] = "/products"

	assert.Equal(t, "/", event.Parameters["page_path"])
}

func TestFlattenMergesNameAndTimestamp(t *testing.T) {
	at := time.Date(2026, 2, 13, 23, 31, 30, 500e6, time.UTC)
	event := NewEvent("video_play", map[string]any{
		"video_id":           "tea-brewing-guide",
		"video_current_time": 12,
	}, at)

	record := event.Flatten()

	assert.Equal(t, "video_play", record["event"])
	assert.Equal(t, "2026-02-13T23:31:30.500Z", record["timestamp"])
	assert.Equal(t, "tea-brewing-guide", record["video_id"])
	assert.Equal(t, 12, record["video_current_time"])
	assert.Len(t, record, 4)
}

func TestISOTimestampNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	event := NewEvent("page_view", nil, time.Date(2026, 2, 13, 18, 31, 30, 0, loc))

	assert.Equal(t, "2026-02-13T23:31:30.000Z", event.ISOTimestamp())
}
