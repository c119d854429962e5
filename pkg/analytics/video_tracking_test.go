package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackVideoPause(t *testing.T) {
	capture := &captureSink{}

	emitter := NewEmitter(WithSink(capture))
	emitter.TrackVideoPause("Brewing Guide", "tea-brewing-guide", 30, 120)

	require.Len(t, capture.names, 1)
	assert.Equal(t, "video_pause", capture.names[0])

	params := capture.params[0]
	assert.Equal(t, CategoryVideo, params["event_category"])
	assert.Equal(t, "Brewing Guide", params["event_label"])
	assert.Equal(t, 25, params["video_percent"])
	assert.Equal(t, 30, params["video_current_time"])
	assert.Equal(t, 120, params["video_duration"])
	assert.Equal(t, 30000, params["engagement_time_msec"])
}

func TestTrackVideoPauseZeroDuration(t *testing.T) {
	capture := &captureSink{}

	emitter := NewEmitter(WithSink(capture))
	emitter.TrackVideoPause("Brewing Guide", "tea-brewing-guide", 10, 0)

	assert.Equal(t, 0, capture.params[0]["video_percent"])
}

func TestTrackVideoPausePercentRounds(t *testing.T) {
	capture := &captureSink{}

	// 50/120 is 41.67%, which rounds up rather than flooring.
	emitter := NewEmitter(WithSink(capture))
	emitter.TrackVideoPause("Brewing Guide", "tea-brewing-guide", 50, 120)

	assert.Equal(t, 42, capture.params[0]["video_percent"])
}

func TestTrackVideoProgressLabel(t *testing.T) {
	capture := &captureSink{}

	emitter := NewEmitter(WithSink(capture))
	emitter.TrackVideoProgress("Brewing Guide", "tea-brewing-guide", 60, 120, 50)

	params := capture.params[0]
	assert.Equal(t, "Brewing Guide - 50% complete", params["event_label"])
	assert.Equal(t, 50, params["video_percent"])
	assert.Equal(t, 50, params["progress_milestone"])
	assert.Equal(t, 60, params["video_current_time"])
}

func TestTrackVideoComplete(t *testing.T) {
	capture := &captureSink{}

	emitter := NewEmitter(WithSink(capture))
	emitter.TrackVideoComplete("Brewing Guide", "tea-brewing-guide", 120)

	params := capture.params[0]
	assert.Equal(t, "video_complete", capture.names[0])
	assert.Equal(t, 100, params["video_percent"])
	assert.Equal(t, 120, params["video_duration"])
	assert.Equal(t, 120000, params["engagement_time_msec"])
}

func TestTrackVideoSeek(t *testing.T) {
	capture := &captureSink{}

	emitter := NewEmitter(WithSink(capture))
	emitter.TrackVideoSeek("Brewing Guide", "tea-brewing-guide", 10.4, 50.3)

	params := capture.params[0]
	assert.Equal(t, "video_seek", capture.names[0])
	assert.Equal(t, 10, params["seek_from_time"])
	assert.Equal(t, 50, params["seek_to_time"])
	assert.Equal(t, 50, params["video_current_time"])
}

func TestEngagementMsecRoundsSecondsFirst(t *testing.T) {
	// Seconds are rounded before scaling to milliseconds, so sub-second
	// playback never reaches the millisecond field.
	assert.Equal(t, 30000, engagementMsec(29.6))
	assert.Equal(t, 29000, engagementMsec(29.4))
	assert.Equal(t, 0, engagementMsec(0))
}

func TestRoundSeconds(t *testing.T) {
	assert.Equal(t, 30, roundSeconds(29.5))
	assert.Equal(t, 29, roundSeconds(29.49))
}
