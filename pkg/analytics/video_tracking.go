package analytics

import (
	"fmt"
	"math"
)

// TrackVideoPlay fires on every play or resume; repeated plays are not
// deduplicated.
func (e *Emitter) TrackVideoPlay(videoTitle, videoID string, currentTime float64) {
	e.Emit("video_play", map[string]any{
		"event_category":       CategoryVideo,
		"event_label":          videoTitle,
		"video_id":             videoID,
		"video_title":          videoTitle,
		"video_current_time":   roundSeconds(currentTime),
		"engagement_time_msec": engagementMsec(currentTime),
	})
}

// TrackVideoPause carries the percent complete at the moment of the pause.
// The percent is rounded here, unlike the floored milestone comparison in
// the engagement session.
func (e *Emitter) TrackVideoPause(videoTitle, videoID string, currentTime, duration float64) {
	percentComplete := 0
	if duration > 0 {
		percentComplete = int(math.Round(currentTime / duration * 100))
	}

	e.Emit("video_pause", map[string]any{
		"event_category":       CategoryVideo,
		"event_label":          videoTitle,
		"video_id":             videoID,
		"video_title":          videoTitle,
		"video_current_time":   roundSeconds(currentTime),
		"video_duration":       roundSeconds(duration),
		"video_percent":        percentComplete,
		"engagement_time_msec": engagementMsec(currentTime),
	})
}

func (e *Emitter) TrackVideoProgress(videoTitle, videoID string, currentTime, duration float64, milestone int) {
	e.Emit("video_progress", map[string]any{
		"event_category":       CategoryVideo,
		"event_label":          fmt.Sprintf("%s - %d%% complete", videoTitle, milestone),
		"video_id":             videoID,
		"video_title":          videoTitle,
		"video_current_time":   roundSeconds(currentTime),
		"video_duration":       roundSeconds(duration),
		"video_percent":        milestone,
		"progress_milestone":   milestone,
		"engagement_time_msec": engagementMsec(currentTime),
	})
}

func (e *Emitter) TrackVideoComplete(videoTitle, videoID string, duration float64) {
	e.Emit("video_complete", map[string]any{
		"event_category":       CategoryVideo,
		"event_label":          videoTitle,
		"video_id":             videoID,
		"video_title":          videoTitle,
		"video_duration":       roundSeconds(duration),
		"video_percent":        100,
		"engagement_time_msec": engagementMsec(duration),
	})
}

func (e *Emitter) TrackVideoSeek(videoTitle, videoID string, fromTime, toTime float64) {
	e.Emit("video_seek", map[string]any{
		"event_category":     CategoryVideo,
		"event_label":        videoTitle,
		"video_id":           videoID,
		"video_title":        videoTitle,
		"video_current_time": roundSeconds(toTime),
		"seek_from_time":     roundSeconds(fromTime),
		"seek_to_time":       roundSeconds(toTime),
	})
}

func roundSeconds(seconds float64) int {
	return int(math.Round(seconds))
}

// engagementMsec is the rounded playback seconds scaled to the integer
// millisecond field the downstream sink expects. The seconds are rounded
// before scaling, so sub-second playback never reaches the millisecond
// value.
func engagementMsec(seconds float64) int {
	return int(math.Round(float64(roundSeconds(seconds)) * 1000))
}
