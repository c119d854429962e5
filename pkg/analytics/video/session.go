// Package video derives discrete, deduplicated engagement events from the
// continuous signals of one mounted media element.
package video

import (
	"math"

	"github.com/teavault/storefront-analytics/pkg/analytics"
)

type playState int

const (
	stateIdle playState = iota
	statePlaying
	statePaused
)

// Progress milestones, evaluated in ascending order on every time update.
// Completion is a separate trigger with its own threshold.
var progressMilestones = []int{25, 50, 75, 90}

const (
	completionMilestone = 100
	completionThreshold = 95

	// Seeks at or under this many seconds are buffering noise, not a
	// viewer gesture.
	seekNoiseSeconds = 2.0
)

// Session holds the engagement state for one media element instance, from
// mount to teardown. Each milestone fires at most once per session; the
// memory is discarded on Close and a fresh session starts from zero.
//
// Signals arrive one at a time on the UI goroutine, so the session carries
// no locking.
type Session struct {
	emitter *analytics.Emitter
	videoID string
	title   string

	state          playState
	milestones     map[int]bool
	lastSeekAnchor float64
	closed         bool
}

// NewSession creates the session for a freshly mounted media element. The
// owner of the element owns the session and must Close it on unmount or
// when the media source changes identity.
func NewSession(emitter *analytics.Emitter, videoID, videoTitle string) *Session {
	return &Session{
		emitter:    emitter,
		videoID:    videoID,
		title:      videoTitle,
		milestones: make(map[int]bool),
	}
}

// Close tears the session down. All milestone and seek memory is discarded
// and every further signal is ignored.
func (s *Session) Close() {
	s.closed = true
	s.state = stateIdle
	s.milestones = nil
	s.lastSeekAnchor = 0
}

// OnTimeUpdate evaluates progress milestones for the new position. Several
// milestones may fire from one update when the position jumped; they are
// emitted synchronously in ascending order before control returns.
// Completion is checked independently at its own threshold, so the 90%
// milestone and completion can both fire from the same update.
//
// With no usable duration nothing is evaluated; milestone state catches up
// naturally once the duration becomes known.
func (s *Session) OnTimeUpdate(current, total float64) {
	if s.closed || total <= 0 {
		return
	}

	percent := int(math.Floor(current / total * 100))

	for _, milestone := range progressMilestones {
		if percent >= milestone && !s.milestones[milestone] {
			s.milestones[milestone] = true
			s.emitter.TrackVideoProgress(s.title, s.videoID, current, total, milestone)
		}
	}

	if percent >= completionThreshold && !s.milestones[completionMilestone] {
		s.milestones[completionMilestone] = true
		s.emitter.TrackVideoComplete(s.title, s.videoID, total)
	}
}

// OnPlay fires on every play or resume, including repeated plays after a
// pause.
func (s *Session) OnPlay(current float64) {
	if s.closed {
		return
	}

	s.state = statePlaying
	s.emitter.TrackVideoPlay(s.title, s.videoID, current)
}

func (s *Session) OnPause(current, total float64) {
	if s.closed {
		return
	}

	s.state = statePaused
	s.emitter.TrackVideoPause(s.title, s.videoID, current, total)
}

// OnSeekStart records the position the seek gesture left from. No event is
// emitted until the seek completes.
func (s *Session) OnSeekStart(current float64) {
	if s.closed {
		return
	}

	s.lastSeekAnchor = current
}

// OnSeekEnd emits a seek event when the jump exceeds the noise threshold.
// The anchor moves to the landing position whether or not an event fired.
func (s *Session) OnSeekEnd(current float64) {
	if s.closed {
		return
	}

	if math.Abs(current-s.lastSeekAnchor) > seekNoiseSeconds {
		s.emitter.TrackVideoSeek(s.title, s.videoID, s.lastSeekAnchor, current)
	}

	s.lastSeekAnchor = current
}

// Playing reports whether the last lifecycle signal was a play.
func (s *Session) Playing() bool {
	return s.state == statePlaying
}

// MilestonesReached counts the milestones hit so far, completion included,
// out of the five the session tracks.
func (s *Session) MilestonesReached() int {
	return len(s.milestones)
}
