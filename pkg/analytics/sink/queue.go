package sink

import (
	"sync"
	"time"

	"github.com/teavault/storefront-analytics/pkg/analytics/model"
)

// QueueSink is the append-only event queue: every record is the caller's
// parameters flattened alongside the event name and an ISO-8601 timestamp
// stamped at the moment of the append. Records are kept in arrival order and
// never coalesced or deduplicated.
//
// Most dispatch happens synchronously on the goroutine that observed the
// triggering signal, but the download trigger delivers its completion from a
// timer goroutine, so the queue guards its slice.
type QueueSink struct {
	mu     sync.Mutex
	now    func() time.Time
	events []model.Event
}

func NewQueueSink() *QueueSink {
	return &QueueSink{now: time.Now}
}

func (s *QueueSink) Record(name string, parameters map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, model.NewEvent(name, parameters, s.now()))
}

// Records returns the flattened queue contents in append order.
func (s *QueueSink) Records() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]map[string]any, 0, len(s.events))

	for _, e := range s.events {
		records = append(records, e.Flatten())
	}

	return records
}

func (s *QueueSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.events)
}
