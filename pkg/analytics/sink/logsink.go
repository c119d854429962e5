package sink

import (
	"time"

	"github.com/teavault/storefront-analytics/pkg/analytics/log"
	"github.com/teavault/storefront-analytics/pkg/analytics/model"
)

// LogSink writes each record through the root logger as indented JSON.
// Useful in dry runs and when inspecting what the host pipeline would
// receive.
type LogSink struct {
	now func() time.Time
}

func NewLogSink() *LogSink {
	return &LogSink{now: time.Now}
}

func (s *LogSink) Record(name string, parameters map[string]any) {
	log.Debugf("event %s follows", name)
	log.PrettyPrintJson(model.NewEvent(name, parameters, s.now()).Flatten())
}
