package analytics

import (
	"github.com/teavault/storefront-analytics/pkg/analytics/log"
	"github.com/teavault/storefront-analytics/pkg/analytics/sink"
)

// Event categories used across the taxonomy.
const (
	CategoryNavigation = "navigation"
	CategoryEngagement = "engagement"
	CategoryEcommerce  = "ecommerce"
	CategoryVideo      = "video"
	CategoryOutbound   = "outbound_link"
	CategoryCTA        = "cta"
)

// DefaultOrigin is the site origin used for page_view locations when no
// configuration overrides it.
const DefaultOrigin = "https://teavault.example.com"

type (
	EmitterOpt func(e *Emitter)
)

// Emitter is the single choke point through which every tracked interaction
// reaches the configured sinks. Emission is synchronous, in signal order,
// and fire-and-forget: nothing an emitter does can fail the user-facing
// action that triggered it.
type Emitter struct {
	sinks  []sink.Sink
	origin string
}

func NewEmitter(opts ...EmitterOpt) *Emitter {
	e := &Emitter{
		origin: DefaultOrigin,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// WithSink registers a downstream sink. A nil sink is treated as absent and
// skipped, so callers can pass optional capabilities unconditionally.
func WithSink(s sink.Sink) EmitterOpt {
	return func(e *Emitter) {
		if s != nil {
			e.sinks = append(e.sinks, s)
		}
	}
}

// WithOrigin sets the site origin prefixed to page paths in page_view
// events.
func WithOrigin(origin string) EmitterOpt {
	return func(e *Emitter) {
		if origin != "" {
			e.origin = origin
		}
	}
}

// Emit dispatches an event to every configured sink. Each sink is guarded
// individually: one failing or panicking sink is logged and skipped while
// the others still receive the event, and no error ever reaches the caller.
func (e *Emitter) Emit(name string, parameters map[string]any) {
	if parameters == nil {
		parameters = map[string]any{}
	}

	for _, s := range e.sinks {
		e.record(s, name, parameters)
	}
}

func (e *Emitter) record(s sink.Sink, name string, parameters map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("sink failed recording event %s: %v", name, r)
		}
	}()

	s.Record(name, parameters)
}
