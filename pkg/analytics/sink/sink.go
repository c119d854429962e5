package sink

// Sink is the capability the emitter is handed at construction time for each
// downstream analytics destination. Record must be treated as
// fire-and-forget; the emitter guards every call and drops failures rather
// than surfacing them to the interaction being tracked.
type Sink interface {
	Record(name string, parameters map[string]any)
}

// RecorderFunc adapts a bare "record named event with a parameter bag"
// function, such as a host page's global analytics pipeline, into a Sink.
type RecorderFunc func(name string, parameters map[string]any)

func (f RecorderFunc) Record(name string, parameters map[string]any) {
	f(name, parameters)
}
