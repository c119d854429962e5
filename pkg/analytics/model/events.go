package model

import "time"

const isoTimestampLayout = "2006-01-02T15:04:05.000Z"

// Event model. One record per tracked occurrence; the timestamp is the
// emission instant, never caller supplied.
type Event struct {
	Name       string
	Timestamp  time.Time
	Parameters map[string]any
}

// Make an event. The parameter map is copied so a caller mutating it after
// emission cannot alter the record.
func NewEvent(name string, parameters map[string]any, timestamp time.Time) Event {
	params := make(map[string]any, len(parameters))
	for k, v := range parameters {
		params[k] = v
	}

	return Event{
		Name:       name,
		Timestamp:  timestamp,
		Parameters: params,
	}
}

// Flatten renders the event as a queue record: every parameter alongside the
// event name and the ISO-8601 emission timestamp in one mapping.
func (e Event) Flatten() map[string]any {
	record := make(map[string]any, len(e.Parameters)+2)

	for k, v := range e.Parameters {
		record[k] = v
	}

	record["event"] = e.Name
	record["timestamp"] = e.ISOTimestamp()

	return record
}

// ISOTimestamp formats the emission instant with millisecond precision in
// UTC, e.g. 2026-08-30T10:15:30.123Z.
func (e Event) ISOTimestamp() string {
	return e.Timestamp.UTC().Format(isoTimestampLayout)
}
