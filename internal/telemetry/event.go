package telemetry

import (
	"time"
)

type event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	UserID      string      `json:"user_id,omitempty"`
	Time        time.Time   `json:"time"`
	ExecutionID string      `json:"execution_id"`
	Command     string      `json:"command"`
	Version     string      `json:"version"`
	Data        []EventData `json:"data,omitempty"`
}

// EventData holds additional event information
type EventData struct {
	Key   EventDataKey `json:"key"`
	Value interface{}  `json:"value"`
}

// EventType is a cli event type
type EventType string

// set of supported cli event types
const (
	EventTypeCommandStart    EventType = "COMMAND_START"
	EventTypeCommandComplete EventType = "COMMAND_COMPLETE"
	EventTypeCommandError    EventType = "COMMAND_ERROR"
)

// EventDataKey is the key of an event data entry
type EventDataKey string

// set of event data keys
const (
	EventDataKeyError EventDataKey = "err"
	EventDataKeyRoute EventDataKey = "route"
)

func (data EventData) value() interface{} {
	if err, ok := data.Value.(error); ok {
		return err.Error()
	}
	return data.Value
}
