package domain

import "time"

// Message is the envelope broadcast to websocket clients and carried on the
// broker. Topic is "<entity>.<action>"; Data stays untyped so producers can
// forward whatever projection suits the action.
type Message struct {
	Topic      string            `json:"topic"`
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}
