package ws

import (
	"encoding/json"
	"strconv"
	"sync/atomic"
)

// MessageEvent is the frame pushed to subscribers of a thread.
type MessageEvent struct {
	Type             string      `json:"type"`
	ContactRequestID string      `json:"contact_request_id"`
	Message          interface{} `json:"message"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyThreadMessage publishes a new thread message to the default hub.
// It is a no-op when no hub is running (e.g. in tests).
func NotifyThreadMessage(contactRequestID int, message interface{}) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	threadID := strconv.Itoa(contactRequestID)
	evt := MessageEvent{
		Type:             "message",
		ContactRequestID: threadID,
		Message:          message,
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.BroadcastToThread(threadID, payload)
}
