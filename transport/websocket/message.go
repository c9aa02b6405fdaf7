package websocket

import (
	"encoding/json"
)

const (
	actionPing  = "ping"
	actionReady = "ready"
	actionMove  = "move"
	actionLeave = "leave"
)

// Message - inbound client action.
// Move coordinates may come inside payload or next to the action.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Row     *int            `json:"row,omitempty"`
	Col     *int            `json:"col,omitempty"`
}

type MovePayload struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

// coordinates - nil values mean the move is malformed.
func (that *Message) coordinates() (*int, *int) {
	if len(that.Payload) > 0 {
		var payload MovePayload
		if err := json.Unmarshal(that.Payload, &payload); err != nil {
			return nil, nil
		}

		if payload.Row != nil || payload.Col != nil {
			return payload.Row, payload.Col
		}
	}

	return that.Row, that.Col
}
