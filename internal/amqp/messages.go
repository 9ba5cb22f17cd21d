package amqp

import (
	"encoding/json"
	"time"
)

// LedgerChangeMessage announces that a store mutation happened. It
// carries only identifiers; consumers reload the blobs themselves, so
// a lost message costs nothing once the next one arrives.
type LedgerChangeMessage struct {
	Entity    string    `json:"entity"` // "transaction" or "goal"
	Action    string    `json:"action"` // "created", "updated", "deleted"
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewLedgerChangeMessage(entity, action, id string) *LedgerChangeMessage {
	return &LedgerChangeMessage{
		Entity:    entity,
		Action:    action,
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *LedgerChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func LedgerChangeMessageFromJSON(data []byte) (*LedgerChangeMessage, error) {
	var msg LedgerChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
