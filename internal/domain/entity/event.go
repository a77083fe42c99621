package entity

import (
	"encoding/json"
	"time"
)

// EventType names a store event published after a successful write
type EventType string

const (
	EventOrderPlaced            EventType = "order.placed"
	EventContactMessageReceived EventType = "contact_message.received"
)

// StoreEvent is the envelope published to the event topic
type StoreEvent struct {
	Type       EventType       `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// NewStoreEvent marshals payload into a new event envelope
func NewStoreEvent(eventType EventType, occurredAt time.Time, payload any) (*StoreEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &StoreEvent{Type: eventType, OccurredAt: occurredAt, Payload: raw}, nil
}
