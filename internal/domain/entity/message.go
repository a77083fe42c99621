package entity

import "time"

// MessageType classifies why a visitor wrote in
type MessageType string

const (
	MessageTypeWholesale MessageType = "wholesale"
	MessageTypeRetail    MessageType = "retail"
	MessageTypeQuestion  MessageType = "question"
	MessageTypeOther     MessageType = "other"
)

// IsValid reports whether t is one of the known message types
func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeWholesale, MessageTypeRetail, MessageTypeQuestion, MessageTypeOther:
		return true
	default:
		return false
	}
}

// ReadFilter selects messages by their read flag
type ReadFilter string

const (
	ReadFilterAll    ReadFilter = "all"
	ReadFilterRead   ReadFilter = "read"
	ReadFilterUnread ReadFilter = "unread"
)

// ContactMessage is a message left through the contact form
type ContactMessage struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Message   string      `json:"message"`
	Type      MessageType `json:"type"`
	Read      bool        `json:"read"`
	CreatedAt time.Time   `json:"createdAt"`
}

// MessageInput is the validated contact form
type MessageInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Type    MessageType
}
