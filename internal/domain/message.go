package domain

import "time"

type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Read        bool      `json:"read"`
}

// Conversation pairs the current user with one participant. Its messages are
// derived from the message collection, not stored on it.
type Conversation struct {
	ID            string `json:"id"`
	ParticipantID string `json:"participant_id"`
	LastMessageID string `json:"last_message_id"`
	UnreadCount   int    `json:"unread_count"`
}
