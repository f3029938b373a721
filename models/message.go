package models

import "time"

// Conversation links exactly two participants, typically renter and host,
// anchored to a listing.
type Conversation struct {
	ID             string    `json:"id"`
	ListingID      string    `json:"listing_id"`
	ParticipantIDs [2]string `json:"participant_ids"`
	CreatedAt      time.Time `json:"created_at"`
}

// HasParticipant reports whether the user belongs to the conversation.
func (c Conversation) HasParticipant(userID string) bool {
	return c.ParticipantIDs[0] == userID || c.ParticipantIDs[1] == userID
}

// Counterpart returns the other participant's id.
func (c Conversation) Counterpart(userID string) string {
	if c.ParticipantIDs[0] == userID {
		return c.ParticipantIDs[1]
	}
	return c.ParticipantIDs[0]
}

// Message is a single conversation entry.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Body           string    `json:"body"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}
