package domain

import "errors"

var ErrConversationNotFound = errors.New("conversation not found")

// Message is a single direct message between two members.
type Message struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
	Read       bool   `json:"read"`
}

// Conversation is the per-pair thread aggregate with a cached last message.
type Conversation struct {
	ID            string   `json:"id"`
	Participants  []string `json:"participants"`
	LastMessage   string   `json:"lastMessage"`
	LastMessageAt string   `json:"lastMessageAt"`
	UnreadCount   int      `json:"unreadCount"`
}

// Involves reports whether both a and b take part in the conversation, in any order.
func (c Conversation) Involves(a, b string) bool {
	return c.HasParticipant(a) && c.HasParticipant(b)
}

// HasParticipant reports whether id is one of the participants.
func (c Conversation) HasParticipant(id string) bool {
	for _, p := range c.Participants {
		if p == id {
			return true
		}
	}
	return false
}

// Other returns the participant that is not id.
func (c Conversation) Other(id string) string {
	for _, p := range c.Participants {
		if p != id {
			return p
		}
	}
	return ""
}

// Clone returns a deep copy of the conversation.
func (c Conversation) Clone() Conversation {
	c.Participants = append([]string(nil), c.Participants...)
	return c
}
