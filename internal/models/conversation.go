package models

// ConversationEntry is one row of a user's conversation list: the other
// party together with the most recent message exchanged with them.
// Conversations are derived from the message log, never stored.
type ConversationEntry struct {
	OtherUser   *UserResponse `json:"other_user"`
	LastMessage *Message      `json:"last_message"`
}
