package models

import (
	"gorm.io/gorm"
)

// Message is a single row of the append-only message log. The row stores
// participant ids only; Sender and Receiver are expanded from the user
// directory after the row is loaded. CreatedAt is the ordering key.
type Message struct {
	gorm.Model
	SenderID   uint   `gorm:"index;not null" json:"sender_id"`
	ReceiverID uint   `gorm:"index;not null" json:"receiver_id"`
	Content    string `gorm:"not null" json:"content"`
	Read       bool   `gorm:"not null;default:false" json:"read"`

	Sender   *UserResponse `gorm:"-" json:"sender,omitempty"`
	Receiver *UserResponse `gorm:"-" json:"receiver,omitempty"`
}

// OtherParty returns the participant that is not the given user. For a
// self-message both sides are the user itself.
func (message *Message) OtherParty(userID uint) uint {
	if message.SenderID == userID {
		return message.ReceiverID
	}
	return message.SenderID
}
