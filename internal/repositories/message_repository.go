package repositories

import (
	"errors"

	"directchat/internal/errs"
	"directchat/internal/models"

	"gorm.io/gorm"
)

// MessageRepository is the durable append-only message log. Messages are
// never edited or deleted; MarkRead flips the single mutable field.
type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

func (mr *MessageRepository) Append(message *models.Message) (*models.Message, error) {
	if err := mr.db.Create(message).Error; err != nil {
		return nil, errs.ErrStoreUnavailable
	}
	return message, nil
}

func (mr *MessageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := mr.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrMessageNotFound
		}
		return nil, errs.ErrStoreUnavailable
	}
	return &message, nil
}

func (mr *MessageRepository) MarkRead(id uint, byUserID uint) (*models.Message, error) {
	message, err := mr.GetByID(id)
	if err != nil {
		return nil, err
	}
	if message.ReceiverID != byUserID {
		return nil, errs.ErrNotReceiver
	}
	if message.Read {
		// Idempotent: re-marking succeeds silently.
		return message, nil
	}
	if err := mr.db.Model(message).Update("read", true).Error; err != nil {
		return nil, errs.ErrStoreUnavailable
	}
	message.Read = true
	return message, nil
}

// Between returns every message where {sender, receiver} = {userA, userB},
// in chronological reading order. Timestamp ties break by insertion order.
func (mr *MessageRepository) Between(userA, userB uint) ([]models.Message, error) {
	var messages []models.Message
	err := mr.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, errs.ErrStoreUnavailable
	}
	return messages, nil
}

// ForUser returns every message the user participates in, newest first, the
// shape the conversation-list aggregation consumes.
func (mr *MessageRepository) ForUser(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := mr.db.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, errs.ErrStoreUnavailable
	}
	return messages, nil
}
