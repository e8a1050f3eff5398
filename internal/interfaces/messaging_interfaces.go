package interfaces

import "directchat/internal/models"

// MessageStore is the append-only message log. Rows are written atomically
// and never deleted; the only mutation is the read flag transition.
type MessageStore interface {
	Append(message *models.Message) (*models.Message, error)
	GetByID(id uint) (*models.Message, error)
	// MarkRead sets the read flag. It fails with errs.ErrMessageNotFound for
	// an unknown id and errs.ErrNotReceiver when byUserID is not the
	// message's receiver. Re-marking an already-read message is a no-op.
	MarkRead(id uint, byUserID uint) (*models.Message, error)
	// Between returns every message exchanged between the two users,
	// oldest first.
	Between(userA, userB uint) ([]models.Message, error)
	// ForUser returns every message the user sent or received, newest first.
	ForUser(userID uint) ([]models.Message, error)
}

// UserDirectory resolves user ids to user records.
type UserDirectory interface {
	Create(user *models.User) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Exists(id uint) bool
	ListExcept(id uint) ([]models.User, error)
	UpdateProfilePhoto(id uint, url string) error
}

// UserCache is a read-through cache in front of the UserDirectory. A miss
// (or an unavailable cache) must be answered by the directory.
type UserCache interface {
	Get(id uint) (*models.User, bool)
	Set(user *models.User)
}
