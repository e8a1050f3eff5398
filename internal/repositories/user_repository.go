package repositories

import (
	"errors"

	"directchat/internal/errs"
	"directchat/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (ur *UserRepository) Create(user *models.User) (*models.User, error) {
	result := ur.db.Create(user)
	if result.Error != nil {
		return nil, errs.ErrStoreUnavailable
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrUserNotFound
	}
	return user, nil
}

func (ur *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := ur.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.ErrStoreUnavailable
	}
	return &user, nil
}

func (ur *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := ur.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.ErrStoreUnavailable
	}
	return &user, nil
}

func (ur *UserRepository) Exists(id uint) bool {
	var count int64
	ur.db.Model(&models.User{}).Where("id = ?", id).Count(&count)
	return count > 0
}

// ListExcept returns every user except the given one, sorted by username.
func (ur *UserRepository) ListExcept(id uint) ([]models.User, error) {
	var users []models.User
	err := ur.db.
		Where("id <> ?", id).
		Order("username ASC").
		Find(&users).Error
	if err != nil {
		return nil, errs.ErrStoreUnavailable
	}
	return users, nil
}

func (ur *UserRepository) UpdateProfilePhoto(id uint, url string) error {
	result := ur.db.Model(&models.User{}).Where("id = ?", id).Update("profile_photo", url)
	if result.Error != nil {
		return errs.ErrStoreUnavailable
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}
