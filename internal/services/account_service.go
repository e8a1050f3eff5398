package services

import (
	"directchat/internal/errs"
	"directchat/internal/interfaces"
	"directchat/internal/models"
	"directchat/internal/utils"
	"directchat/internal/validators"
)

// AccountService owns registration, login and the user directory surface.
// Token verification itself lives in the TokenService.
type AccountService struct {
	users  interfaces.UserDirectory
	tokens *TokenService
}

func NewAccountService(users interfaces.UserDirectory, tokens *TokenService) *AccountService {
	return &AccountService{
		users:  users,
		tokens: tokens,
	}
}

func (as *AccountService) Register(user *models.User) (*models.UserResponse, []error) {
	var errors []error

	validationErrs := validators.ValidateUser(user)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}

	if _, err := as.users.GetByEmail(user.Email); err == nil {
		errors = append(errors, errs.ErrUserAlreadyExists)
		return nil, errors
	}

	password, err := utils.HashPassword(user.Password)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	user.PasswordHash = password
	user.Password = ""

	created, err := as.users.Create(user)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return created.ToUserResponse(), nil
}

func (as *AccountService) Login(loginData *models.LoginRequestBody) (*models.LoginResponse, []error) {
	var errors []error

	user, err := as.users.GetByEmail(loginData.Email)
	if err != nil {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}

	if err := utils.CompareHashAndPassword(user.PasswordHash, loginData.Password); err != nil {
		errors = append(errors, errs.ErrWrongPassword)
		return nil, errors
	}

	token, err := as.tokens.Issue(user)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return &models.LoginResponse{
		User:  user.ToUserResponse(),
		Token: token,
	}, nil
}

// Identify resolves the caller behind the credential.
func (as *AccountService) Identify(credential string) (*models.User, error) {
	return as.tokens.Verify(credential)
}

// Users lists every user except the caller, sorted by username.
func (as *AccountService) Users(credential string) ([]models.UserResponse, error) {
	caller, err := as.tokens.Verify(credential)
	if err != nil {
		return nil, err
	}

	users, err := as.users.ListExcept(caller.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *users[i].ToUserResponse())
	}
	return responses, nil
}

func (as *AccountService) User(credential string, id uint) (*models.UserResponse, error) {
	if _, err := as.tokens.Verify(credential); err != nil {
		return nil, err
	}

	user, err := as.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	return user.ToUserResponse(), nil
}

func (as *AccountService) UpdateUserProfilePhoto(userID uint, url string) error {
	if err := as.users.UpdateProfilePhoto(userID, url); err != nil {
		return err
	}
	as.tokens.Refresh(userID)
	return nil
}
