package validators

import (
	"log"
	"regexp"

	"directchat/internal/errs"
	"directchat/internal/models"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

func ValidateUser(user *models.User) []error {
	var errors []error
	if user == nil {
		errors = append(errors, errs.ErrInvalidUser)
		return errors
	}

	if user.Email == "" || !ValidateEmail(user.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}

	if len(user.Username) < minUsernameLength {
		errors = append(errors, errs.ErrInvalidUsername)
	}

	if len(user.Password) < minPasswordLength {
		errors = append(errors, errs.ErrInvalidPassword)
	}

	return errors
}

func ValidateEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	regex, err := regexp.Compile(pattern)
	if err != nil {
		log.Println("Error compiling regular expression:", err)
		return false
	}
	return regex.MatchString(email)
}
