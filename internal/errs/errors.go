package errs

import (
	"errors"
	"net/http"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	// Unauthenticated: no usable caller identity.
	ErrUnauthenticated = Error("authentication required")

	// Validation: malformed input.
	ErrInvalidRequestBody = Error("invalid request body")
	ErrInvalidParams      = Error("invalid params")
	ErrEmptyContent       = Error("message content is required")
	ErrReceiverNotFound   = Error("receiver does not exist")
	ErrUserAlreadyExists  = Error("user already exists")
	ErrInvalidEmail       = Error("invalid email")
	ErrInvalidUsername    = Error("username is empty or too short")
	ErrInvalidPassword    = Error("password is too short")
	ErrInvalidUser        = Error("invalid user")
	ErrWrongPassword      = Error("wrong password")

	// Not found.
	ErrMessageNotFound = Error("message not found")
	ErrUserNotFound    = Error("user not found")

	// Forbidden.
	ErrNotReceiver = Error("only the receiver can mark a message as read")

	// Unavailable.
	ErrStoreUnavailable = Error("storage is unavailable")

	// File manager.
	ErrNoFileUploaded     = Error("no file uploaded")
	ErrUnableToUploadFile = Error("unable to upload file")
)

// StatusOf maps a domain error to the HTTP status the REST layer responds
// with. Unknown errors are treated as store unavailability.
func StatusOf(err error) int {
	var e Error
	if !errors.As(err, &e) {
		return http.StatusServiceUnavailable
	}
	switch e {
	case ErrUnauthenticated, ErrWrongPassword:
		return http.StatusUnauthorized
	case ErrNotReceiver:
		return http.StatusForbidden
	case ErrMessageNotFound, ErrUserNotFound:
		return http.StatusNotFound
	case ErrStoreUnavailable:
		return http.StatusServiceUnavailable
	case ErrUnableToUploadFile:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
