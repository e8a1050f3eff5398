package services

import (
	"time"

	"directchat/internal/errs"
	"directchat/internal/interfaces"
	"directchat/internal/models"
	"directchat/internal/utils"
)

// TokenService is the identity verifier: it turns a bearer credential into
// a resolved user record, or fails with errs.ErrUnauthenticated. It also
// issues tokens for the account service. Verification is pure: it never
// mutates anything.
type TokenService struct {
	users      interfaces.UserDirectory
	cache      interfaces.UserCache
	secret     []byte
	expiration time.Duration
}

func NewTokenService(
	users interfaces.UserDirectory,
	cache interfaces.UserCache,
	secret []byte,
	expiration time.Duration,
) *TokenService {
	return &TokenService{
		users:      users,
		cache:      cache,
		secret:     secret,
		expiration: expiration,
	}
}

func (ts *TokenService) Issue(user *models.User) (string, error) {
	return utils.CreateJwtToken(
		user.ID,
		user.Username,
		user.Email,
		ts.secret,
		time.Now().Add(ts.expiration),
	)
}

// Verify validates the credential and resolves the encoded user id against
// the directory. Absent, malformed, expired and stale-identity credentials
// all collapse to ErrUnauthenticated.
func (ts *TokenService) Verify(credential string) (*models.User, error) {
	if credential == "" {
		return nil, errs.ErrUnauthenticated
	}

	claims, err := utils.VerifyToken(credential, ts.secret)
	if err != nil {
		return nil, errs.ErrUnauthenticated
	}

	user, err := ts.Resolve(claims.ID)
	if err != nil {
		return nil, errs.ErrUnauthenticated
	}

	return user, nil
}

// Resolve looks a user up by id through the cache, falling back to the
// directory on a miss.
func (ts *TokenService) Resolve(id uint) (*models.User, error) {
	if ts.cache != nil {
		if user, ok := ts.cache.Get(id); ok {
			return user, nil
		}
	}

	user, err := ts.users.GetByID(id)
	if err != nil {
		return nil, err
	}

	if ts.cache != nil {
		ts.cache.Set(user)
	}
	return user, nil
}

// Refresh re-reads the user from the directory and replaces any cached
// copy, so directory updates become visible before the TTL runs out.
func (ts *TokenService) Refresh(id uint) {
	if ts.cache == nil {
		return
	}
	user, err := ts.users.GetByID(id)
	if err != nil {
		return
	}
	ts.cache.Set(user)
}
