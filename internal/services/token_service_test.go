package services

import (
	"testing"
	"time"

	"directchat/internal/errs"
	"directchat/internal/models"
	"directchat/internal/utils"

	"github.com/stretchr/testify/require"
)

func TestTokenService_Verify_ValidCredential(t *testing.T) {
	req := require.New(t)
	env := newTestEnv()
	alice, token := env.addUser("alice", "alice@example.com")

	resolved, err := env.tokens.Verify(token)

	req.NoError(err)
	req.Equal(alice.ID, resolved.ID)
	req.Equal("alice", resolved.Username)
}

func TestTokenService_Verify_MissingOrMalformed(t *testing.T) {
	req := require.New(t)
	env := newTestEnv()

	_, err := env.tokens.Verify("")
	req.ErrorIs(err, errs.ErrUnauthenticated)

	_, err = env.tokens.Verify("garbage")
	req.ErrorIs(err, errs.ErrUnauthenticated)
}

func TestTokenService_Verify_WrongSignature(t *testing.T) {
	req := require.New(t)
	env := newTestEnv()
	alice, _ := env.addUser("alice", "alice@example.com")

	forged, err := utils.CreateJwtToken(alice.ID, alice.Username, alice.Email,
		[]byte("some-other-secret"), time.Now().Add(time.Hour))
	req.NoError(err)

	_, err = env.tokens.Verify(forged)
	req.ErrorIs(err, errs.ErrUnauthenticated)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	req := require.New(t)
	env := newTestEnv()
	alice, _ := env.addUser("alice", "alice@example.com")

	expired, err := utils.CreateJwtToken(alice.ID, alice.Username, alice.Email,
		[]byte("test-secret"), time.Now().Add(-time.Minute))
	req.NoError(err)

	_, err = env.tokens.Verify(expired)
	req.ErrorIs(err, errs.ErrUnauthenticated)
}

func TestTokenService_Verify_StaleIdentity(t *testing.T) {
	req := require.New(t)
	env := newTestEnv()
	alice, token := env.addUser("alice", "alice@example.com")

	// Given the user behind a valid token no longer exists
	env.directory.remove(alice.ID)

	_, err := env.tokens.Verify(token)
	req.ErrorIs(err, errs.ErrUnauthenticated)
}

func TestTokenService_Resolve_UsesCache(t *testing.T) {
	req := require.New(t)
	directory := newFakeDirectory()
	userCache := newFakeCache()
	tokens := NewTokenService(directory, userCache, []byte("test-secret"), time.Hour)

	alice, err := directory.Create(&models.User{Username: "alice", Email: "alice@example.com"})
	req.NoError(err)

	// First resolution warms the cache
	resolved, err := tokens.Resolve(alice.ID)
	req.NoError(err)
	req.Equal(alice.ID, resolved.ID)

	// Removing the directory row does not evict the cached record
	directory.remove(alice.ID)
	cached, err := tokens.Resolve(alice.ID)
	req.NoError(err)
	req.Equal("alice", cached.Username)
}
