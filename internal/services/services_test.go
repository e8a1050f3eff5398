package services

import (
	"sort"
	"strings"
	"time"

	"directchat/internal/errs"
	"directchat/internal/models"

	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm-backed repositories, honoring the same
// contracts the interfaces document.

type fakeDirectory struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		users:  make(map[uint]models.User),
		nextID: 1,
	}
}

func (fd *fakeDirectory) Create(user *models.User) (*models.User, error) {
	user.ID = fd.nextID
	user.CreatedAt = time.Now()
	fd.nextID++
	fd.users[user.ID] = *user
	return user, nil
}

func (fd *fakeDirectory) GetByID(id uint) (*models.User, error) {
	user, ok := fd.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return &user, nil
}

func (fd *fakeDirectory) GetByEmail(email string) (*models.User, error) {
	for _, user := range fd.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (fd *fakeDirectory) Exists(id uint) bool {
	_, ok := fd.users[id]
	return ok
}

func (fd *fakeDirectory) ListExcept(id uint) ([]models.User, error) {
	var users []models.User
	for _, user := range fd.users {
		if user.ID != id {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return strings.Compare(users[i].Username, users[j].Username) < 0
	})
	return users, nil
}

func (fd *fakeDirectory) UpdateProfilePhoto(id uint, url string) error {
	user, ok := fd.users[id]
	if !ok {
		return errs.ErrUserNotFound
	}
	user.ProfilePhoto = &url
	fd.users[id] = user
	return nil
}

func (fd *fakeDirectory) remove(id uint) {
	delete(fd.users, id)
}

type fakeStore struct {
	messages []models.Message
	nextID   uint
	clock    time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID: 1,
		clock:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (fs *fakeStore) Append(message *models.Message) (*models.Message, error) {
	message.ID = fs.nextID
	message.CreatedAt = fs.clock
	fs.nextID++
	fs.clock = fs.clock.Add(time.Second)
	fs.messages = append(fs.messages, *message)
	return message, nil
}

func (fs *fakeStore) GetByID(id uint) (*models.Message, error) {
	for i := range fs.messages {
		if fs.messages[i].ID == id {
			message := fs.messages[i]
			return &message, nil
		}
	}
	return nil, errs.ErrMessageNotFound
}

func (fs *fakeStore) MarkRead(id uint, byUserID uint) (*models.Message, error) {
	for i := range fs.messages {
		if fs.messages[i].ID != id {
			continue
		}
		if fs.messages[i].ReceiverID != byUserID {
			return nil, errs.ErrNotReceiver
		}
		fs.messages[i].Read = true
		message := fs.messages[i]
		return &message, nil
	}
	return nil, errs.ErrMessageNotFound
}

func (fs *fakeStore) Between(userA, userB uint) ([]models.Message, error) {
	// Appends are monotonic, so insertion order is chronological order.
	var result []models.Message
	for _, message := range fs.messages {
		pair := message.SenderID == userA && message.ReceiverID == userB ||
			message.SenderID == userB && message.ReceiverID == userA
		if pair {
			result = append(result, message)
		}
	}
	return result, nil
}

func (fs *fakeStore) ForUser(userID uint) ([]models.Message, error) {
	var result []models.Message
	for i := len(fs.messages) - 1; i >= 0; i-- {
		message := fs.messages[i]
		if message.SenderID == userID || message.ReceiverID == userID {
			result = append(result, message)
		}
	}
	return result, nil
}

// failingStore simulates an unreachable persistence layer: every operation
// answers with the unavailability sentinel.
type failingStore struct{}

func (failingStore) Append(*models.Message) (*models.Message, error) {
	return nil, errs.ErrStoreUnavailable
}

func (failingStore) GetByID(uint) (*models.Message, error) {
	return nil, errs.ErrStoreUnavailable
}

func (failingStore) MarkRead(uint, uint) (*models.Message, error) {
	return nil, errs.ErrStoreUnavailable
}

func (failingStore) Between(uint, uint) ([]models.Message, error) {
	return nil, errs.ErrStoreUnavailable
}

func (failingStore) ForUser(uint) ([]models.Message, error) {
	return nil, errs.ErrStoreUnavailable
}

type fakeCache struct {
	users map[uint]models.User
}

func newFakeCache() *fakeCache {
	return &fakeCache{users: make(map[uint]models.User)}
}

func (fc *fakeCache) Get(id uint) (*models.User, bool) {
	user, ok := fc.users[id]
	if !ok {
		return nil, false
	}
	return &user, true
}

func (fc *fakeCache) Set(user *models.User) {
	fc.users[user.ID] = *user
}

type testEnv struct {
	directory *fakeDirectory
	store     *fakeStore
	tokens    *TokenService
	messaging *MessagingService
	accounts  *AccountService
}

func newTestEnv() *testEnv {
	directory := newFakeDirectory()
	store := newFakeStore()
	tokens := NewTokenService(directory, nil, []byte("test-secret"), time.Hour)
	return &testEnv{
		directory: directory,
		store:     store,
		tokens:    tokens,
		messaging: NewMessagingService(tokens, store, directory),
		accounts:  NewAccountService(directory, tokens),
	}
}

// addUser registers a user directly in the directory and returns the user
// together with a valid credential for it.
func (env *testEnv) addUser(username, email string) (*models.User, string) {
	user := &models.User{
		Model:        gorm.Model{},
		Username:     username,
		Email:        email,
		PasswordHash: "irrelevant",
	}
	user, err := env.directory.Create(user)
	if err != nil {
		panic(err)
	}
	token, err := env.tokens.Issue(user)
	if err != nil {
		panic(err)
	}
	return user, token
}
