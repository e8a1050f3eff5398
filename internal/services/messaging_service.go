package services

import (
	"strings"

	"directchat/internal/errs"
	"directchat/internal/interfaces"
	"directchat/internal/models"
)

// MessagingService is the operation surface of the messaging core. Every
// operation takes the caller's bearer credential as its first argument and
// verifies it before touching the store; nothing below executes without a
// resolved caller identity.
type MessagingService struct {
	tokens *TokenService
	store  interfaces.MessageStore
	users  interfaces.UserDirectory
}

func NewMessagingService(
	tokens *TokenService,
	store interfaces.MessageStore,
	users interfaces.UserDirectory,
) *MessagingService {
	return &MessagingService{
		tokens: tokens,
		store:  store,
		users:  users,
	}
}

// Send appends a message from the caller to the receiver. Empty content and
// unknown receivers are rejected before anything is written. Self-messages
// are allowed, as the receiver check does not exclude the caller.
func (ms *MessagingService) Send(credential string, body *models.SendMessageRequestBody) (*models.Message, error) {
	caller, err := ms.tokens.Verify(credential)
	if err != nil {
		return nil, err
	}

	if body == nil || strings.TrimSpace(body.Content) == "" {
		return nil, errs.ErrEmptyContent
	}
	if !ms.users.Exists(body.ReceiverID) {
		return nil, errs.ErrReceiverNotFound
	}

	message := &models.Message{
		SenderID:   caller.ID,
		ReceiverID: body.ReceiverID,
		Content:    body.Content,
	}

	stored, err := ms.store.Append(message)
	if err != nil {
		return nil, err
	}

	ms.expand(stored, newUserLookup(ms.tokens))
	return stored, nil
}

// Conversation returns the full history between the caller and the other
// user, oldest first. An empty history is a valid result.
func (ms *MessagingService) Conversation(credential string, otherUserID uint) ([]models.Message, error) {
	caller, err := ms.tokens.Verify(credential)
	if err != nil {
		return nil, err
	}

	messages, err := ms.store.Between(caller.ID, otherUserID)
	if err != nil {
		return nil, err
	}

	lookup := newUserLookup(ms.tokens)
	for i := range messages {
		ms.expand(&messages[i], lookup)
	}
	return messages, nil
}

// Conversations derives the caller's conversation list from the flat log.
// The store hands back messages newest first; grouping keeps the first
// message seen per other party, so each entry's LastMessage is the most
// recent one and entries appear in order of last activity.
func (ms *MessagingService) Conversations(credential string) ([]models.ConversationEntry, error) {
	caller, err := ms.tokens.Verify(credential)
	if err != nil {
		return nil, err
	}

	messages, err := ms.store.ForUser(caller.ID)
	if err != nil {
		return nil, err
	}

	lookup := newUserLookup(ms.tokens)
	seen := make(map[uint]bool)
	entries := []models.ConversationEntry{}
	for i := range messages {
		message := &messages[i]
		otherID := message.OtherParty(caller.ID)
		if seen[otherID] {
			continue
		}
		seen[otherID] = true

		// A vanished directory row leaves OtherUser nil; the conversation
		// itself stays listed.
		ms.expand(message, lookup)
		entries = append(entries, models.ConversationEntry{
			OtherUser:   lookup.resolve(otherID),
			LastMessage: message,
		})
	}

	return entries, nil
}

// MarkRead flips the message's read flag. Only the receiver may do this;
// repeating it on an already-read message succeeds silently.
func (ms *MessagingService) MarkRead(credential string, messageID uint) (*models.Message, error) {
	caller, err := ms.tokens.Verify(credential)
	if err != nil {
		return nil, err
	}

	message, err := ms.store.MarkRead(messageID, caller.ID)
	if err != nil {
		return nil, err
	}

	ms.expand(message, newUserLookup(ms.tokens))
	return message, nil
}

// expand populates the message's sender and receiver records from the
// directory. The store persists ids only.
func (ms *MessagingService) expand(message *models.Message, lookup *userLookup) {
	message.Sender = lookup.resolve(message.SenderID)
	message.Receiver = lookup.resolve(message.ReceiverID)
}

// userLookup memoizes directory resolutions for the duration of one
// operation, on top of the token service's shared cache.
type userLookup struct {
	tokens *TokenService
	byID   map[uint]*models.UserResponse
}

func newUserLookup(tokens *TokenService) *userLookup {
	return &userLookup{
		tokens: tokens,
		byID:   make(map[uint]*models.UserResponse),
	}
}

func (ul *userLookup) resolve(id uint) *models.UserResponse {
	if resolved, ok := ul.byID[id]; ok {
		return resolved
	}
	user, err := ul.tokens.Resolve(id)
	if err != nil {
		ul.byID[id] = nil
		return nil
	}
	resolved := user.ToUserResponse()
	ul.byID[id] = resolved
	return resolved
}
