package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"roomshare-server/apperr"
	daopg "roomshare-server/dao/postgres"
	"roomshare-server/logger"
	"roomshare-server/models"
)

const maxMessageLength = 2000

// MessageService guards conversation access: only the two participants
// may read or write, and reading marks the counterpart's messages read.
type MessageService struct {
	messageDao *daopg.MessageDAO
	userDao    *daopg.UserDAO
	notifier   *NotificationService
	log        logger.Logger
}

func NewMessageService(messageDao *daopg.MessageDAO, userDao *daopg.UserDAO, notifier *NotificationService, log logger.Logger) *MessageService {
	return &MessageService{
		messageDao: messageDao,
		userDao:    userDao,
		notifier:   notifier,
		log:        log,
	}
}

// ListMessages returns the conversation's messages oldest-first and marks
// everything sent by the other participant as read.
func (s *MessageService) ListMessages(ctx context.Context, conversationID, callerID string) ([]models.Message, error) {
	conv, err := s.requireParticipant(ctx, conversationID, callerID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageDao.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Failed to load messages", err)
	}

	if err := s.messageDao.MarkReadFromSender(ctx, conversationID, conv.Counterpart(callerID)); err != nil {
		s.log.Warn("mark read failed", map[string]interface{}{
			"conversation_id": conversationID,
			"error":           err.Error(),
		})
	}
	return messages, nil
}

// Send appends a message from the caller to the conversation.
func (s *MessageService) Send(ctx context.Context, conversationID, callerID, body string) (*models.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperr.Validation("message body must not be empty")
	}
	if len(body) > maxMessageLength {
		return nil, apperr.Validation("message body too long")
	}

	conv, err := s.requireParticipant(ctx, conversationID, callerID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       callerID,
		Body:           body,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.messageDao.Insert(ctx, msg); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Failed to send message", err)
	}

	if recipient, err := s.userDao.GetByID(ctx, conv.Counterpart(callerID)); err == nil {
		s.notifier.MessageReceived(ctx, recipient, msg)
	}
	return msg, nil
}

// requireParticipant loads the conversation and rejects callers who are
// not one of its two participants.
func (s *MessageService) requireParticipant(ctx context.Context, conversationID, callerID string) (*models.Conversation, error) {
	conv, err := s.messageDao.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(callerID) {
		return nil, apperr.New(apperr.CodeForbidden, "Forbidden")
	}
	return conv, nil
}
