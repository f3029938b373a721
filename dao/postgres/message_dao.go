package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"roomshare-server/apperr"
	"roomshare-server/models"
)

// MessageDAO handles conversations and messages.
type MessageDAO struct {
	db *sql.DB
}

func NewMessageDAO(db *sql.DB) *MessageDAO {
	return &MessageDAO{db: db}
}

// GetConversation returns a conversation or a NOT_FOUND error.
func (dao *MessageDAO) GetConversation(ctx context.Context, id string) (*models.Conversation, error) {
	var c models.Conversation
	err := dao.db.QueryRowContext(ctx, `
		SELECT id, listing_id, participant_a, participant_b, created_at
		FROM conversations WHERE id = $1`, id).
		Scan(&c.ID, &c.ListingID, &c.ParticipantIDs[0], &c.ParticipantIDs[1], &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.CodeNotFound, "Conversation not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation %s: %w", id, err)
	}
	return &c, nil
}

// ListMessages returns a conversation's messages oldest first.
func (dao *MessageDAO) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	rows, err := dao.db.QueryContext(ctx, `
		SELECT id, conversation_id, sender_id, body, read, created_at
		FROM messages WHERE conversation_id = $1
		ORDER BY created_at ASC, id ASC`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Body, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Insert stores a new message.
func (dao *MessageDAO) Insert(ctx context.Context, m *models.Message) error {
	m.CreatedAt = time.Now().UTC()
	_, err := dao.db.ExecContext(ctx, `
		INSERT INTO messages (id, conversation_id, sender_id, body, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.ConversationID, m.SenderID, m.Body, m.Read, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// MarkReadFromSender marks all of senderID's unread messages in the
// conversation as read. Fetch calls this for the counterpart so unread
// state clears as a side effect of reading the thread.
func (dao *MessageDAO) MarkReadFromSender(ctx context.Context, conversationID, senderID string) error {
	_, err := dao.db.ExecContext(ctx, `
		UPDATE messages SET read = TRUE
		WHERE conversation_id = $1 AND sender_id = $2 AND read = FALSE`,
		conversationID, senderID)
	if err != nil {
		return fmt.Errorf("mark messages read: %w", err)
	}
	return nil
}
