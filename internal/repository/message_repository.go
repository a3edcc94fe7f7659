package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/liceo-connect/liceo-api/internal/models"
)

// MessageRepository persists mensaje rows.
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository constructs the repository.
func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a message and sets its generated ID.
func (r *MessageRepository) Create(ctx context.Context, m *models.Message) error {
	query := r.db.Rebind(`INSERT INTO mensaje (emisor_id, receptor_id, contenido, fecha) VALUES (?, ?, ?, ?) RETURNING id`)
	if err := r.db.GetContext(ctx, &m.ID, query, m.SenderID, m.ReceiverID, m.Content, m.SentAt); err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// ListForUser returns messages sent or received by userID in insertion order.
func (r *MessageRepository) ListForUser(ctx context.Context, userID int64) ([]models.Message, error) {
	query := r.db.Rebind(`SELECT id, emisor_id, receptor_id, contenido, fecha FROM mensaje WHERE emisor_id = ? OR receptor_id = ? ORDER BY id`)
	messages := []models.Message{}
	if err := r.db.SelectContext(ctx, &messages, query, userID, userID); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}
