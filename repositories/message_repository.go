package repositories

import (
	"context"
	"errors"

	"nannyhub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (contact_request_id, sender_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		message.ContactRequestID,
		message.SenderID,
		message.Body,
	).Scan(&message.ID, &message.CreatedAt)
}

func (r *MessageRepository) ListByContactRequest(ctx context.Context, contactRequestID int) ([]models.Message, error) {
	query := `
		SELECT m.id, m.contact_request_id, m.sender_id, u.email, m.body, m.created_at
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.contact_request_id = $1
		ORDER BY m.created_at ASC, m.id ASC
	`

	rows, err := r.db.Query(ctx, query, contactRequestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		err := rows.Scan(
			&m.ID,
			&m.ContactRequestID,
			&m.SenderID,
			&m.SenderEmail,
			&m.Body,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// LastForUser returns the newest message across every thread the user
// participates in.
func (r *MessageRepository) LastForUser(ctx context.Context, userID int) (*models.Message, error) {
	query := `
		SELECT m.id, m.contact_request_id, m.sender_id, u.email, m.body, m.created_at
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		JOIN contact_requests cr ON cr.id = m.contact_request_id
		WHERE cr.family_id = $1 OR cr.nanny_id = $1
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT 1
	`

	message := &models.Message{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&message.ID,
		&message.ContactRequestID,
		&message.SenderID,
		&message.SenderEmail,
		&message.Body,
		&message.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return message, nil
}
