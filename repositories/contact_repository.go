package repositories

import (
	"context"
	"errors"

	"nannyhub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRequestRepository struct {
	db *pgxpool.Pool
}

func NewContactRequestRepository(db *pgxpool.Pool) *ContactRequestRepository {
	return &ContactRequestRepository{db: db}
}

func (r *ContactRequestRepository) Create(ctx context.Context, request *models.ContactRequest) error {
	query := `
		INSERT INTO contact_requests (family_id, nanny_id, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		request.FamilyID,
		request.NannyID,
		request.Message,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt)
}

func (r *ContactRequestRepository) FindByID(ctx context.Context, id int) (*models.ContactRequest, error) {
	query := `
		SELECT id, family_id, nanny_id, message, status, created_at
		FROM contact_requests
		WHERE id = $1
	`

	request := &models.ContactRequest{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.FamilyID,
		&request.NannyID,
		&request.Message,
		&request.Status,
		&request.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return request, nil
}

// ListForUser returns every thread the user participates in, newest first,
// with the counterpart names resolved from profiles (falling back to email).
func (r *ContactRequestRepository) ListForUser(ctx context.Context, userID int) ([]models.ContactRequestThread, error) {
	query := `
		SELECT cr.id, cr.family_id, cr.nanny_id, cr.message, cr.status, cr.created_at,
			COALESCE(np.full_name, nu.email) AS nanny_name,
			COALESCE(fp.full_name, fu.email) AS family_name
		FROM contact_requests cr
		JOIN users nu ON nu.id = cr.nanny_id
		JOIN users fu ON fu.id = cr.family_id
		LEFT JOIN nanny_profiles np ON np.user_id = cr.nanny_id
		LEFT JOIN family_profiles fp ON fp.user_id = cr.family_id
		WHERE cr.family_id = $1 OR cr.nanny_id = $1
		ORDER BY cr.created_at DESC, cr.id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	threads := []models.ContactRequestThread{}
	for rows.Next() {
		var t models.ContactRequestThread
		err := rows.Scan(
			&t.ID,
			&t.FamilyID,
			&t.NannyID,
			&t.Message,
			&t.Status,
			&t.CreatedAt,
			&t.NannyName,
			&t.FamilyName,
		)
		if err != nil {
			return nil, err
		}
		threads = append(threads, t)
	}
	return threads, rows.Err()
}

// Delete removes the request; messages cascade with it.
func (r *ContactRequestRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contact_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
