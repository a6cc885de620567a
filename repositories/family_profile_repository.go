package repositories

import (
	"context"
	"errors"

	"nannyhub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FamilyProfileRepository struct {
	db *pgxpool.Pool
}

func NewFamilyProfileRepository(db *pgxpool.Pool) *FamilyProfileRepository {
	return &FamilyProfileRepository{db: db}
}

const familyProfileColumns = `id, user_id, full_name, city, zip, needs,
	schedule, budget, bio, contact_info, created_at, updated_at`

func (r *FamilyProfileRepository) Upsert(ctx context.Context, profile *models.FamilyProfile) error {
	query := `
		INSERT INTO family_profiles
			(user_id, full_name, city, zip, needs, schedule, budget, bio, contact_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			city = EXCLUDED.city,
			zip = EXCLUDED.zip,
			needs = EXCLUDED.needs,
			schedule = EXCLUDED.schedule,
			budget = EXCLUDED.budget,
			bio = EXCLUDED.bio,
			contact_info = EXCLUDED.contact_info,
			updated_at = now()
		RETURNING ` + familyProfileColumns

	return r.db.QueryRow(ctx, query,
		profile.UserID,
		profile.FullName,
		profile.City,
		profile.Zip,
		profile.Needs,
		profile.Schedule,
		profile.Budget,
		profile.Bio,
		profile.ContactInfo,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.City,
		&profile.Zip,
		&profile.Needs,
		&profile.Schedule,
		&profile.Budget,
		&profile.Bio,
		&profile.ContactInfo,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
}

func (r *FamilyProfileRepository) FindByUserID(ctx context.Context, userID int) (*models.FamilyProfile, error) {
	query := `SELECT ` + familyProfileColumns + ` FROM family_profiles WHERE user_id = $1`

	profile := &models.FamilyProfile{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.City,
		&profile.Zip,
		&profile.Needs,
		&profile.Schedule,
		&profile.Budget,
		&profile.Bio,
		&profile.ContactInfo,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}
