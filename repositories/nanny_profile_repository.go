package repositories

import (
	"context"
	"errors"
	"fmt"

	"nannyhub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NannyProfileRepository struct {
	db *pgxpool.Pool
}

func NewNannyProfileRepository(db *pgxpool.Pool) *NannyProfileRepository {
	return &NannyProfileRepository{db: db}
}

const nannyProfileColumns = `id, user_id, full_name, city, zip, years_experience,
	availability, bio, services_offered, preferred_rate, contact_info, created_at, updated_at`

// Upsert inserts the profile or, when one already exists for the user,
// updates every mutable field and refreshes updated_at. The single
// ON CONFLICT statement makes concurrent upserts last-write-wins without a
// separate existence check.
func (r *NannyProfileRepository) Upsert(ctx context.Context, profile *models.NannyProfile) error {
	query := `
		INSERT INTO nanny_profiles
			(user_id, full_name, city, zip, years_experience, availability,
			 bio, services_offered, preferred_rate, contact_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			city = EXCLUDED.city,
			zip = EXCLUDED.zip,
			years_experience = EXCLUDED.years_experience,
			availability = EXCLUDED.availability,
			bio = EXCLUDED.bio,
			services_offered = EXCLUDED.services_offered,
			preferred_rate = EXCLUDED.preferred_rate,
			contact_info = EXCLUDED.contact_info,
			updated_at = now()
		RETURNING ` + nannyProfileColumns

	return r.db.QueryRow(ctx, query,
		profile.UserID,
		profile.FullName,
		profile.City,
		profile.Zip,
		profile.YearsExperience,
		profile.Availability,
		profile.Bio,
		profile.ServicesOffered,
		profile.PreferredRate,
		profile.ContactInfo,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.City,
		&profile.Zip,
		&profile.YearsExperience,
		&profile.Availability,
		&profile.Bio,
		&profile.ServicesOffered,
		&profile.PreferredRate,
		&profile.ContactInfo,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
}

func (r *NannyProfileRepository) FindByID(ctx context.Context, id int) (*models.NannyProfile, error) {
	query := `SELECT ` + nannyProfileColumns + ` FROM nanny_profiles WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *NannyProfileRepository) FindByUserID(ctx context.Context, userID int) (*models.NannyProfile, error) {
	query := `SELECT ` + nannyProfileColumns + ` FROM nanny_profiles WHERE user_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

// List builds the WHERE clause incrementally so an absent filter adds no
// predicate at all.
func (r *NannyProfileRepository) List(ctx context.Context, filter models.NannyProfileFilter) ([]models.NannyProfile, error) {
	query := `SELECT ` + nannyProfileColumns + ` FROM nanny_profiles WHERE 1=1`
	args := []interface{}{}
	paramIndex := 1

	if filter.City != "" {
		query += fmt.Sprintf(" AND LOWER(city) = LOWER($%d)", paramIndex)
		args = append(args, filter.City)
		paramIndex++
	}
	if filter.Zip != "" {
		query += fmt.Sprintf(" AND zip = $%d", paramIndex)
		args = append(args, filter.Zip)
		paramIndex++
	}
	if filter.MinExperience != nil {
		query += fmt.Sprintf(" AND years_experience >= $%d", paramIndex)
		args = append(args, *filter.MinExperience)
		paramIndex++
	}
	if filter.MaxRate != nil {
		query += fmt.Sprintf(" AND preferred_rate <= $%d", paramIndex)
		args = append(args, *filter.MaxRate)
		paramIndex++
	}

	query += " ORDER BY updated_at DESC, id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []models.NannyProfile{}
	for rows.Next() {
		var p models.NannyProfile
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.FullName,
			&p.City,
			&p.Zip,
			&p.YearsExperience,
			&p.Availability,
			&p.Bio,
			&p.ServicesOffered,
			&p.PreferredRate,
			&p.ContactInfo,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *NannyProfileRepository) scanOne(row pgx.Row) (*models.NannyProfile, error) {
	profile := &models.NannyProfile{}
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.City,
		&profile.Zip,
		&profile.YearsExperience,
		&profile.Availability,
		&profile.Bio,
		&profile.ServicesOffered,
		&profile.PreferredRate,
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
