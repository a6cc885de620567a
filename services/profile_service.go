package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"nannyhub/models"
)

type ProfileService struct {
	nannies  NannyProfileStore
	families FamilyProfileStore
}

func NewProfileService(nannies NannyProfileStore, families FamilyProfileStore) *ProfileService {
	return &ProfileService{nannies: nannies, families: families}
}

// requiredFields trims values and records the names of the empty ones, in
// submission order.
type requiredFields struct {
	missing []string
}

func (f *requiredFields) take(name, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		f.missing = append(f.missing, name)
	}
	return trimmed
}

func (f *requiredFields) err() error {
	if len(f.missing) == 0 {
		return nil
	}
	return models.ValidationError("missing fields: " + strings.Join(f.missing, ", "))
}

// UpsertNanny validates the payload and writes the caller's profile. The
// store upsert is keyed on user_id, so repeated calls never create a second
// row.
func (s *ProfileService) UpsertNanny(ctx context.Context, user *models.User, req models.NannyProfileRequest) (*models.NannyProfile, error) {
	if user.Role != models.RoleNanny {
		return nil, models.ForbiddenError("only nannies can create profiles")
	}

	fields := &requiredFields{}
	fullName := fields.take("full_name", req.FullName)
	city := fields.take("city", req.City)
	zip := fields.take("zip", req.Zip)
	yearsRaw := fields.take("years_experience", req.YearsExperience.String())
	availability := fields.take("availability", req.Availability)
	bio := fields.take("bio", req.Bio)
	servicesOffered := fields.take("services_offered", req.ServicesOffered)
	rateRaw := fields.take("preferred_rate", req.PreferredRate.String())
	contactInfo := fields.take("contact_info", req.ContactInfo)
	if err := fields.err(); err != nil {
		return nil, err
	}

	yearsExperience, yearsErr := strconv.Atoi(yearsRaw)
	preferredRate, rateErr := strconv.ParseFloat(rateRaw, 64)
	if yearsErr != nil || rateErr != nil || yearsExperience < 0 || preferredRate < 0 {
		return nil, models.ValidationError("years_experience must be an integer and preferred_rate must be a number")
	}

	profile := &models.NannyProfile{
		UserID:          user.ID,
		FullName:        fullName,
		City:            city,
		Zip:             zip,
		YearsExperience: yearsExperience,
		Availability:    availability,
		Bio:             bio,
		ServicesOffered: servicesOffered,
		PreferredRate:   preferredRate,
		ContactInfo:     contactInfo,
	}
	if err := s.nannies.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetNanny(ctx context.Context, id int) (*models.NannyProfile, error) {
	profile, err := s.nannies.FindByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NotFoundError("not found")
	}
	return profile, err
}

func (s *ProfileService) GetNannyByUser(ctx context.Context, user *models.User) (*models.NannyProfile, error) {
	if user.Role != models.RoleNanny {
		return nil, models.ForbiddenError("only nannies have nanny profiles")
	}
	profile, err := s.nannies.FindByUserID(ctx, user.ID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NotFoundError("not found")
	}
	return profile, err
}

func (s *ProfileService) ListNannies(ctx context.Context, filter models.NannyProfileFilter) ([]models.NannyProfile, error) {
	return s.nannies.List(ctx, filter)
}

func (s *ProfileService) UpsertFamily(ctx context.Context, user *models.User, req models.FamilyProfileRequest) (*models.FamilyProfile, error) {
	if user.Role != models.RoleFamily {
		return nil, models.ForbiddenError("only families can create profiles")
	}

	fields := &requiredFields{}
	fullName := fields.take("full_name", req.FullName)
	city := fields.take("city", req.City)
	zip := fields.take("zip", req.Zip)
	needs := fields.take("needs", req.Needs)
	schedule := fields.take("schedule", req.Schedule)
	budgetRaw := fields.take("budget", req.Budget.String())
	bio := fields.take("bio", req.Bio)
	contactInfo := fields.take("contact_info", req.ContactInfo)
	if err := fields.err(); err != nil {
		return nil, err
	}

	budget, err := strconv.ParseFloat(budgetRaw, 64)
	if err != nil || budget < 0 {
		return nil, models.ValidationError("budget must be a number")
	}

	profile := &models.FamilyProfile{
		UserID:      user.ID,
		FullName:    fullName,
		City:        city,
		Zip:         zip,
		Needs:       needs,
		Schedule:    schedule,
		Budget:      budget,
		Bio:         bio,
		ContactInfo: contactInfo,
	}
	if err := s.families.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetFamilyByUser(ctx context.Context, user *models.User) (*models.FamilyProfile, error) {
	if user.Role != models.RoleFamily {
		return nil, models.ForbiddenError("only families have family profiles")
	}
	profile, err := s.families.FindByUserID(ctx, user.ID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NotFoundError("not found")
	}
	return profile, err
}
