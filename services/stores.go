package services

import (
	"context"

	"nannyhub/models"
)

// Store interfaces are satisfied by the repositories package; tests supply
// in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
}

type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	DeleteByToken(ctx context.Context, token string) error
	FindUserByToken(ctx context.Context, token string) (*models.User, error)
}

type NannyProfileStore interface {
	Upsert(ctx context.Context, profile *models.NannyProfile) error
	FindByID(ctx context.Context, id int) (*models.NannyProfile, error)
	FindByUserID(ctx context.Context, userID int) (*models.NannyProfile, error)
	List(ctx context.Context, filter models.NannyProfileFilter) ([]models.NannyProfile, error)
}

type FamilyProfileStore interface {
	Upsert(ctx context.Context, profile *models.FamilyProfile) error
	FindByUserID(ctx context.Context, userID int) (*models.FamilyProfile, error)
}

type ContactRequestStore interface {
	Create(ctx context.Context, request *models.ContactRequest) error
	FindByID(ctx context.Context, id int) (*models.ContactRequest, error)
	ListForUser(ctx context.Context, userID int) ([]models.ContactRequestThread, error)
	Delete(ctx context.Context, id int) error
}

type MessageStore interface {
	Create(ctx context.Context, message *models.Message) error
	ListByContactRequest(ctx context.Context, contactRequestID int) ([]models.Message, error)
	LastForUser(ctx context.Context, userID int) (*models.Message, error)
}
