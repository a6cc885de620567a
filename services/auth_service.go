package services

import (
	"context"
	"errors"
	"strings"

	"nannyhub/models"
	"nannyhub/utils"
)

type AuthService struct {
	users    UserStore
	sessions SessionStore
}

func NewAuthService(users UserStore, sessions SessionStore) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := strings.ToLower(strings.TrimSpace(req.Role))

	if email == "" || req.Password == "" || role == "" {
		return nil, models.ValidationError("email, password, and role are required")
	}
	if role != models.RoleNanny && role != models.RoleFamily {
		return nil, models.ValidationError("role must be nanny or family")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	// The unique index on email is the serialization point for concurrent
	// registrations; the loser gets the conflict.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, models.ConflictError("email already registered")
		}
		return nil, err
	}
	return user, nil
}

// Login deliberately returns the same error for an unknown email and a wrong
// password.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == "" || req.Password == "" {
		return "", nil, models.ValidationError("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", nil, models.AuthError("invalid credentials")
		}
		return "", nil, err
	}
	if !utils.VerifyPassword(user.PasswordHash, req.Password) {
		return "", nil, models.AuthError("invalid credentials")
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", nil, err
	}

	session := &models.Session{UserID: user.ID, Token: token}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout revokes the session for the presented token. Unknown tokens are a
// no-op so repeated logouts succeed.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteByToken(ctx, token)
}

// ResolveUser is the authorization gate used by the auth middleware: it maps
// a bearer token to its session owner.
func (s *AuthService) ResolveUser(ctx context.Context, token string) (*models.User, error) {
	user, err := s.sessions.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.AuthError("unauthorized")
		}
		return nil, err
	}
	return user, nil
}
