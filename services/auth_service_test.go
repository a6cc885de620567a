package services

import (
	"context"
	"errors"
	"testing"

	"nannyhub/models"
)

func newAuthFixture() (*AuthService, *memStore) {
	store := newMemStore()
	return NewAuthService(store, memSessionStore{store}), store
}

func mustRegister(t *testing.T, auth *AuthService, email, role string) *models.User {
	t.Helper()
	user, err := auth.Register(context.Background(), models.RegisterRequest{
		Email: email, Password: "pw123456", Role: role,
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func mustLogin(t *testing.T, auth *AuthService, email string) string {
	t.Helper()
	token, _, err := auth.Login(context.Background(), models.LoginRequest{
		Email: email, Password: "pw123456",
	})
	if err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
	return token
}

func wantAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want APIError %d %q", err, status, message)
	}
	if apiErr.Status != status || apiErr.Message != message {
		t.Fatalf("got %d %q, want %d %q", apiErr.Status, apiErr.Message, status, message)
	}
}

func TestRegisterNormalizesEmailAndRole(t *testing.T) {
	auth, _ := newAuthFixture()

	user, err := auth.Register(context.Background(), models.RegisterRequest{
		Email: "  Anna@Example.COM ", Password: "pw123456", Role: " NANNY ",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "anna@example.com" {
		t.Errorf("email = %q, want lowercase trimmed", user.Email)
	}
	if user.Role != models.RoleNanny {
		t.Errorf("role = %q, want %q", user.Role, models.RoleNanny)
	}
	if user.ID == 0 {
		t.Error("user id not assigned")
	}
	if user.PasswordHash == "pw123456" {
		t.Error("password stored in the clear")
	}
}

func TestRegisterValidation(t *testing.T) {
	auth, _ := newAuthFixture()
	ctx := context.Background()

	_, err := auth.Register(ctx, models.RegisterRequest{Email: "a@b.c", Password: "pw"})
	wantAPIError(t, err, 400, "email, password, and role are required")

	_, err = auth.Register(ctx, models.RegisterRequest{Email: "a@b.c", Password: "pw", Role: "admin"})
	wantAPIError(t, err, 400, "role must be nanny or family")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newAuthFixture()
	mustRegister(t, auth, "anna@example.com", models.RoleNanny)

	_, err := auth.Register(context.Background(), models.RegisterRequest{
		Email: "ANNA@example.com", Password: "other", Role: models.RoleFamily,
	})
	wantAPIError(t, err, 409, "email already registered")
}

func TestLoginIndistinguishableFailures(t *testing.T) {
	auth, _ := newAuthFixture()
	mustRegister(t, auth, "anna@example.com", models.RoleNanny)
	ctx := context.Background()

	_, _, unknownErr := auth.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "pw123456"})
	wantAPIError(t, unknownErr, 401, "invalid credentials")

	_, _, wrongErr := auth.Login(ctx, models.LoginRequest{Email: "anna@example.com", Password: "wrong"})
	wantAPIError(t, wrongErr, 401, "invalid credentials")

	if unknownErr.Error() != wrongErr.Error() {
		t.Error("unknown email and wrong password yield different messages")
	}
}

func TestLoginMintsResolvableToken(t *testing.T) {
	auth, _ := newAuthFixture()
	registered := mustRegister(t, auth, "anna@example.com", models.RoleNanny)

	token := mustLogin(t, auth, "anna@example.com")
	if token == "" {
		t.Fatal("empty token")
	}

	user, err := auth.ResolveUser(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("resolved user %d, want %d", user.ID, registered.ID)
	}
}

func TestLoginTokensAreIndependent(t *testing.T) {
	auth, _ := newAuthFixture()
	mustRegister(t, auth, "anna@example.com", models.RoleNanny)

	first := mustLogin(t, auth, "anna@example.com")
	second := mustLogin(t, auth, "anna@example.com")
	if first == second {
		t.Fatal("two logins produced the same token")
	}

	ctx := context.Background()
	if err := auth.Logout(ctx, first); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := auth.ResolveUser(ctx, first); err == nil {
		t.Error("revoked token still resolves")
	}
	if _, err := auth.ResolveUser(ctx, second); err != nil {
		t.Errorf("unrelated token revoked: %v", err)
	}
}

func TestLogoutIdempotent(t *testing.T) {
	auth, _ := newAuthFixture()
	mustRegister(t, auth, "anna@example.com", models.RoleNanny)
	token := mustLogin(t, auth, "anna@example.com")

	ctx := context.Background()
	if err := auth.Logout(ctx, token); err != nil {
		t.Fatalf("first logout: %v", err)
	}
	if err := auth.Logout(ctx, token); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if err := auth.Logout(ctx, "never-issued"); err != nil {
		t.Fatalf("logout of unknown token: %v", err)
	}
}

func TestResolveUserUnknownToken(t *testing.T) {
	auth, _ := newAuthFixture()
	_, err := auth.ResolveUser(context.Background(), "bogus")
	wantAPIError(t, err, 401, "unauthorized")
}
