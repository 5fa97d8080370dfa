package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadcentral/internal/auth"
	"github.com/xavierca1/leadcentral/internal/entity"
)

type stubUserRepository struct {
	mock.Mock
}

func (m *stubUserRepository) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *stubUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *stubUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *stubUserRepository) FindByValidationToken(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *stubUserRepository) Activate(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *stubUserRepository) UpdateStatus(ctx context.Context, id string, status entity.UserStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *stubUserRepository) ListByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *stubUserRepository) CountByRoleAndStatus(ctx context.Context, role entity.Role, status entity.UserStatus) (int, error) {
	args := m.Called(ctx, role, status)
	return args.Int(0), args.Error(1)
}

func echoUserHandler(t *testing.T, captured **entity.User) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		assert.True(t, ok)
		*captured = user
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_InjectsUserIntoContext(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	users := new(stubUserRepository)

	token, err := tokens.Generate("user-1", entity.RoleProspecteur)
	assert.Nil(t, err)
	users.On("FindByID", mock.Anything, "user-1").Return(&entity.User{
		ID:     "user-1",
		Nom:    "Martin",
		Prenom: "Claire",
		Role:   entity.RoleProspecteur,
		Status: entity.UserActive,
	}, nil)

	var captured *entity.User
	handler := NewAuthenticator(tokens, users).Authenticate(echoUserHandler(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", captured.ID)
}

func TestAuthenticate_MissingHeaderIs401(t *testing.T) {
	handler := NewAuthenticator(auth.NewTokenManager("test-secret"), new(stubUserRepository)).
		Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/prospects", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token manquant")
}

func TestAuthenticate_BadTokenIs401(t *testing.T) {
	handler := NewAuthenticator(auth.NewTokenManager("test-secret"), new(stubUserRepository)).
		Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/prospects", nil)
	req.Header.Set("Authorization", "Bearer pas-un-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token invalide")
}

func TestRequireRole_BlocksNonAdmin(t *testing.T) {
	gate := RequireRole(entity.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	prospecteur := &entity.User{ID: "user-1", Role: entity.RoleProspecteur}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req = req.WithContext(context.WithValue(req.Context(), userContextKey, prospecteur))
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Accès non autorisé")
}

func TestRequireRole_AllowsAdmin(t *testing.T) {
	gate := RequireRole(entity.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	admin := &entity.User{ID: "admin-1", Role: entity.RoleAdmin}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req = req.WithContext(context.WithValue(req.Context(), userContextKey, admin))
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
