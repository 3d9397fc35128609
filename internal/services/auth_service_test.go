package services

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusvoice/feedback-service/internal/models"
	"github.com/campusvoice/feedback-service/internal/store"
	"github.com/campusvoice/feedback-service/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seededStore returns a memory store pre-loaded with the default users and
// catalog, the state a fresh deployment starts from.
func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, EnsureDefaults(context.Background(), st, testLogger()))
	return st
}

func newAuthService(t *testing.T) (AuthService, *store.MemoryStore) {
	t.Helper()
	st := seededStore(t)
	return NewAuthService(st, testLogger(), validator.New(), 0), st
}

func TestAuthService_LoginSuccess(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.Login(context.Background(), "admin@college.edu", "admin123")

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.Equal(t, models.RoleAdmin, result.User.Role)
	assert.Empty(t, result.User.Password)
	assert.True(t, strings.HasPrefix(result.Token, "token_1_"))
}

func TestAuthService_LoginEmailCaseAndWhitespaceInsensitive(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.Login(context.Background(), "  Admin@College.EDU ", "admin123")

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.Login(context.Background(), "admin@college.edu", "nope")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Incorrect password", result.Message)
	assert.Nil(t, result.User)
	assert.Empty(t, result.Token)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.Login(context.Background(), "ghost@college.edu", "whatever")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "No account found", result.Message)
}

func TestAuthService_SignupCreatesStudent(t *testing.T) {
	svc, st := newAuthService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, &SignupRequest{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane@student.edu",
		Password:  "secret12",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, created.Role)
	assert.Empty(t, created.Password)
	assert.NotZero(t, created.ID)

	// The stored record keeps the password; only the returned copy drops it.
	users := []models.User{}
	found, err := st.Read(ctx, models.StorageKeyUsers, &users)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, users, 2)
	assert.Equal(t, "secret12", users[1].Password)

	// And the new account can log in.
	result, err := svc.Login(ctx, "jane@student.edu", "secret12")
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup(context.Background(), &SignupRequest{
		FirstName: "Another",
		LastName:  "Admin",
		Email:     "ADMIN@college.edu",
		Password:  "secret12",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmailRegistered)
	assert.True(t, IsConflict(err))
}

func TestAuthService_SignupValidation(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup(context.Background(), &SignupRequest{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "not-an-email",
		Password:  "short",
	})

	require.Error(t, err)
	assert.True(t, IsValidation(err))

	var validationErrors ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	fields := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		fields = append(fields, ve.Field)
	}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}
