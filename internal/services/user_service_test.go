package services

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modella_backend/internal/config"
	"modella_backend/internal/models"
	"modella_backend/pkg/apperrors"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	os.Exit(m.Run())
}

func registerReq(userID, email string) *models.CreateUserRequest {
	role := models.RoleBrand
	if models.UserIDPattern.MatchString(userID) && userID[:5] == models.RoleModel {
		role = models.RoleModel
	}
	return &models.CreateUserRequest{
		UserID:   userID,
		Name:     "Test User",
		Email:    email,
		Password: "secret123",
		Role:     role,
	}
}

func TestRegister(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	resp, err := svc.Register(registerReq("model42", "model42@test.local"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "model42", resp.User.UserID)
	assert.NotEmpty(t, resp.User.PasswordHash)
}

func TestRegisterDuplicateUserIsBadRequest(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(registerReq("model42", "model42@test.local"))
	require.NoError(t, err)

	// Повторная регистрация того же user_Id - 400, а не 500.
	_, err = svc.Register(registerReq("model42", "other@test.local"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestRegisterRejectsBadUserID(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	for _, id := range []string{"agency1", "model", "brand", "123model"} {
		req := registerReq(id, id+"@test.local")
		req.Role = models.RoleModel
		_, err := svc.Register(req)
		assert.Error(t, err, "user_Id %q", id)
	}
}

func TestRegisterRejectsRolePrefixMismatch(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	req := registerReq("model42", "model42@test.local")
	req.Role = models.RoleBrand
	_, err := svc.Register(req)
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(registerReq("brand7", "brand7@test.local"))
	require.NoError(t, err)

	_, err = svc.Login(&models.LoginRequest{Email: "brand7@test.local", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	resp, err := svc.Login(&models.LoginRequest{Email: "brand7@test.local", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}
