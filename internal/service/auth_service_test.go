package service

import (
	"testing"
	"time"

	"studymate_backend/internal/config"
	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Alex", Email: "alex@example.com", Password: "supersecret"}
	require.NoError(t, svc.Register(user))
	require.NotEqual(t, "supersecret", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	require.NoError(t, svc.Register(&model.User{Name: "Alex", Email: "alex@example.com", Password: "supersecret"}))
	err := svc.Register(&model.User{Name: "Sam", Email: "alex@example.com", Password: "othersecret"})
	require.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginIssuesParsableToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Alex", Email: "alex@example.com", Password: "supersecret"}
	require.NoError(t, svc.Register(user))

	token, err := svc.Login("alex@example.com", "supersecret")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "alex@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	require.NoError(t, svc.Register(&model.User{Name: "Alex", Email: "alex@example.com", Password: "supersecret"}))

	_, err := svc.Login("alex@example.com", "wrong")
	require.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginOAuthOnlyAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Alex", Email: "alex@example.com", GoogleID: "g-123"}
	require.NoError(t, db.Create(user).Error)

	_, err := svc.Login("alex@example.com", "anything")
	require.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestGenerateStateIsUnique(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	a, err := svc.GenerateState()
	require.NoError(t, err)
	b, err := svc.GenerateState()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
	require.NotEmpty(t, a)
}
