package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/repository/mocks"
	"github.com/vfg2006/app-rank-navi-api/internal/config"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	})

	return service, mockUserRepo
}

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	service, mockUserRepo := newTestService(t)

	mockUserRepo.EXPECT().
		GetByEmail("ana@example.com").
		Return(nil, nil)

	mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			assert.Equal(t, "ana@example.com", user.Email)
			assert.Equal(t, domain.RoleUser, user.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
			user.ID = "abc123"
			return nil
		})

	user, err := service.Register("  Ana@Example.com ", "Ana", "senha123")

	require.NoError(t, err)
	assert.Equal(t, "abc123", user.ID)
	assert.Empty(t, user.PasswordHash, "o hash nunca volta para o chamador")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service, mockUserRepo := newTestService(t)

	mockUserRepo.EXPECT().
		GetByEmail("ana@example.com").
		Return(&domain.User{ID: "abc123"}, nil)

	_, err := service.Register("ana@example.com", "Ana", "senha123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register("ana@example.com", "", "senha123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestLoginIssuesValidToken(t *testing.T) {
	service, mockUserRepo := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockUserRepo.EXPECT().
		GetByEmail("ana@example.com").
		Return(&domain.User{
			ID:           "abc123",
			Email:        "ana@example.com",
			Role:         domain.RoleAdmin,
			PasswordHash: string(hash),
		}, nil)

	mockUserRepo.EXPECT().
		UpdateLastSignedIn("abc123").
		Return(nil)

	token, err := service.Login("ana@example.com", "senha123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.UserRole)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	service, mockUserRepo := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockUserRepo.EXPECT().
		GetByEmail("ana@example.com").
		Return(&domain.User{ID: "abc123", PasswordHash: string(hash)}, nil)

	_, err = service.Login("ana@example.com", "errada")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserNotFound(t *testing.T) {
	service, mockUserRepo := newTestService(t)

	mockUserRepo.EXPECT().
		GetByEmail("ninguem@example.com").
		Return(nil, nil)

	_, err := service.Login("ninguem@example.com", "senha123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ValidateToken("token-invalido")

	assert.Error(t, err)
}

func TestLoginSurvivesLastSignedInFailure(t *testing.T) {
	service, mockUserRepo := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockUserRepo.EXPECT().
		GetByEmail("ana@example.com").
		Return(&domain.User{ID: "abc123", PasswordHash: string(hash)}, nil)

	mockUserRepo.EXPECT().
		UpdateLastSignedIn("abc123").
		Return(errors.New("banco indisponível"))

	token, err := service.Login("ana@example.com", "senha123")

	require.NoError(t, err, "falha ao registrar último acesso não impede o login")
	assert.NotEmpty(t, token)
}
