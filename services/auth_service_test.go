package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/mattys-media/backend/apperrors"
	"github.com/mattys-media/backend/models"
)

// --- Mocks for Dependencies ---

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) Issue(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
func (m *MockTokenService) Verify(tokenStr string) (string, error) {
	args := m.Called(tokenStr)
	return args.String(0), args.Error(1)
}

// --- Tests ---

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		authService := NewAuthService(mockRepo, mockTokens)

		mockRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, mongo.ErrNoDocuments).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()
		mockTokens.On("Issue", mock.AnythingOfType("string")).Return("signed-token", nil).Once()

		resp, err := authService.Register(ctx, "new@example.com", "password123", "New User")

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, "new@example.com", resp.User.Email)
		assert.Equal(t, "New User", resp.User.Name)
		assert.NotEmpty(t, resp.User.ID)

		// The stored record carries a bcrypt hash, never the plaintext.
		created := mockRepo.Calls[1].Arguments.Get(1).(*models.User)
		assert.NotEqual(t, "password123", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))

		mockRepo.AssertExpectations(t)
		mockTokens.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		authService := NewAuthService(mockRepo, mockTokens)

		existing := &models.User{ID: uuid.NewString(), Email: "taken@example.com"}
		mockRepo.On("FindByEmail", ctx, "taken@example.com").Return(existing, nil).Once()

		_, err := authService.Register(ctx, "taken@example.com", "password123", "Someone")

		assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
		mockRepo.AssertNotCalled(t, "Create")
		mockRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	password := "strongpassword123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	testUser := &models.User{
		ID:           uuid.NewString(),
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		authService := NewAuthService(mockRepo, mockTokens)

		mockRepo.On("FindByEmail", ctx, testUser.Email).Return(testUser, nil).Once()
		mockTokens.On("Issue", testUser.ID).Return("signed-token", nil).Once()

		resp, err := authService.Login(ctx, testUser.Email, password)

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, testUser.ID, resp.User.ID)
		mockRepo.AssertExpectations(t)
		mockTokens.AssertExpectations(t)
	})

	t.Run("Unknown Email And Wrong Password Are Indistinguishable", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		authService := NewAuthService(mockRepo, mockTokens)

		mockRepo.On("FindByEmail", ctx, "absent@example.com").Return(nil, mongo.ErrNoDocuments).Once()
		mockRepo.On("FindByEmail", ctx, testUser.Email).Return(testUser, nil).Once()

		_, errAbsent := authService.Login(ctx, "absent@example.com", password)
		_, errWrongPw := authService.Login(ctx, testUser.Email, "wrongpassword")

		assert.ErrorIs(t, errAbsent, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPw, apperrors.ErrInvalidCredentials)
		assert.Equal(t, errAbsent.Error(), errWrongPw.Error())
		mockRepo.AssertExpectations(t)
	})
}

func TestResolveToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		authService := NewAuthService(mockRepo, mockTokens)

		user := &models.User{ID: "user-1", Email: "a@b.c", Name: "A"}
		mockTokens.On("Verify", "good-token").Return("user-1", nil).Once()
		mockRepo.On("FindByID", ctx, "user-1").Return(user, nil).Once()

		resolved, err := authService.ResolveToken(ctx, "good-token")

		assert.NoError(t, err)
		assert.Equal(t, user, resolved)
	})

	t.Run("Dangling User ID", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		authService := NewAuthService(mockRepo, mockTokens)

		mockTokens.On("Verify", "orphan-token").Return("gone-user", nil).Once()
		mockRepo.On("FindByID", ctx, "gone-user").Return(nil, mongo.ErrNoDocuments).Once()

		_, err := authService.ResolveToken(ctx, "orphan-token")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Expired Token Propagates", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenService)
		authService := NewAuthService(mockRepo, mockTokens)

		mockTokens.On("Verify", "old-token").Return("", apperrors.ErrTokenExpired).Once()

		_, err := authService.ResolveToken(ctx, "old-token")

		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
		mockRepo.AssertNotCalled(t, "FindByID")
	})
}
