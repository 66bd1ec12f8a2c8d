package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/mattys-media/backend/apperrors"
	"github.com/mattys-media/backend/models"
)

type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type ITokenService interface {
	Issue(userID string) (string, error)
	Verify(tokenStr string) (string, error)
}

type AuthService struct {
	userRepo     IUserRepository
	tokenService ITokenService
}

func NewAuthService(ur IUserRepository, ts ITokenService) *AuthService {
	return &AuthService{userRepo: ur, tokenService: ts}
}

// Register creates a new account and returns a fresh token for it.
// Duplicate emails are rejected both by the pre-check and, under
// concurrent registration, by the unique index on users.email.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrDuplicateEmail
	} else if err != mongo.ErrNoDocuments {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicateEmail, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	token, err := s.tokenService.Issue(user.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return &models.AuthResponse{Token: token, User: user.ToResponse()}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password return the same generic error so callers cannot probe which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenService.Issue(user.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return &models.AuthResponse{Token: token, User: user.ToResponse()}, nil
}

// ResolveToken verifies a bearer token and loads the user it references.
// A token whose user no longer exists fails closed with Unauthorized.
func (s *AuthService) ResolveToken(ctx context.Context, tokenStr string) (*models.User, error) {
	userID, err := s.tokenService.Verify(tokenStr)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrUnauthorized
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return user, nil
}
