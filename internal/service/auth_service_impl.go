// internal/service/auth_service_impl.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

type authServiceImpl struct {
	store *Store
	jwt   *utils.JWTManager
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(store *Store, jwt *utils.JWTManager) AuthService {
	return &authServiceImpl{store: store, jwt: jwt}
}

// Register implements the registration logic.
func (s *authServiceImpl) Register(ctx context.Context, input *models.RegisterInput) (*models.TokenResponse, error) {
	// Hash outside the lock; bcrypt is slow on purpose.
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: Failed to hash password during registration")
		return nil, fmt.Errorf("password processing error: %w", err)
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, acc := range s.store.accounts {
		if strings.EqualFold(acc.user.Username, input.Username) || strings.EqualFold(acc.user.Email, input.Email) {
			zlog.Warn().Str("username", input.Username).Str("email", input.Email).Msg("Service: Username or email conflict during registration")
			return nil, ErrUsernameOrEmailExists
		}
	}

	acc := &account{
		user: models.User{
			ID:       s.store.next("user"),
			Username: input.Username,
			Email:    input.Email,
			FullName: input.FullName,
			Level:    1,
		},
		passwordHash: hashedPassword,
	}
	s.store.accounts[acc.user.ID] = acc
	s.store.touch(acc.user.ID)

	zlog.Info().Int("userID", acc.user.ID).Str("username", input.Username).Msg("Service: User registered successfully")
	return s.issue(acc.user)
}

// Login implements the login logic.
func (s *authServiceImpl) Login(ctx context.Context, input *models.LoginInput) (*models.TokenResponse, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var found *account
	for _, acc := range s.store.accounts {
		if strings.EqualFold(acc.user.Username, input.EmailOrUsername) || strings.EqualFold(acc.user.Email, input.EmailOrUsername) {
			found = acc
			break
		}
	}
	if found == nil {
		zlog.Info().Str("identifier", input.EmailOrUsername).Msg("Service: User not found during login attempt")
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, found.passwordHash) {
		zlog.Info().Str("identifier", input.EmailOrUsername).Msg("Service: Invalid password provided during login attempt")
		return nil, ErrInvalidCredentials
	}

	s.store.touch(found.user.ID)
	zlog.Info().Str("username", found.user.Username).Msg("Service: User logged in successfully")
	return s.issue(found.user)
}

func (s *authServiceImpl) Me(ctx context.Context, userID int) (*models.User, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	acc, ok := s.store.accounts[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	user := acc.user
	return &user, nil
}

func (s *authServiceImpl) Refresh(ctx context.Context, userID int) (*models.TokenResponse, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	acc, ok := s.store.accounts[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	s.store.touch(userID)
	return s.issue(acc.user)
}

func (s *authServiceImpl) issue(user models.User) (*models.TokenResponse, error) {
	token, err := s.jwt.GenerateJWT(user.ID, user.Username, user.Email)
	if err != nil {
		zlog.Error().Err(err).Int("user_id", user.ID).Msg("Service: Error generating JWT")
		return nil, fmt.Errorf("%w: %v", ErrTokenFailed, err)
	}
	return &models.TokenResponse{AccessToken: token, TokenType: "bearer", User: user}, nil
}
