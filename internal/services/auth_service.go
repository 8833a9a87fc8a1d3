package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/learnpath/backend/internal/models"
	"go.uber.org/zap"
)

// ErrUnauthorized is returned when a token is missing, invalid or was revoked by logout
var ErrUnauthorized = errors.New("unauthorized")

// FlagRepository is the interface that wraps methods for the persisted app flags.
type FlagRepository interface {
	// Method Get returns the value of a flag.
	//
	// The boolean result is false when the flag was never set or has been deleted.
	Get(ctx context.Context, key string) (string, bool, error)
	// Method Set creates or replaces a flag.
	Set(ctx context.Context, key, value string) error
	// Method Delete removes a flag. Deleting a missing flag is not an error.
	Delete(ctx context.Context, key string) error
}

// TokenGenerator is the interface that wraps access token handling.
type TokenGenerator interface {
	GenerateAccessToken(userID string) (string, error)
	// Method ValidateAccessToken checks the signature and expiry of a token and returns its user id.
	ValidateAccessToken(token string) (string, error)
}

type authService struct {
	flags  FlagRepository
	tokens TokenGenerator
	userID string
	logger *zap.Logger
}

// NewAuthService creates a new auth service for the single configured user
func NewAuthService(flags FlagRepository, tokens TokenGenerator, userID string, logger *zap.Logger) *authService {
	return &authService{
		flags:  flags,
		tokens: tokens,
		userID: userID,
		logger: logger,
	}
}

// Login accepts any non-empty credentials and issues a new access token
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	token, err := s.issueToken(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("user_id", s.userID))
	return &models.TokenResponse{AccessToken: token}, nil
}

// Register accepts any non-empty name and credentials and issues a new access token
func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.TokenResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	token, err := s.issueToken(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", s.userID))
	return &models.TokenResponse{AccessToken: token}, nil
}

// Logout revokes the stored access token
func (s *authService) Logout(ctx context.Context) error {
	if err := s.flags.Delete(ctx, models.FlagAuthToken); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}

	s.logger.Info("user logged out", zap.String("user_id", s.userID))
	return nil
}

// Status reports whether onboarding was seen and whether a token is stored
func (s *authService) Status(ctx context.Context) (*models.AuthStatus, error) {
	seen, _, err := s.flags.Get(ctx, models.FlagHasSeenOnboarding)
	if err != nil {
		return nil, fmt.Errorf("failed to get onboarding flag: %w", err)
	}
	_, authenticated, err := s.flags.Get(ctx, models.FlagAuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth token: %w", err)
	}

	return &models.AuthStatus{
		HasSeenOnboarding: seen == "true",
		Authenticated:     authenticated,
	}, nil
}

// SetOnboardingSeen stores the onboarding flag
func (s *authService) SetOnboardingSeen(ctx context.Context, seen bool) error {
	if err := s.flags.Set(ctx, models.FlagHasSeenOnboarding, strconv.FormatBool(seen)); err != nil {
		return fmt.Errorf("failed to set onboarding flag: %w", err)
	}
	return nil
}

// Authenticate validates a bearer token and returns its user id.
// Only the token issued by the latest login is accepted.
func (s *authService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: token is required", ErrUnauthorized)
	}

	userID, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	stored, ok, err := s.flags.Get(ctx, models.FlagAuthToken)
	if err != nil {
		return "", fmt.Errorf("failed to get auth token: %w", err)
	}
	if !ok || stored != token {
		return "", fmt.Errorf("%w: token was revoked", ErrUnauthorized)
	}

	return userID, nil
}

func (s *authService) issueToken(ctx context.Context) (string, error) {
	token, err := s.tokens.GenerateAccessToken(s.userID)
	if err != nil {
		s.logger.Error("failed to generate access token", zap.Error(err))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.flags.Set(ctx, models.FlagAuthToken, token); err != nil {
		s.logger.Error("failed to store access token", zap.Error(err))
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}
