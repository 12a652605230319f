package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/site-content-api/internal/auth"
	"github.com/sbilibin2017/site-content-api/internal/jwt"
	"github.com/sbilibin2017/site-content-api/internal/logger"
	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/sbilibin2017/site-content-api/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// TokenGenerator issues signed access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// TokenRevoker records revoked token ids until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService handles login, profile lookup and logout.
type AuthService struct {
	reader  UserReader
	jwt     TokenGenerator
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance. revoker may be nil,
// in which case logout keeps no state and tokens live until they expire.
func NewAuthService(reader UserReader, jwt TokenGenerator, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		jwt:     jwt,
		revoker: revoker,
	}
}

// Login verifies the credentials and issues a token for the user.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		auth.CheckPasswordUnknownUser(password)
		logger.Log.Warnw("login for unknown user", "username", username)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		logger.Log.Warnw("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	return &models.LoginResponse{
		AccessToken: token,
		User:        user.Profile(),
	}, nil
}

// Profile returns the public profile of the token subject.
func (svc *AuthService) Profile(ctx context.Context, username string) (*models.UserProfile, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserDoesNotExist
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

// Logout revokes the token described by claims for the rest of its lifetime.
func (svc *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if svc.revoker == nil {
		logger.Log.Debugw("token revocation not configured, skipping", "jti", claims.ID)
		return nil
	}

	if err := svc.revoker.Revoke(ctx, claims.ID, claims.TTL()); err != nil {
		logger.Log.Errorw("failed to revoke token", "jti", claims.ID, "err", err)
		return err
	}
	return nil
}
