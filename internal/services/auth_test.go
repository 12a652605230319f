package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/sbilibin2017/site-content-api/internal/auth"
	"github.com/sbilibin2017/site-content-api/internal/jwt"
	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/sbilibin2017/site-content-api/internal/repositories"
	"github.com/sbilibin2017/site-content-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockJWT, nil)

	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	admin := &models.User{ID: 1, Username: "admin", Email: "admin@foodcompany.ly", PasswordHash: hash, Role: "admin"}

	tests := []struct {
		name      string
		username  string
		password  string
		user      *models.User
		readerErr error
		token     string
		jwtErr    error
		wantErr   error
	}{
		{
			name:     "successful login",
			username: "admin",
			password: "admin123",
			user:     admin,
			token:    "JWT_TOKEN",
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "wrong",
			user:     admin,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "unknown user",
			username:  "ghost",
			password:  "admin123",
			readerErr: repositories.ErrNotFound,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "admin",
			password:  "admin123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "jwt error",
			username: "admin",
			password: "admin123",
			user:     admin,
			jwtErr:   errors.New("sign error"),
			wantErr:  errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.password == "admin123" {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.Username).
					Return(tt.token, tt.jwtErr)
			}

			resp, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.token, resp.AccessToken)
			assert.Equal(t, models.UserProfile{Username: "admin", Email: "admin@foodcompany.ly", Role: "admin"}, resp.User)
		})
	}
}

func TestAuthService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockTokenGenerator(ctrl), nil)
	ctx := context.Background()

	mockReader.EXPECT().GetByUsername(ctx, "admin").
		Return(&models.User{Username: "admin", Email: "a@b.c", Role: "admin", PasswordHash: "h"}, nil)
	profile, err := svc.Profile(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, &models.UserProfile{Username: "admin", Email: "a@b.c", Role: "admin"}, profile)

	mockReader.EXPECT().GetByUsername(ctx, "gone").Return(nil, repositories.ErrNotFound)
	profile, err = svc.Profile(ctx, "gone")
	assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
	assert.Nil(t, profile)

	dbErr := errors.New("db error")
	mockReader.EXPECT().GetByUsername(ctx, "admin").Return(nil, dbErr)
	_, err = svc.Profile(ctx, "admin")
	assert.ErrorIs(t, err, dbErr)
}

func newClaims(jti string, ttl time.Duration) *jwt.Claims {
	return &jwt.Claims{RegisteredClaims: gojwt.RegisteredClaims{
		ID:        jti,
		Subject:   "admin",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(ttl)),
	}}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("without revoker", func(t *testing.T) {
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockTokenGenerator(ctrl), nil)
		assert.NoError(t, svc.Logout(ctx, newClaims("jti-1", time.Minute)))
	})

	t.Run("revokes for remaining lifetime", func(t *testing.T) {
		revoker := services.NewMockTokenRevoker(ctrl)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockTokenGenerator(ctrl), revoker)

		revoker.EXPECT().
			Revoke(ctx, "jti-2", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
				assert.InDelta(t, time.Minute.Seconds(), ttl.Seconds(), 5)
				return nil
			})

		assert.NoError(t, svc.Logout(ctx, newClaims("jti-2", time.Minute)))
	})

	t.Run("revoker error", func(t *testing.T) {
		revoker := services.NewMockTokenRevoker(ctrl)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockTokenGenerator(ctrl), revoker)

		revoker.EXPECT().Revoke(ctx, "jti-3", gomock.Any()).Return(errors.New("redis down"))
		assert.Error(t, svc.Logout(ctx, newClaims("jti-3", time.Minute)))
	})
}
