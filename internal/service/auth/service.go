package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/auth"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/user"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/database"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/oauth"
	"github.com/cleansweep-app/timeclock-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db               *database.DB
	userRepo         user.UserRepository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
	googleService    oauth.GoogleService
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:               db,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
		googleService:    googleService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	return a.issueTokens(ctx, userData, session)
}

// LoginWithGoogle implements auth.AuthService. The Google account must map
// onto an existing user; sign-in never creates accounts.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	profile, err := a.googleService.ExchangeCode(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to verify google sign-in: %w", err)
	}
	if !profile.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	userData, err := a.userRepo.LinkGoogleAccount(ctx, profile.GoogleID, profile.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrUserNotFound
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to link google account: %w", err)
	}

	if !userData.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	return a.issueTokens(ctx, userData, auth.SessionTrackingRequest{})
}

// Refresh implements auth.AuthService. The presented token is revoked and a
// new pair is issued, so each refresh token is usable exactly once.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	userID, err := a.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	stored, err := a.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return auth.LoginResponse{}, auth.ErrInvalidToken
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if stored.RevokedAt != nil {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}
	if !stored.IsValid(time.Now()) {
		return auth.LoginResponse{}, auth.ErrTokenExpired
	}
	if stored.UserID != userID {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrUserNotFound
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !userData.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	var response auth.LoginResponse
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.refreshTokenRepo.Revoke(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		response, err = a.issueTokens(txCtx, userData, session)
		return err
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return response, nil
}

// Logout implements auth.AuthService. Unknown tokens are treated as already
// logged out.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := a.refreshTokenRepo.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, auth.ErrRefreshTokenRevoked) {
			return nil
		}
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Role, userData.IsActive)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	stored := auth.RefreshToken{
		UserID:    userData.ID,
		Token:     refreshToken,
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	}
	if session.IPAddress != "" {
		stored.IPAddress = &session.IPAddress
	}
	if session.UserAgent != "" {
		stored.UserAgent = &session.UserAgent
	}

	if err := a.refreshTokenRepo.Store(ctx, stored); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
		UserID:                userData.ID,
		Role:                  string(userData.Role),
		FullName:              userData.FullName,
	}, nil
}
