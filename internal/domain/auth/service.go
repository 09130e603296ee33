package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (LoginResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string, session SessionTrackingRequest) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
