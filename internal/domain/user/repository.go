package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter UserFilter) ([]User, int64, error)
	Update(ctx context.Context, u User) error
	UpdateAvatarURL(ctx context.Context, id string, avatarURL string) error
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
