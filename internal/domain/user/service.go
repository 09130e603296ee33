package user

import "context"

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context, filter UserFilter) (ListUserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	UploadAvatar(ctx context.Context, req UploadAvatarRequest) (UserResponse, error)
}
