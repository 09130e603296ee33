package user

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/user"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo    user.UserRepository
	fileStorage storage.FileStorage
}

func NewUserService(userRepo user.UserRepository, fileStorage storage.FileStorage) user.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        email,
		PasswordHash: &passwordHash,
		FullName:     req.FullName,
		Role:         user.Role(req.Role),
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(created), nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	userData, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toUserResponse(userData), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, filter user.UserFilter) (user.ListUserResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return user.ListUserResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}

	return user.ListUserResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Users:      responses,
	}, nil
}

// Update implements user.UserService. Only the provided fields change.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	userData, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.FullName != nil {
		userData.FullName = *req.FullName
	}
	if req.Role != nil {
		userData.Role = user.Role(*req.Role)
	}
	if req.IsActive != nil {
		userData.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, userData); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	return toUserResponse(userData), nil
}

// UploadAvatar implements user.UserService.
func (s *UserServiceImpl) UploadAvatar(ctx context.Context, req user.UploadAvatarRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	userData, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	ext := strings.ToLower(filepath.Ext(req.FileHeader.Filename))
	path := fmt.Sprintf("avatars/%s/%s%s", userData.ID, uuid.NewString(), ext)

	contentType := req.FileHeader.Header.Get("Content-Type")
	if _, err := s.fileStorage.Upload(ctx, req.File, path, contentType); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to upload avatar: %w", err)
	}

	avatarURL, err := s.fileStorage.GetURL(ctx, path, 0)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to resolve avatar url: %w", err)
	}

	if err := s.userRepo.UpdateAvatarURL(ctx, userData.ID, avatarURL); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to store avatar url: %w", err)
	}

	userData.AvatarURL = &avatarURL
	return toUserResponse(userData), nil
}

func toUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
