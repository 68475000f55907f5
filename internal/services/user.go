package services

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"procurement-api/internal/dto"
	"procurement-api/internal/entities"
	"procurement-api/internal/repositories"
	"procurement-api/pkg/types"
	"procurement-api/pkg/utils"
)

const defaultUserRole = "user"

type UserServiceInterface interface {
	ListUsers(ctx context.Context, q ListUsersQuery) ([]entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	CreateUser(ctx context.Context, d dto.CreateUserDTO) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, d dto.UpdateUserDTO) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

type UserService struct {
	uow    repositories.UnitOfWork
	logger *zap.Logger
}

func NewUserService(uow repositories.UnitOfWork, logger *zap.Logger) *UserService {
	return &UserService{uow: uow, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context, q ListUsersQuery) ([]entities.User, error) {
	var users []entities.User
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		users, err = repos.Users().List(ctx, q.Filter())
		return err
	})
	return users, err
}

func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	var user *entities.User
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		user, err = repos.Users().GetByID(ctx, id)
		return err
	})
	return user, err
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user *entities.User
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		user, err = repos.Users().GetByUsername(ctx, username)
		return err
	})
	return user, err
}

func (s *UserService) CreateUser(ctx context.Context, d dto.CreateUserDTO) (*entities.User, error) {
	hashed, err := utils.HashPassword(d.Password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := d.Role
	if role == "" {
		role = defaultUserRole
	}
	user := &entities.User{
		BaseEntity:     types.NewBaseEntity(),
		Username:       d.Username,
		Email:          d.Email,
		FullName:       d.FullName,
		HashedPassword: hashed,
		Role:           role,
		PhoneNumber:    null.StringFromPtr(d.PhoneNumber),
	}

	var created *entities.User
	err = s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		created, err = repos.Users().Create(ctx, user)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to create user", zap.String("username", d.Username), zap.Error(err))
		return nil, err
	}

	s.logger.Info("user created", zap.Uint64("id", created.ID), zap.String("username", created.Username))
	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, d dto.UpdateUserDTO) (*entities.User, error) {
	patch := entities.UserPatch{
		Username:    d.Username,
		Email:       d.Email,
		FullName:    d.FullName,
		Role:        d.Role,
		PhoneNumber: d.PhoneNumber,
		IsActive:    d.IsActive,
	}
	if d.Password != nil {
		hashed, err := utils.HashPassword(*d.Password)
		if err != nil {
			s.logger.Error("failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch.HashedPassword = &hashed
	}

	var updated *entities.User
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		updated, err = repos.Users().Update(ctx, id, patch)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to update user", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("user updated", zap.Uint64("id", updated.ID))
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := s.uow.Do(ctx, func(repos repositories.Registry) (err error) {
		deleted, err = repos.Users().Delete(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to delete user", zap.String("id", id), zap.Error(err))
		return false, err
	}
	if deleted {
		s.logger.Info("user deleted", zap.String("id", id))
	}
	return deleted, nil
}
