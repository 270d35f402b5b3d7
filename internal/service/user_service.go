package service

import (
	"instagram-backend/internal/errors"
	"instagram-backend/internal/model"
	"instagram-backend/internal/repository/interfaces"
	"instagram-backend/internal/util"

	"go.uber.org/zap"
)

// UserService 处理与用户相关的业务逻辑
type UserService struct {
	userRepo interfaces.UserRepository
	hasher   util.PasswordHasher
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(userRepo interfaces.UserRepository, hasher util.PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// CreateUser 创建新用户，邮箱必须未被使用
func (s *UserService) CreateUser(email, password string, isActive bool) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if existing != nil {
		util.Logger.Warn("创建用户失败，邮箱已存在", zap.String("email", email))
		return nil, errors.New(errors.ErrEmailExists, "Email already exists")
	}

	stored, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternal, "Internal server error", err)
	}

	user := &model.User{
		Email:    email,
		Password: stored,
		IsActive: isActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	return user, nil
}

// GetUserByID 通过ID获取用户
func (s *UserService) GetUserByID(id int) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "User not found")
	}
	return user, nil
}

// ListUsers 获取全部用户
func (s *UserService) ListUsers() ([]*model.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	return users, nil
}

// UserServiceInterface 供处理器依赖和测试模拟
type UserServiceInterface interface {
	CreateUser(email, password string, isActive bool) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	ListUsers() ([]*model.User, error)
}

// 确保 UserService 实现了 UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)
