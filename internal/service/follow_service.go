package service

import (
	"instagram-backend/internal/errors"
	"instagram-backend/internal/model"
	"instagram-backend/internal/repository/interfaces"
	"instagram-backend/internal/util"

	"go.uber.org/zap"
)

// FollowService 处理粉丝和关注关系相关的业务逻辑
type FollowService struct {
	followerRepo interfaces.FollowerRepository
	userRepo     interfaces.UserRepository
}

// NewFollowService 创建一个新的 FollowService 实例
func NewFollowService(followerRepo interfaces.FollowerRepository, userRepo interfaces.UserRepository) *FollowService {
	return &FollowService{
		followerRepo: followerRepo,
		userRepo:     userRepo,
	}
}

// Follow 建立关注关系，粉丝和用户都必须存在且尚未关注
func (s *FollowService) Follow(followerID, userID int) (*model.Followership, error) {
	follower, err := s.followerRepo.GetFollowerByID(followerID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if follower == nil {
		return nil, errors.New(errors.ErrFollowerNotFound, "Follower not found")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "User not found")
	}

	exists, err := s.followerRepo.FollowershipExists(followerID, userID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if exists {
		util.Logger.Warn("重复关注",
			zap.Int("follower_id", followerID),
			zap.Int("user_id", userID))
		return nil, errors.New(errors.ErrAlreadyFollowing, "Already following")
	}

	f := &model.Followership{FollowerID: followerID, UserID: userID}
	if err := s.followerRepo.CreateFollowership(f); err != nil {
		// 联合主键在并发下兜底重复检查，仓库层已映射为"已关注"
		if errors.Is(err, errors.ErrAlreadyFollowing) {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	return f, nil
}

// GetUserFollowers 获取关注某用户的全部关系行，用户不存在时报404
func (s *FollowService) GetUserFollowers(userID int) ([]*model.Followership, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "User not found")
	}

	list, err := s.followerRepo.GetFollowershipsByUserID(userID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	return list, nil
}

// FollowServiceInterface 供处理器依赖和测试模拟
type FollowServiceInterface interface {
	Follow(followerID, userID int) (*model.Followership, error)
	GetUserFollowers(userID int) ([]*model.Followership, error)
}

// 确保 FollowService 实现了 FollowServiceInterface
var _ FollowServiceInterface = (*FollowService)(nil)
