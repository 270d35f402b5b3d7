package service

import (
	"instagram-backend/internal/errors"
	"instagram-backend/internal/model"
	"instagram-backend/internal/repository/interfaces"
)

// AdminService 为管理面板提供对六个实体的通用读写
type AdminService struct {
	userRepo     interfaces.UserRepository
	postRepo     interfaces.PostRepository
	followerRepo interfaces.FollowerRepository
}

// NewAdminService 创建一个新的 AdminService 实例
func NewAdminService(userRepo interfaces.UserRepository, postRepo interfaces.PostRepository, followerRepo interfaces.FollowerRepository) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		postRepo:     postRepo,
		followerRepo: followerRepo,
	}
}

// Stats 返回每个实体的行数统计
func (s *AdminService) Stats() (map[string]int, error) {
	counts := make(map[string]int)

	var err error
	if counts["users"], err = s.userRepo.Count(); err != nil {
		return nil, err
	}
	if counts["posts"], err = s.postRepo.CountPosts(); err != nil {
		return nil, err
	}
	if counts["media"], err = s.postRepo.CountMedia(); err != nil {
		return nil, err
	}
	if counts["comments"], err = s.postRepo.CountComments(); err != nil {
		return nil, err
	}
	if counts["followers"], err = s.followerRepo.CountFollowers(); err != nil {
		return nil, err
	}
	if counts["followerships"], err = s.followerRepo.CountFollowerships(); err != nil {
		return nil, err
	}
	return counts, nil
}

// 实体列表

func (s *AdminService) ListUsers() ([]*model.User, error) {
	return s.userRepo.FindAll()
}

func (s *AdminService) ListPosts() ([]*model.Post, error) {
	return s.postRepo.ListPosts()
}

func (s *AdminService) ListMedia() ([]*model.Media, error) {
	return s.postRepo.ListMedia()
}

func (s *AdminService) ListComments() ([]*model.Comment, error) {
	return s.postRepo.ListComments()
}

func (s *AdminService) ListFollowers() ([]*model.Follower, error) {
	return s.followerRepo.ListFollowers()
}

func (s *AdminService) ListFollowerships() ([]*model.Followership, error) {
	return s.followerRepo.ListFollowerships()
}

// 按ID获取单个实体；关注关系是联合主键，不提供按ID获取

func (s *AdminService) GetUser(id int) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "User not found")
	}
	return user, nil
}

func (s *AdminService) GetPost(id int) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New(errors.ErrPostNotFound, "Post not found")
	}
	return post, nil
}

func (s *AdminService) GetMedia(id int) (*model.Media, error) {
	media, err := s.postRepo.GetMediaByID(id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, errors.New(errors.ErrResourceNotFound, "Media not found")
	}
	return media, nil
}

func (s *AdminService) GetComment(id int) (*model.Comment, error) {
	comment, err := s.postRepo.GetCommentByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errors.New(errors.ErrCommentNotFound, "Comment not found")
	}
	return comment, nil
}

func (s *AdminService) GetFollower(id int) (*model.Follower, error) {
	follower, err := s.followerRepo.GetFollowerByID(id)
	if err != nil {
		return nil, err
	}
	if follower == nil {
		return nil, errors.New(errors.ErrFollowerNotFound, "Follower not found")
	}
	return follower, nil
}

// 实体删除；帖子删除沿用级联语义

func (s *AdminService) DeleteUser(id int) error {
	return s.userRepo.Delete(id)
}

func (s *AdminService) DeletePost(id int) error {
	return s.postRepo.DeletePost(id)
}

func (s *AdminService) DeleteMedia(id int) error {
	return s.postRepo.DeleteMedia(id)
}

func (s *AdminService) DeleteComment(id int) error {
	return s.postRepo.DeleteComment(id)
}

func (s *AdminService) DeleteFollower(id int) error {
	return s.followerRepo.DeleteFollower(id)
}

func (s *AdminService) DeleteFollowership(followerID, userID int) error {
	return s.followerRepo.DeleteFollowership(followerID, userID)
}

// CreateFollower 创建只有代理主键的粉丝行
func (s *AdminService) CreateFollower() (*model.Follower, error) {
	follower := &model.Follower{}
	if err := s.followerRepo.CreateFollower(follower); err != nil {
		return nil, err
	}
	return follower, nil
}

// AdminServiceInterface 供处理器依赖和测试模拟
type AdminServiceInterface interface {
	Stats() (map[string]int, error)

	ListUsers() ([]*model.User, error)
	ListPosts() ([]*model.Post, error)
	ListMedia() ([]*model.Media, error)
	ListComments() ([]*model.Comment, error)
	ListFollowers() ([]*model.Follower, error)
	ListFollowerships() ([]*model.Followership, error)

	GetUser(id int) (*model.User, error)
	GetPost(id int) (*model.Post, error)
	GetMedia(id int) (*model.Media, error)
	GetComment(id int) (*model.Comment, error)
	GetFollower(id int) (*model.Follower, error)

	DeleteUser(id int) error
	DeletePost(id int) error
	DeleteMedia(id int) error
	DeleteComment(id int) error
	DeleteFollower(id int) error
	DeleteFollowership(followerID, userID int) error

	CreateFollower() (*model.Follower, error)
}

// 确保 AdminService 实现了 AdminServiceInterface
var _ AdminServiceInterface = (*AdminService)(nil)
