package service

import (
	"instagram-backend/internal/errors"
	"instagram-backend/internal/model"
	"instagram-backend/internal/repository/interfaces"
	"instagram-backend/internal/util"

	"go.uber.org/zap"
)

// PostService 处理帖子、媒体和评论相关的业务逻辑
type PostService struct {
	postRepo interfaces.PostRepository
	userRepo interfaces.UserRepository
}

// NewPostService 创建一个新的 PostService 实例
func NewPostService(postRepo interfaces.PostRepository, userRepo interfaces.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost 创建帖子，user_id 必须指向已存在的用户
func (s *PostService) CreatePost(userID int) (*model.Post, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "User not found")
	}

	post := &model.Post{UserID: userID}
	if err := s.postRepo.CreatePost(post); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}

	// 新帖子没有媒体和评论，作者直接取自存在性检查的结果
	post.Author = user
	return post, nil
}

// GetPostByID 通过ID获取帖子
func (s *PostService) GetPostByID(id int) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if post == nil {
		return nil, errors.New(errors.ErrPostNotFound, "Post not found")
	}
	return post, nil
}

// ListPosts 获取全部帖子
func (s *PostService) ListPosts() ([]*model.Post, error) {
	posts, err := s.postRepo.ListPosts()
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	return posts, nil
}

// DeletePost 删除帖子，其媒体和评论一并级联删除
func (s *PostService) DeletePost(id int) error {
	post, err := s.postRepo.GetPostByID(id)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if post == nil {
		return errors.New(errors.ErrPostNotFound, "Post not found")
	}

	if err := s.postRepo.DeletePost(id); err != nil {
		return errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	return nil
}

// AddMedia 给帖子附加媒体，post_id 必须指向已存在的帖子
func (s *PostService) AddMedia(postID int, url string) (*model.Media, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if post == nil {
		return nil, errors.New(errors.ErrPostNotFound, "Post not found")
	}

	media := &model.Media{PostID: postID, URL: url}
	if err := s.postRepo.CreateMedia(media); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	return media, nil
}

// GetPostComments 获取帖子的评论，帖子不存在时报404
func (s *PostService) GetPostComments(postID int) ([]*model.Comment, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if post == nil {
		return nil, errors.New(errors.ErrPostNotFound, "Post not found")
	}
	return post.Comments, nil
}

// CreateComment 创建评论，帖子和用户都必须存在
func (s *PostService) CreateComment(postID, userID int, commentText string) (*model.Comment, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if post == nil {
		return nil, errors.New(errors.ErrPostNotFound, "Post not found")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "User not found")
	}

	comment := &model.Comment{
		CommentText: commentText,
		PostID:      postID,
		UserID:      userID,
	}
	if err := s.postRepo.CreateComment(comment); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}

	comment.Author = user
	return comment, nil
}

// DeleteComment 删除评论
func (s *PostService) DeleteComment(id int) error {
	comment, err := s.postRepo.GetCommentByID(id)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	if comment == nil {
		util.Logger.Warn("删除评论失败，评论不存在", zap.Int("comment_id", id))
		return errors.New(errors.ErrCommentNotFound, "Comment not found")
	}

	if err := s.postRepo.DeleteComment(id); err != nil {
		return errors.Wrap(errors.ErrDatabase, "Internal server error", err)
	}
	return nil
}

// PostServiceInterface 供处理器依赖和测试模拟
type PostServiceInterface interface {
	CreatePost(userID int) (*model.Post, error)
	GetPostByID(id int) (*model.Post, error)
	ListPosts() ([]*model.Post, error)
	DeletePost(id int) error
	AddMedia(postID int, url string) (*model.Media, error)
	GetPostComments(postID int) ([]*model.Comment, error)
	CreateComment(postID, userID int, commentText string) (*model.Comment, error)
	DeleteComment(id int) error
}

// 确保 PostService 实现了 PostServiceInterface
var _ PostServiceInterface = (*PostService)(nil)
