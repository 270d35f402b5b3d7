package interfaces

import "instagram-backend/internal/model"

// PostRepository 定义了帖子、媒体和评论相关的数据库操作接口
type PostRepository interface {
	CreatePost(post *model.Post) error
	GetPostByID(id int) (*model.Post, error)
	ListPosts() ([]*model.Post, error)
	// DeletePost 删除帖子并级联删除其媒体和评论
	DeletePost(id int) error
	CountPosts() (int, error)

	CreateMedia(media *model.Media) error
	GetMediaByID(id int) (*model.Media, error)
	ListMedia() ([]*model.Media, error)
	DeleteMedia(id int) error
	CountMedia() (int, error)

	CreateComment(comment *model.Comment) error
	GetCommentByID(id int) (*model.Comment, error)
	GetCommentsByPostID(postID int) ([]*model.Comment, error)
	ListComments() ([]*model.Comment, error)
	DeleteComment(id int) error
	CountComments() (int, error)
}
