package interfaces

import "instagram-backend/internal/model"

// FollowerRepository 定义了粉丝和关注关系相关的数据库操作接口
type FollowerRepository interface {
	CreateFollower(follower *model.Follower) error
	GetFollowerByID(id int) (*model.Follower, error)
	ListFollowers() ([]*model.Follower, error)
	DeleteFollower(id int) error
	CountFollowers() (int, error)

	CreateFollowership(f *model.Followership) error
	GetFollowershipsByUserID(userID int) ([]*model.Followership, error)
	ListFollowerships() ([]*model.Followership, error)
	FollowershipExists(followerID, userID int) (bool, error)
	DeleteFollowership(followerID, userID int) error
	CountFollowerships() (int, error)
}
