package mysql

import (
	"database/sql"
	"strings"

	"instagram-backend/internal/errors"
	"instagram-backend/internal/model"
	"instagram-backend/internal/util"

	"go.uber.org/zap"
)

// followerRepository 实现了 FollowerRepository 接口
type followerRepository struct {
	db *sql.DB
}

// NewFollowerRepository 创建一个新的 followerRepository 实例
func NewFollowerRepository(db *sql.DB) *followerRepository {
	return &followerRepository{db}
}

func (r *followerRepository) CreateFollower(follower *model.Follower) error {
	// 粉丝实体只有代理主键
	result, err := r.db.Exec(`INSERT INTO followers () VALUES ()`)
	if err != nil {
		util.Logger.Error("创建粉丝失败", zap.Error(err))
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新粉丝ID失败", zap.Error(err))
		return err
	}
	follower.ID = int(id)

	util.Logger.Info("粉丝创建成功", zap.Int("follower_id", follower.ID))
	return nil
}

func (r *followerRepository) GetFollowerByID(id int) (*model.Follower, error) {
	var follower model.Follower
	err := r.db.QueryRow(`SELECT id FROM followers WHERE id = ?`, id).Scan(&follower.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &follower, nil
}

func (r *followerRepository) ListFollowers() ([]*model.Follower, error) {
	rows, err := r.db.Query(`SELECT id FROM followers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var followers []*model.Follower
	for rows.Next() {
		var follower model.Follower
		if err := rows.Scan(&follower.ID); err != nil {
			return nil, err
		}
		followers = append(followers, &follower)
	}
	return followers, rows.Err()
}

func (r *followerRepository) DeleteFollower(id int) error {
	_, err := r.db.Exec(`DELETE FROM followers WHERE id = ?`, id)
	if err != nil {
		util.Logger.Error("删除粉丝失败", zap.Error(err), zap.Int("follower_id", id))
	}
	return err
}

func (r *followerRepository) CountFollowers() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM followers").Scan(&count)
	return count, err
}

// CreateFollowership 创建关注关系
// 联合主键兜底并发的重复检查：两个请求同时通过检查时，第二个插入
// 会触发 Duplicate entry，这里统一映射为"已关注"错误
func (r *followerRepository) CreateFollowership(f *model.Followership) error {
	util.Logger.Info("开始创建关注关系",
		zap.Int("follower_id", f.FollowerID),
		zap.Int("user_id", f.UserID))

	query := `INSERT INTO followerships (follower_id, user_id) VALUES (?, ?)`
	_, err := r.db.Exec(query, f.FollowerID, f.UserID)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return errors.New(errors.ErrAlreadyFollowing, "Already following")
		}
		util.Logger.Error("创建关注关系失败", zap.Error(err))
		return err
	}

	util.Logger.Info("关注关系创建成功",
		zap.Int("follower_id", f.FollowerID),
		zap.Int("user_id", f.UserID))
	return nil
}

// GetFollowershipsByUserID 获取关注某用户的全部关系行
func (r *followerRepository) GetFollowershipsByUserID(userID int) ([]*model.Followership, error) {
	rows, err := r.db.Query(`SELECT follower_id, user_id FROM followerships WHERE user_id = ?`, userID)
	if err != nil {
		util.Logger.Error("查询关注关系失败", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	defer rows.Close()

	var list []*model.Followership
	for rows.Next() {
		var f model.Followership
		if err := rows.Scan(&f.FollowerID, &f.UserID); err != nil {
			return nil, err
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

func (r *followerRepository) ListFollowerships() ([]*model.Followership, error) {
	rows, err := r.db.Query(`SELECT follower_id, user_id FROM followerships`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Followership
	for rows.Next() {
		var f model.Followership
		if err := rows.Scan(&f.FollowerID, &f.UserID); err != nil {
			return nil, err
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

func (r *followerRepository) FollowershipExists(followerID, userID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
        SELECT EXISTS(
            SELECT 1 FROM followerships
            WHERE follower_id = ? AND user_id = ?
        )`, followerID, userID).Scan(&exists)
	return exists, err
}

func (r *followerRepository) DeleteFollowership(followerID, userID int) error {
	_, err := r.db.Exec(`DELETE FROM followerships WHERE follower_id = ? AND user_id = ?`,
		followerID, userID)
	if err != nil {
		util.Logger.Error("删除关注关系失败", zap.Error(err))
	}
	return err
}

func (r *followerRepository) CountFollowerships() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM followerships").Scan(&count)
	return count, err
}
