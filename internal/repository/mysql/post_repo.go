package mysql

import (
	"database/sql"

	"instagram-backend/internal/model"
	"instagram-backend/internal/util"

	"go.uber.org/zap"
)

// postRepository 实现了 PostRepository 接口
type postRepository struct {
	db *sql.DB
}

// joinedUser 承接 LEFT JOIN users 的可空列
// 作者被删除后关联列全部为 NULL，此时装配结果为 nil
type joinedUser struct {
	id       sql.NullInt64
	email    sql.NullString
	password sql.NullString
	isActive sql.NullBool
}

func (j *joinedUser) toModel() *model.User {
	if !j.id.Valid {
		return nil
	}
	return &model.User{
		ID:       int(j.id.Int64),
		Email:    j.email.String,
		Password: j.password.String,
		IsActive: j.isActive.Bool,
	}
}

// NewPostRepository 创建一个新的 postRepository 实例
func NewPostRepository(db *sql.DB) *postRepository {
	return &postRepository{db}
}

func (r *postRepository) CreatePost(post *model.Post) error {
	query := `INSERT INTO posts (user_id) VALUES (?)`
	result, err := r.db.Exec(query, post.UserID)
	if err != nil {
		util.Logger.Error("创建帖子失败", zap.Error(err), zap.Int("user_id", post.UserID))
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新帖子ID失败", zap.Error(err))
		return err
	}
	post.ID = int(id)

	util.Logger.Info("帖子创建成功", zap.Int("post_id", post.ID))
	return nil
}

// GetPostByID 获取帖子及其作者、媒体和评论，未找到返回 nil
func (r *postRepository) GetPostByID(id int) (*model.Post, error) {
	query := `
        SELECT p.id, p.user_id, u.id, u.email, u.password, u.is_active
        FROM posts p
        LEFT JOIN users u ON p.user_id = u.id
        WHERE p.id = ?`

	var post model.Post
	var author joinedUser
	err := r.db.QueryRow(query, id).Scan(
		&post.ID, &post.UserID,
		&author.id, &author.email, &author.password, &author.isActive,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	post.Author = author.toModel()

	if post.Media, err = r.getMediaByPostID(post.ID); err != nil {
		return nil, err
	}
	if post.Comments, err = r.GetCommentsByPostID(post.ID); err != nil {
		return nil, err
	}

	return &post, nil
}

// ListPosts 返回全部帖子，每条都装配作者、媒体和评论
func (r *postRepository) ListPosts() ([]*model.Post, error) {
	query := `
        SELECT p.id, p.user_id, u.id, u.email, u.password, u.is_active
        FROM posts p
        LEFT JOIN users u ON p.user_id = u.id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		var author joinedUser
		err := rows.Scan(
			&post.ID, &post.UserID,
			&author.id, &author.email, &author.password, &author.isActive,
		)
		if err != nil {
			return nil, err
		}
		post.Author = author.toModel()
		posts = append(posts, &post)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, post := range posts {
		if post.Media, err = r.getMediaByPostID(post.ID); err != nil {
			return nil, err
		}
		if post.Comments, err = r.GetCommentsByPostID(post.ID); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

// DeletePost 删除帖子并级联删除其媒体和评论
func (r *postRepository) DeletePost(id int) error {
	util.Logger.Info("开始删除帖子", zap.Int("post_id", id))

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 先删除子行，再删除帖子本身
	if _, err := tx.Exec(`DELETE FROM media WHERE post_id = ?`, id); err != nil {
		util.Logger.Error("级联删除媒体失败", zap.Error(err), zap.Int("post_id", id))
		return err
	}
	if _, err := tx.Exec(`DELETE FROM comments WHERE post_id = ?`, id); err != nil {
		util.Logger.Error("级联删除评论失败", zap.Error(err), zap.Int("post_id", id))
		return err
	}
	if _, err := tx.Exec(`DELETE FROM posts WHERE id = ?`, id); err != nil {
		util.Logger.Error("删除帖子失败", zap.Error(err), zap.Int("post_id", id))
		return err
	}

	if err := tx.Commit(); err != nil {
		util.Logger.Error("提交事务失败", zap.Error(err))
		return err
	}

	util.Logger.Info("帖子删除成功", zap.Int("post_id", id))
	return nil
}

func (r *postRepository) CountPosts() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}

func (r *postRepository) CreateMedia(media *model.Media) error {
	query := `INSERT INTO media (post_id, url) VALUES (?, ?)`
	result, err := r.db.Exec(query, media.PostID, media.URL)
	if err != nil {
		util.Logger.Error("创建媒体失败", zap.Error(err), zap.Int("post_id", media.PostID))
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新媒体ID失败", zap.Error(err))
		return err
	}
	media.ID = int(id)

	util.Logger.Info("媒体创建成功", zap.Int("media_id", media.ID))
	return nil
}

func (r *postRepository) GetMediaByID(id int) (*model.Media, error) {
	query := `SELECT id, post_id, url FROM media WHERE id = ?`
	var media model.Media
	err := r.db.QueryRow(query, id).Scan(&media.ID, &media.PostID, &media.URL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

func (r *postRepository) ListMedia() ([]*model.Media, error) {
	rows, err := r.db.Query(`SELECT id, post_id, url FROM media`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Media
	for rows.Next() {
		var media model.Media
		if err := rows.Scan(&media.ID, &media.PostID, &media.URL); err != nil {
			return nil, err
		}
		list = append(list, &media)
	}
	return list, rows.Err()
}

func (r *postRepository) DeleteMedia(id int) error {
	_, err := r.db.Exec(`DELETE FROM media WHERE id = ?`, id)
	if err != nil {
		util.Logger.Error("删除媒体失败", zap.Error(err), zap.Int("media_id", id))
	}
	return err
}

func (r *postRepository) CountMedia() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM media").Scan(&count)
	return count, err
}

func (r *postRepository) getMediaByPostID(postID int) ([]*model.Media, error) {
	rows, err := r.db.Query(`SELECT id, post_id, url FROM media WHERE post_id = ?`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Media
	for rows.Next() {
		var media model.Media
		if err := rows.Scan(&media.ID, &media.PostID, &media.URL); err != nil {
			return nil, err
		}
		list = append(list, &media)
	}
	return list, rows.Err()
}

func (r *postRepository) CreateComment(comment *model.Comment) error {
	query := `INSERT INTO comments (comment_text, post_id, user_id) VALUES (?, ?, ?)`
	result, err := r.db.Exec(query, comment.CommentText, comment.PostID, comment.UserID)
	if err != nil {
		util.Logger.Error("创建评论失败", zap.Error(err),
			zap.Int("post_id", comment.PostID),
			zap.Int("user_id", comment.UserID))
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新评论ID失败", zap.Error(err))
		return err
	}
	comment.ID = int(id)

	util.Logger.Info("评论创建成功", zap.Int("comment_id", comment.ID))
	return nil
}

func (r *postRepository) GetCommentByID(id int) (*model.Comment, error) {
	query := `SELECT id, comment_text, post_id, user_id FROM comments WHERE id = ?`
	var comment model.Comment
	err := r.db.QueryRow(query, id).Scan(
		&comment.ID, &comment.CommentText, &comment.PostID, &comment.UserID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostID 获取帖子的评论列表，附带作者信息
func (r *postRepository) GetCommentsByPostID(postID int) ([]*model.Comment, error) {
	query := `
        SELECT c.id, c.comment_text, c.post_id, c.user_id,
               u.id, u.email, u.password, u.is_active
        FROM comments c
        LEFT JOIN users u ON c.user_id = u.id
        WHERE c.post_id = ?`

	rows, err := r.db.Query(query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var comment model.Comment
		var author joinedUser
		err := rows.Scan(
			&comment.ID, &comment.CommentText, &comment.PostID, &comment.UserID,
			&author.id, &author.email, &author.password, &author.isActive,
		)
		if err != nil {
			return nil, err
		}
		comment.Author = author.toModel()
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

func (r *postRepository) ListComments() ([]*model.Comment, error) {
	rows, err := r.db.Query(`SELECT id, comment_text, post_id, user_id FROM comments`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var comment model.Comment
		if err := rows.Scan(&comment.ID, &comment.CommentText, &comment.PostID, &comment.UserID); err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

func (r *postRepository) DeleteComment(id int) error {
	util.Logger.Info("开始删除评论", zap.Int("comment_id", id))

	_, err := r.db.Exec(`DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		util.Logger.Error("删除评论失败", zap.Error(err), zap.Int("comment_id", id))
		return err
	}

	util.Logger.Info("评论删除成功", zap.Int("comment_id", id))
	return nil
}

func (r *postRepository) CountComments() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
