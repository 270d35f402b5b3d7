package model

// 每个实体对应一个自由函数，投影为用于JSON编码的普通记录。
// 实体集是封闭的，不需要多态分发。

// UserJSON 用户的对外投影，永远不包含密码
type UserJSON struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// PostJSON 帖子的对外投影，附带作者、媒体和评论
type PostJSON struct {
	ID       int            `json:"id"`
	UserID   int            `json:"user_id"`
	Author   *UserJSON      `json:"author"`
	Media    []*MediaJSON   `json:"media"`
	Comments []*CommentJSON `json:"comments"`
}

// MediaJSON 媒体的对外投影
type MediaJSON struct {
	ID     int    `json:"id"`
	PostID int    `json:"post_id"`
	URL    string `json:"url"`
}

// CommentJSON 评论的对外投影，附带作者
type CommentJSON struct {
	ID          int       `json:"id"`
	CommentText string    `json:"comment_text"`
	PostID      int       `json:"post_id"`
	UserID      int       `json:"user_id"`
	Author      *UserJSON `json:"author"`
}

// FollowerJSON 粉丝的对外投影
type FollowerJSON struct {
	ID int `json:"id"`
}

// FollowershipJSON 关注关系的对外投影
type FollowershipJSON struct {
	FollowerID int `json:"follower_id"`
	UserID     int `json:"user_id"`
}

// SerializeUser 投影用户，无条件排除密码字段
func SerializeUser(u *User) *UserJSON {
	if u == nil {
		return nil
	}
	return &UserJSON{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}

// SerializeUsers 投影用户列表，空列表返回空数组而不是 null
func SerializeUsers(users []*User) []*UserJSON {
	out := make([]*UserJSON, 0, len(users))
	for _, u := range users {
		out = append(out, SerializeUser(u))
	}
	return out
}

// SerializePost 投影帖子，media 和 comments 总是数组
func SerializePost(p *Post) *PostJSON {
	if p == nil {
		return nil
	}
	return &PostJSON{
		ID:       p.ID,
		UserID:   p.UserID,
		Author:   SerializeUser(p.Author),
		Media:    SerializeMediaList(p.Media),
		Comments: SerializeComments(p.Comments),
	}
}

// SerializePosts 投影帖子列表
func SerializePosts(posts []*Post) []*PostJSON {
	out := make([]*PostJSON, 0, len(posts))
	for _, p := range posts {
		out = append(out, SerializePost(p))
	}
	return out
}

// SerializeMedia 投影一条媒体
func SerializeMedia(m *Media) *MediaJSON {
	if m == nil {
		return nil
	}
	return &MediaJSON{
		ID:     m.ID,
		PostID: m.PostID,
		URL:    m.URL,
	}
}

// SerializeMediaList 投影媒体列表
func SerializeMediaList(media []*Media) []*MediaJSON {
	out := make([]*MediaJSON, 0, len(media))
	for _, m := range media {
		out = append(out, SerializeMedia(m))
	}
	return out
}

// SerializeComment 投影一条评论
func SerializeComment(c *Comment) *CommentJSON {
	if c == nil {
		return nil
	}
	return &CommentJSON{
		ID:          c.ID,
		CommentText: c.CommentText,
		PostID:      c.PostID,
		UserID:      c.UserID,
		Author:      SerializeUser(c.Author),
	}
}

// SerializeComments 投影评论列表
func SerializeComments(comments []*Comment) []*CommentJSON {
	out := make([]*CommentJSON, 0, len(comments))
	for _, c := range comments {
		out = append(out, SerializeComment(c))
	}
	return out
}

// SerializeFollower 投影粉丝
func SerializeFollower(f *Follower) *FollowerJSON {
	if f == nil {
		return nil
	}
	return &FollowerJSON{ID: f.ID}
}

// SerializeFollowers 投影粉丝列表
func SerializeFollowers(followers []*Follower) []*FollowerJSON {
	out := make([]*FollowerJSON, 0, len(followers))
	for _, f := range followers {
		out = append(out, SerializeFollower(f))
	}
	return out
}

// SerializeFollowership 投影关注关系
func SerializeFollowership(f *Followership) *FollowershipJSON {
	if f == nil {
		return nil
	}
	return &FollowershipJSON{
		FollowerID: f.FollowerID,
		UserID:     f.UserID,
	}
}

// SerializeFollowerships 投影关注关系列表
func SerializeFollowerships(fs []*Followership) []*FollowershipJSON {
	out := make([]*FollowershipJSON, 0, len(fs))
	for _, f := range fs {
		out = append(out, SerializeFollowership(f))
	}
	return out
}
