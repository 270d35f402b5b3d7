package model

// Post 结构体表示帖子模型，只有外键指向作者
type Post struct {
	ID     int `json:"id"`
	UserID int `json:"user_id"`

	// 关联数据，由仓库层装配
	Author   *User      `json:"author,omitempty"`
	Media    []*Media   `json:"media,omitempty"`
	Comments []*Comment `json:"comments,omitempty"`
}

// Media 结构体表示帖子附带的媒体
type Media struct {
	ID     int    `json:"id"`
	PostID int    `json:"post_id"`
	URL    string `json:"url"`
}

// Comment 结构体表示评论，最长300字符
type Comment struct {
	ID          int    `json:"id"`
	CommentText string `json:"comment_text"`
	PostID      int    `json:"post_id"`
	UserID      int    `json:"user_id"`

	Author *User `json:"author,omitempty"`
}
