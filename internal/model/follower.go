package model

// Follower 结构体表示粉丝实体，只有一个代理主键
// 注意：粉丝是独立的行，不是对用户的引用（按原有建模保留）
type Follower struct {
	ID int `json:"id"`
}

// Followership 结构体表示关注关系，(follower_id, user_id) 为联合主键
type Followership struct {
	FollowerID int `json:"follower_id"`
	UserID     int `json:"user_id"`
}
