package model

// User 结构体表示用户模型
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"` // 密码不应在JSON中暴露
	IsActive bool   `json:"is_active"`
}
