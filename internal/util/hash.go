package util

import "golang.org/x/crypto/bcrypt"

// PasswordHasher 定义密码存储策略：{哈希, 校验}
// 由配置决定使用哈希存储还是按原样存储
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// BcryptHasher 使用 bcrypt 哈希存储密码
type BcryptHasher struct{}

func (BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (BcryptHasher) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// PlainHasher 按调用方提供的原样存储密码（兼容旧行为）
type PlainHasher struct{}

func (PlainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (PlainHasher) Verify(stored, password string) bool {
	return stored == password
}

// NewPasswordHasher 根据配置选择密码存储策略
func NewPasswordHasher(hashing bool) PasswordHasher {
	if hashing {
		return BcryptHasher{}
	}
	return PlainHasher{}
}
