package mysql

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestJoinedUserDeletedAuthor 测试作者被删除后关联列全为 NULL，装配结果为 nil
// 帖子和评论的读取不能因为作者缺失而报错
func TestJoinedUserDeletedAuthor(t *testing.T) {
	var author joinedUser
	assert.Nil(t, author.toModel())
}

// TestJoinedUserPresentAuthor 测试关联列有值时正常装配作者
func TestJoinedUserPresentAuthor(t *testing.T) {
	author := joinedUser{
		id:       sql.NullInt64{Int64: 2, Valid: true},
		email:    sql.NullString{String: "a@x.com", Valid: true},
		password: sql.NullString{String: "secret", Valid: true},
		isActive: sql.NullBool{Bool: true, Valid: true},
	}

	user := author.toModel()
	assert.Equal(t, 2, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.True(t, user.IsActive)
}
