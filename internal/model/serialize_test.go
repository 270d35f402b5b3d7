package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSerializeUserExcludesPassword 测试用户投影永远不泄露密码
func TestSerializeUserExcludesPassword(t *testing.T) {
	u := &User{ID: 1, Email: "a@x.com", Password: "secret", IsActive: true}

	data, err := json.Marshal(SerializeUser(u))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"email":"a@x.com","is_active":true}`, string(data))
	assert.NotContains(t, string(data), "secret")
}

// TestSerializePostEmptyCollections 测试没有媒体和评论的帖子编码为空数组
func TestSerializePostEmptyCollections(t *testing.T) {
	p := &Post{ID: 1, UserID: 2, Author: &User{ID: 2, Email: "a@x.com", IsActive: true}}

	data, err := json.Marshal(SerializePost(p))
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"user_id": 2,
		"author": {"id": 2, "email": "a@x.com", "is_active": true},
		"media": [],
		"comments": []
	}`, string(data))
}

// TestSerializePostDeletedAuthor 测试作者被删除的帖子编码为 author: null
func TestSerializePostDeletedAuthor(t *testing.T) {
	p := &Post{ID: 1, UserID: 2}

	data, err := json.Marshal(SerializePost(p))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"user_id":2,"author":null,"media":[],"comments":[]}`, string(data))
}

// TestSerializeListsNeverNull 测试空列表编码为 [] 而不是 null
func TestSerializeListsNeverNull(t *testing.T) {
	for name, got := range map[string]interface{}{
		"users":         SerializeUsers(nil),
		"posts":         SerializePosts(nil),
		"media":         SerializeMediaList(nil),
		"comments":      SerializeComments(nil),
		"followers":     SerializeFollowers(nil),
		"followerships": SerializeFollowerships(nil),
	} {
		data, err := json.Marshal(got)
		assert.NoError(t, err)
		assert.Equal(t, "[]", string(data), name)
	}
}

// TestSerializePostWithNestedContent 测试媒体和评论的嵌套投影
func TestSerializePostWithNestedContent(t *testing.T) {
	commenter := &User{ID: 3, Email: "b@x.com", IsActive: true}
	p := &Post{
		ID:     1,
		UserID: 2,
		Author: &User{ID: 2, Email: "a@x.com", IsActive: true},
		Media: []*Media{
			{ID: 10, PostID: 1, URL: "http://img.example.com/a.jpg"},
		},
		Comments: []*Comment{
			{ID: 20, CommentText: "nice", PostID: 1, UserID: 3, Author: commenter},
		},
	}

	out := SerializePost(p)
	assert.Len(t, out.Media, 1)
	assert.Equal(t, "http://img.example.com/a.jpg", out.Media[0].URL)
	assert.Len(t, out.Comments, 1)
	assert.Equal(t, "nice", out.Comments[0].CommentText)
	assert.Equal(t, 3, out.Comments[0].Author.ID)
}
