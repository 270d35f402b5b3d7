package util

import (
	"net/url"

	"github.com/go-playground/validator/v10"
)

// ValidateMediaURL 校验媒体URL是否为合法的 http/https 地址
// 在 main 中注册为 "media_url"，供管理面板的绑定标签使用
func ValidateMediaURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
