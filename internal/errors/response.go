package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 错误码与HTTP状态码映射
// 注意：重复类错误按原有契约返回 400 而不是 409
var errorStatusMap = map[ErrorCode]int{
	// 系统错误 (1000-1999)
	ErrInternal: http.StatusInternalServerError,
	ErrDatabase: http.StatusInternalServerError,

	// 请求错误 (3000-3999)
	ErrBadRequest:       http.StatusBadRequest,
	ErrValidation:       http.StatusBadRequest,
	ErrResourceNotFound: http.StatusNotFound,
	ErrDuplicate:        http.StatusBadRequest,

	// 业务错误 (4000-4999)
	ErrUserNotFound:     http.StatusNotFound,
	ErrEmailExists:      http.StatusBadRequest,
	ErrPostNotFound:     http.StatusNotFound,
	ErrCommentNotFound:  http.StatusNotFound,
	ErrFollowerNotFound: http.StatusNotFound,
	ErrAlreadyFollowing: http.StatusBadRequest,
}

// HandleError 统一处理错误响应，响应体固定为 {"error": "<message>"}
func HandleError(c *gin.Context, err error) {
	// 记录到 gin 的错误列表，供错误监控中间件统计
	_ = c.Error(err)

	if appErr, ok := err.(*AppError); ok {
		status := errorStatusMap[appErr.Code]
		if status == 0 {
			status = http.StatusInternalServerError
		}

		if appErr.Err != nil {
			zap.L().Error("请求处理错误",
				zap.Int("error_code", int(appErr.Code)),
				zap.String("error_message", appErr.Message),
				zap.Error(appErr.Err))
		}

		c.JSON(status, gin.H{"error": appErr.Message})
		return
	}

	// 处理非 AppError 类型的错误：未处理的存储错误按通用服务器错误上报
	zap.L().Error("未处理的错误", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
