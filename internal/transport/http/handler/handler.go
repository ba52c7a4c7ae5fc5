package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// parseID 路径参数必须是纯十进制整数，"12abc" 一律拒绝
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// bindingDetails 把 validator 的错误翻成面向前端的句子，非校验错误原样透出
func bindingDetails(err error) any {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		out = append(out, fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Email" && fe.Tag() == "email":
		return "Invalid email address"
	case fe.Field() == "Email" && fe.Tag() == "required":
		return "Email is required"
	case fe.Field() == "Password" && fe.Tag() == "min":
		return "Password must be at least 8 characters"
	case fe.Field() == "Password" && fe.Tag() == "required":
		return "Password is required"
	case fe.Field() == "Name" && fe.Tag() == "min":
		return "Name must be at least 2 characters"
	case fe.Field() == "Name" && fe.Tag() == "required":
		return "Name is required"
	default:
		return fe.Field() + " is invalid"
	}
}
