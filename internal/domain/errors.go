package domain

import "errors"

// 仓储层哨兵错误，handler 据此映射 HTTP 状态码
var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)
