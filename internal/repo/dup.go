package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDupKey 识别唯一键冲突。优先走 gorm 的翻译错误，
// 再按驱动报错文本兜底（postgres/mysql/sqlite 文案各不相同）。
func isDupKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
