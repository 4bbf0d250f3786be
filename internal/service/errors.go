package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// ErrInvalidStatus 状态枚举值不合法
var ErrInvalidStatus = errors.New("invalid status")

// ErrDuplicateCPF CPF 已被其他记录占用
var ErrDuplicateCPF = errors.New("cpf already registered")

// isDuplicateKeyError 识别驱动返回的唯一约束冲突
// sqlite 和 postgres 的报错文本不同,gorm 仅对部分驱动翻译成 ErrDuplicatedKey
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// getUserIDFromContext 从 context 中获取用户 ID(由认证中间件设置)
func getUserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if userID, ok := ctx.Value("user_id").(string); ok {
		return userID
	}
	return ""
}

// getUserNameFromContext 从 context 中获取用户名称(由认证中间件设置)
func getUserNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if name, ok := ctx.Value("user_name").(string); ok {
		return name
	}
	return ""
}
