package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashAccessCode 哈希访问码(使用 bcrypt)
// 旧系统账户带明文访问码,导入时统一哈希存储
func HashAccessCode(code string) (string, error) {
	// 使用 bcrypt 默认 cost (10)
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash access code: %w", err)
	}
	return string(hashedBytes), nil
}

// VerifyAccessCode 验证访问码
func VerifyAccessCode(code string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(code))
	return err == nil
}
