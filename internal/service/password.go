// File: internal/service/password.go
package service

import (
	"errors"

	"hopebridge/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// 測試可覆寫此變數。
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// AuthenticateAdmin 驗證管理員密碼與啟用狀態
func AuthenticateAdmin(admin model.AdminUser, password string) error {
	if !admin.IsActive {
		return errors.New("account deactivated")
	}
	if err := ComparePassword(admin.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}
