// File: internal/service/token.go
package service

import (
	"fmt"
	"os"
	"time"

	"hopebridge/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTTL 是管理員登入憑證的有效期間。
const SessionTTL = 24 * time.Hour

// SessionClaims 定義 session token 負載內容
type SessionClaims struct {
	AdminID uuid.UUID `json:"aid"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	jwt.RegisteredClaims
}

// 測試可覆寫此變數。
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// IssueSessionToken 依據管理員資訊與 TTL 產生簽名憑證
func IssueSessionToken(admin model.AdminUser, ttl time.Duration) (string, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return "", fmt.Errorf("SESSION_SECRET not set")
	}

	now := timeNow()
	claims := SessionClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		Role:    admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySessionToken 驗證並解析憑證；簽名錯誤、竄改或過期都回傳錯誤
func VerifySessionToken(tokenString string) (*SessionClaims, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
