package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// DefaultTokenTTL 是未指定有效時間時使用的預設值
const DefaultTokenTTL = 15 * time.Minute

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims 只攜帶 subject（管理員 email）與標準時間欄位
type Claims struct {
	jwt.StandardClaims
}

// TokenManager 以固定密鑰簽發與驗證 HS256 token
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager 創建 TokenManager；ttl <= 0 時使用 DefaultTokenTTL
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL 回傳 GenerateToken 未指定有效時間時使用的長度
func (m *TokenManager) TTL() time.Duration {
	if m.ttl <= 0 {
		return DefaultTokenTTL
	}
	return m.ttl
}

// GenerateToken 生成一個新的 JWT token，過期時間為 now + ttl
func (m *TokenManager) GenerateToken(subject string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", ErrInvalidToken
	}
	if ttl <= 0 {
		ttl = m.TTL()
	}

	nowTime := m.now()
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			IssuedAt:  nowTime.Unix(),
			ExpiresAt: nowTime.Add(ttl).Unix(),
		},
	}

	tokenClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenClaims.SignedString(m.secret)
}

// ParseToken 解析和驗證 JWT token，成功時回傳 subject
func (m *TokenManager) ParseToken(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}

	tokenClaims, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || tokenClaims == nil || !tokenClaims.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := tokenClaims.Claims.(*Claims)
	if !ok || claims.Subject == "" || claims.ExpiresAt == 0 {
		return "", ErrInvalidToken
	}
	if m.now().Unix() >= claims.ExpiresAt {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// TokenFromHeader 從 "Bearer <token>" 格式的 Authorization 頭取出 token
func TokenFromHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMissingToken
	}
	return parts[1], nil
}
