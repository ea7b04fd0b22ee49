package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"guest_management/internal/models"
	"guest_management/internal/repository"
	"guest_management/internal/utils"
)

// TokenTypeBearer 是登入回應中的 token_type
const TokenTypeBearer = "bearer"

// Admin 是管理員的對外表示，不包含密碼
type Admin struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ConvertAdmin(a *models.Admin) *Admin {
	return &Admin{
		ID:        a.ID,
		Email:     a.Email,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService 負責管理員帳號、登入與 token 驗證
type AuthService struct {
	adminRepo repository.AdminRepository
	tokens    *utils.TokenManager
}

func NewAuthService(adminRepo repository.AdminRepository, tokens *utils.TokenManager) *AuthService {
	return &AuthService{adminRepo: adminRepo, tokens: tokens}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAdmin 建立管理員；email 已被使用時回傳 ErrConflict
func (s *AuthService) CreateAdmin(ctx context.Context, email, password string) (*Admin, error) {
	email = normalizeEmail(email)

	_, err := s.adminRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("Email already registered: %w", ErrConflict)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &models.Admin{
		Email:          email,
		HashedPassword: hashed,
		IsActive:       true,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("Email already registered: %w", ErrConflict)
		}
		return nil, err
	}
	return ConvertAdmin(admin), nil
}

// EnsureAdmin 在管理員不存在時建立，用於啟動時的初始帳號
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	_, err := s.CreateAdmin(ctx, email, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrConflict):
		return false, nil
	default:
		return false, err
	}
}

// Login 驗證帳號密碼並簽發 access token。
// 帳號不存在與密碼錯誤回傳同一個錯誤，不透露是哪一項有誤。
func (s *AuthService) Login(ctx context.Context, email, password string) (*Token, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !admin.IsActive || !utils.CheckPassword(admin.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateToken(admin.Email, s.tokens.TTL())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &Token{AccessToken: accessToken, TokenType: TokenTypeBearer}, nil
}

// ResolveToken 驗證 token 並取回對應的管理員
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*models.Admin, error) {
	subject, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	admin, err := s.adminRepo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !admin.IsActive {
		return nil, ErrUnauthorized
	}
	return admin, nil
}
