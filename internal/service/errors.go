package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("Incorrect email or password")
	ErrUnauthorized       = errors.New("Could not validate credentials")
)

// notFound 產生 "<resource> not found" 形式的錯誤，可用 errors.Is(err, ErrNotFound) 判斷
func notFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// translate 將 repository 回傳的 gorm 錯誤轉成服務層的錯誤種類
func translate(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(resource)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s already exists: %w", resource, ErrConflict)
	default:
		return err
	}
}
