package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"guest_management/internal/storage"
)

// Page 是 skip/limit 分頁參數
type Page struct {
	Skip  int
	Limit int
}

// Scope 將分頁套用到查詢上
func (p Page) Scope(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Skip).Limit(p.Limit)
}

// baseRepository 提供單表模型共用的 CRUD 操作
type baseRepository[T any] struct {
	db      *storage.DB
	orderBy string
}

func (r *baseRepository[T]) create(ctx context.Context, model *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error
}

func (r *baseRepository[T]) findByID(ctx context.Context, id uint, scopes ...func(*gorm.DB) *gorm.DB) (*T, error) {
	var model T
	if err := r.db.WithContext(ctx).Scopes(scopes...).First(&model, id).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

func (r *baseRepository[T]) list(ctx context.Context, page Page, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	var models []T
	err := r.db.WithContext(ctx).
		Scopes(scopes...).
		Scopes(page.Scope).
		Order(r.orderBy).
		Find(&models).Error
	return models, err
}

// updateColumns 只更新 fields 中出現的欄位；找不到目標時回傳 gorm.ErrRecordNotFound
func (r *baseRepository[T]) updateColumns(tx *gorm.DB, id uint, fields map[string]interface{}) error {
	var model T
	if err := tx.First(&model, id).Error; err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	return tx.Model(&model).Updates(fields).Error
}
