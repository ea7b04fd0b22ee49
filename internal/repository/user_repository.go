package repository

import (
	"context"

	"gorm.io/gorm"

	"guest_management/internal/models"
	"guest_management/internal/storage"
)

// UserRepository 只讀取 users 基礎表，子類型由各自的 repository 負責
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context, page Page) ([]models.User, error)
}

type userRepository struct {
	base baseRepository[models.User]
}

func NewUserRepository(db *storage.DB) UserRepository {
	return &userRepository{base: baseRepository[models.User]{db: db, orderBy: "id"}}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return r.base.findByID(ctx, id)
}

func (r *userRepository) List(ctx context.Context, page Page) ([]models.User, error) {
	return r.base.list(ctx, page)
}

// createUser 在子類型建立前寫入 users 列並設定鑑別欄位
func createUser(tx *gorm.DB, user *models.User, kind models.UserType) error {
	user.ID = 0
	user.Type = kind
	return tx.Create(user).Error
}

func updateUser(tx *gorm.DB, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return tx.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

func deleteUser(tx *gorm.DB, id uint) error {
	return tx.Delete(&models.User{}, id).Error
}
