package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"guest_management/internal/models"
	"guest_management/internal/storage"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	FindByID(ctx context.Context, id uint) (*models.Guest, error)
	List(ctx context.Context, page Page) ([]models.Guest, error)
	SearchByName(ctx context.Context, name string, page Page) ([]models.Guest, error)
	FindByLevel(ctx context.Context, level int, page Page) ([]models.Guest, error)
	Update(ctx context.Context, id uint, userFields, guestFields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type guestRepository struct {
	db   *storage.DB
	base baseRepository[models.Guest]
}

func NewGuestRepository(db *storage.DB) GuestRepository {
	return &guestRepository{
		db:   db,
		base: baseRepository[models.Guest]{db: db, orderBy: "user_id"},
	}
}

// withGuestAssociations 載入基礎資料與參加的活動
func withGuestAssociations(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Events", func(db *gorm.DB) *gorm.DB {
		return db.Order("events.id")
	})
}

func (r *guestRepository) Create(ctx context.Context, guest *models.Guest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUser(tx, &guest.User, models.UserTypeGuest); err != nil {
			return err
		}
		guest.UserID = guest.User.ID
		return tx.Omit(clause.Associations).Create(guest).Error
	})
}

func (r *guestRepository) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	return r.base.findByID(ctx, id, withGuestAssociations)
}

func (r *guestRepository) List(ctx context.Context, page Page) ([]models.Guest, error) {
	return r.base.list(ctx, page, withGuestAssociations)
}

// SearchByName 以不分大小寫的子字串比對姓名，name 中的 % 與 _ 視為一般字元
func (r *guestRepository) SearchByName(ctx context.Context, name string, page Page) ([]models.Guest, error) {
	pattern := "%" + escapeLike(strings.ToLower(name)) + "%"
	matching := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("id").
		Where("type = ? AND LOWER(name) LIKE ? ESCAPE '\\'", models.UserTypeGuest, pattern)

	return r.base.list(ctx, page, withGuestAssociations, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id IN (?)", matching)
	})
}

func (r *guestRepository) FindByLevel(ctx context.Context, level int, page Page) ([]models.Guest, error) {
	return r.base.list(ctx, page, withGuestAssociations, func(db *gorm.DB) *gorm.DB {
		return db.Where("guest_level = ?", level)
	})
}

func (r *guestRepository) Update(ctx context.Context, id uint, userFields, guestFields map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.base.updateColumns(tx, id, guestFields); err != nil {
			return err
		}
		return updateUser(tx, id, userFields)
	})
}

// Delete 先移除活動關聯，再刪除 guests 與 users 兩列
func (r *guestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&guest).Association("Events").Clear(); err != nil {
			return err
		}
		if err := tx.Delete(&guest).Error; err != nil {
			return err
		}
		return deleteUser(tx, id)
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
