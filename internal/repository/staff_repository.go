package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"guest_management/internal/models"
	"guest_management/internal/storage"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	FindByID(ctx context.Context, id uint) (*models.Staff, error)
	List(ctx context.Context, page Page) ([]models.Staff, error)
	Update(ctx context.Context, id uint, userFields, staffFields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type staffRepository struct {
	db   *storage.DB
	base baseRepository[models.Staff]
}

func NewStaffRepository(db *storage.DB) StaffRepository {
	return &staffRepository{
		db:   db,
		base: baseRepository[models.Staff]{db: db, orderBy: "user_id"},
	}
}

func withStaffUser(db *gorm.DB) *gorm.DB {
	return db.Preload("User")
}

func (r *staffRepository) Create(ctx context.Context, staff *models.Staff) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUser(tx, &staff.User, models.UserTypeStaff); err != nil {
			return err
		}
		staff.UserID = staff.User.ID
		return tx.Omit(clause.Associations).Create(staff).Error
	})
}

func (r *staffRepository) FindByID(ctx context.Context, id uint) (*models.Staff, error) {
	return r.base.findByID(ctx, id, withStaffUser)
}

func (r *staffRepository) List(ctx context.Context, page Page) ([]models.Staff, error) {
	return r.base.list(ctx, page, withStaffUser)
}

func (r *staffRepository) Update(ctx context.Context, id uint, userFields, staffFields map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.base.updateColumns(tx, id, staffFields); err != nil {
			return err
		}
		return updateUser(tx, id, userFields)
	})
}

func (r *staffRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var staff models.Staff
		if err := tx.First(&staff, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&staff).Error; err != nil {
			return err
		}
		return deleteUser(tx, id)
	})
}
