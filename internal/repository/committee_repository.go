package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"guest_management/internal/models"
	"guest_management/internal/storage"
)

type CommitteeRepository interface {
	Create(ctx context.Context, member *models.CommitteeMember) error
	FindByID(ctx context.Context, id uint) (*models.CommitteeMember, error)
	List(ctx context.Context, page Page) ([]models.CommitteeMember, error)
	Update(ctx context.Context, id uint, userFields, memberFields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type committeeRepository struct {
	db   *storage.DB
	base baseRepository[models.CommitteeMember]
}

func NewCommitteeRepository(db *storage.DB) CommitteeRepository {
	return &committeeRepository{
		db:   db,
		base: baseRepository[models.CommitteeMember]{db: db, orderBy: "user_id"},
	}
}

func withMemberAssociations(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Events", func(db *gorm.DB) *gorm.DB {
		return db.Order("events.id")
	})
}

func (r *committeeRepository) Create(ctx context.Context, member *models.CommitteeMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUser(tx, &member.User, models.UserTypeCommitteeMember); err != nil {
			return err
		}
		member.UserID = member.User.ID
		return tx.Omit(clause.Associations).Create(member).Error
	})
}

func (r *committeeRepository) FindByID(ctx context.Context, id uint) (*models.CommitteeMember, error) {
	return r.base.findByID(ctx, id, withMemberAssociations)
}

func (r *committeeRepository) List(ctx context.Context, page Page) ([]models.CommitteeMember, error) {
	return r.base.list(ctx, page, withMemberAssociations)
}

func (r *committeeRepository) Update(ctx context.Context, id uint, userFields, memberFields map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.base.updateColumns(tx, id, memberFields); err != nil {
			return err
		}
		return updateUser(tx, id, userFields)
	})
}

// Delete 先解除其管理的活動，再刪除子類型與基礎列
func (r *committeeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member models.CommitteeMember
		if err := tx.First(&member, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&member).Association("Events").Clear(); err != nil {
			return err
		}
		if err := tx.Delete(&member).Error; err != nil {
			return err
		}
		return deleteUser(tx, id)
	})
}
