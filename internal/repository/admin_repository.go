package repository

import (
	"context"

	"guest_management/internal/models"
	"guest_management/internal/storage"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type adminRepository struct {
	db   *storage.DB
	base baseRepository[models.Admin]
}

func NewAdminRepository(db *storage.DB) AdminRepository {
	return &adminRepository{
		db:   db,
		base: baseRepository[models.Admin]{db: db, orderBy: "id"},
	}
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return r.base.create(ctx, admin)
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
