package repository

import (
	"context"

	"gorm.io/gorm"

	"guest_management/internal/models"
	"guest_management/internal/storage"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context, page Page) ([]models.Event, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	AddGuest(ctx context.Context, eventID, guestID uint) error
	RemoveGuest(ctx context.Context, eventID, guestID uint) error
	AddManager(ctx context.Context, eventID, memberID uint) error
	RemoveManager(ctx context.Context, eventID, memberID uint) error
}

type eventRepository struct {
	db   *storage.DB
	base baseRepository[models.Event]
}

func NewEventRepository(db *storage.DB) EventRepository {
	return &eventRepository{
		db:   db,
		base: baseRepository[models.Event]{db: db, orderBy: "id"},
	}
}

// withEventMembers 載入參加的嘉賓與負責的委員（含基礎資料）
func withEventMembers(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Guests", func(db *gorm.DB) *gorm.DB { return db.Order("guests.user_id") }).
		Preload("Guests.User").
		Preload("Managers", func(db *gorm.DB) *gorm.DB { return db.Order("committee_members.user_id") }).
		Preload("Managers.User")
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.base.create(ctx, event)
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	return r.base.findByID(ctx, id, withEventMembers)
}

func (r *eventRepository) List(ctx context.Context, page Page) ([]models.Event, error) {
	return r.base.list(ctx, page, withEventMembers)
}

func (r *eventRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.base.updateColumns(tx, id, fields)
	})
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&event).Association("Guests").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&event).Association("Managers").Clear(); err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
}

// AddGuest 建立活動與嘉賓的關聯；已存在的關聯不會重複寫入
func (r *eventRepository) AddGuest(ctx context.Context, eventID, guestID uint) error {
	event := models.Event{ID: eventID}
	return r.db.WithContext(ctx).Model(&event).Association("Guests").Append(&models.Guest{UserID: guestID})
}

func (r *eventRepository) RemoveGuest(ctx context.Context, eventID, guestID uint) error {
	event := models.Event{ID: eventID}
	return r.db.WithContext(ctx).Model(&event).Association("Guests").Delete(&models.Guest{UserID: guestID})
}

func (r *eventRepository) AddManager(ctx context.Context, eventID, memberID uint) error {
	event := models.Event{ID: eventID}
	return r.db.WithContext(ctx).Model(&event).Association("Managers").Append(&models.CommitteeMember{UserID: memberID})
}

func (r *eventRepository) RemoveManager(ctx context.Context, eventID, memberID uint) error {
	event := models.Event{ID: eventID}
	return r.db.WithContext(ctx).Model(&event).Association("Managers").Delete(&models.CommitteeMember{UserID: memberID})
}
