package service

import (
	"time"

	"guest_management/internal/models"
	"guest_management/internal/repository"
)

// UserFields 是所有用戶子類型共用的可選欄位
type UserFields struct {
	Gender  *models.Gender `json:"gender" binding:"omitempty,oneof=male female other"`
	Contact *string        `json:"contact" binding:"omitempty,max=50"`
}

func (f UserFields) apply(user *models.User) {
	user.Gender = f.Gender
	user.Contact = f.Contact
}

func (f UserFields) changes() map[string]interface{} {
	fields := map[string]interface{}{}
	if f.Gender != nil {
		fields["gender"] = string(*f.Gender)
	}
	if f.Contact != nil {
		fields["contact"] = *f.Contact
	}
	return fields
}

// User 是用戶的共同表示，Type 為鑑別欄位
type User struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	Gender  *models.Gender  `json:"gender"`
	Contact *string         `json:"contact"`
	Type    models.UserType `json:"type"`
}

func convertUser(u models.User) User {
	return User{
		ID:      u.ID,
		Name:    u.Name,
		Gender:  u.Gender,
		Contact: u.Contact,
		Type:    u.Type,
	}
}

// EventSummary 是嵌入在嘉賓與委員表示中的活動資料
type EventSummary struct {
	ID                 uint       `json:"id"`
	Title              string     `json:"title"`
	Location           *string    `json:"location"`
	Time               *time.Time `json:"time"`
	MinPermissionLevel *int       `json:"min_permission_level"`
}

func convertEventSummaries(events []models.Event) []EventSummary {
	summaries := make([]EventSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, EventSummary{
			ID:                 e.ID,
			Title:              e.Title,
			Location:           e.Location,
			Time:               e.Time,
			MinPermissionLevel: e.MinPermissionLevel,
		})
	}
	return summaries
}

// Pagination 對應查詢參數 skip 與 limit
type Pagination struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=0"`
}

// DefaultPagination 是未提供查詢參數時的分頁
var DefaultPagination = Pagination{Skip: 0, Limit: 100}

func (p Pagination) page() repository.Page {
	return repository.Page{Skip: p.Skip, Limit: p.Limit}
}
