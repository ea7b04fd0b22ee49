package models

import "time"

// Event 表示一個活動
type Event struct {
	ID       uint    `gorm:"primaryKey"`
	Title    string  `gorm:"size:200;not null"`
	Location *string `gorm:"size:200"`
	Time     *time.Time
	// MinPermissionLevel 只做儲存，目前不用於任何檢查
	MinPermissionLevel *int
	Guests             []Guest           `gorm:"many2many:event_guest;joinForeignKey:EventID;joinReferences:GuestID"`
	Managers           []CommitteeMember `gorm:"many2many:event_committee;joinForeignKey:EventID;joinReferences:CommitteeMemberID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
