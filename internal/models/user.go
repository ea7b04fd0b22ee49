package models

import "time"

// Gender 定義用戶性別
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// UserType 是 users 表的鑑別欄位，決定該列對應的具體子類型
type UserType string

const (
	UserTypeGuest           UserType = "guest"
	UserTypeStaff           UserType = "staff"
	UserTypeCommitteeMember UserType = "committee_member"
)

// User 是嘉賓、工作人員與委員會成員共用的基礎資料。
// 每一列都必須且只能對應一個子類型表中的列（由 Type 決定）。
type User struct {
	ID        uint     `gorm:"primaryKey"`
	Name      string   `gorm:"size:100;not null"`
	Gender    *Gender  `gorm:"size:10"`
	Contact   *string  `gorm:"size:50"`
	Type      UserType `gorm:"size:50;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
