package models

// Staff 表示一位工作人員
type Staff struct {
	UserID         uint    `gorm:"primaryKey;autoIncrement:false"`
	User           User    `gorm:"constraint:OnDelete:CASCADE"`
	Responsibility *string `gorm:"size:200"`
	AuthorityLevel *int
}

func (Staff) TableName() string {
	return "staff"
}
