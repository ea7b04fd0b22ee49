package models

// Guest 表示一位嘉賓；主鍵同時是指向 users.id 的外鍵
type Guest struct {
	UserID       uint    `gorm:"primaryKey;autoIncrement:false"`
	User         User    `gorm:"constraint:OnDelete:CASCADE"`
	Location     *string `gorm:"size:200"`
	Organization *string `gorm:"size:200"`
	Email        *string `gorm:"size:100"`
	Passport     *string `gorm:"size:50"`
	Nationality  *string `gorm:"size:100"`
	GuestLevel   *int    `gorm:"index"`
	Events       []Event `gorm:"many2many:event_guest;joinForeignKey:GuestID;joinReferences:EventID"`
}
