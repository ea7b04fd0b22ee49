package models

// CommitteeMember 表示一位委員會成員，可作為活動的管理者
type CommitteeMember struct {
	UserID          uint    `gorm:"primaryKey;autoIncrement:false"`
	User            User    `gorm:"constraint:OnDelete:CASCADE"`
	Role            *string `gorm:"size:100"`
	PermissionLevel *int
	TeamType        *string `gorm:"size:50"` // 委員會內部的分組
	Events          []Event `gorm:"many2many:event_committee;joinForeignKey:CommitteeMemberID;joinReferences:EventID"`
}
