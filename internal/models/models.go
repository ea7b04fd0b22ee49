package models

// All 回傳需要自動遷移的模型，順序即建表順序
func All() []interface{} {
	return []interface{}{
		&Admin{},
		&User{},
		&Guest{},
		&Staff{},
		&CommitteeMember{},
		&Event{},
	}
}
