package repository

import "guest_management/internal/storage"

type Repositories struct {
	Admin     AdminRepository
	User      UserRepository
	Guest     GuestRepository
	Staff     StaffRepository
	Committee CommitteeRepository
	Event     EventRepository
}

func NewRepositories(db *storage.DB) *Repositories {
	return &Repositories{
		Admin:     NewAdminRepository(db),
		User:      NewUserRepository(db),
		Guest:     NewGuestRepository(db),
		Staff:     NewStaffRepository(db),
		Committee: NewCommitteeRepository(db),
		Event:     NewEventRepository(db),
	}
}
