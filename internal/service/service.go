package service

import (
	"guest_management/internal/repository"
	"guest_management/internal/utils"
)

type Services struct {
	Auth      *AuthService
	User      *UserService
	Guest     *GuestService
	Staff     *StaffService
	Committee *CommitteeService
	Event     *EventService
}

func NewServices(repos *repository.Repositories, tokens *utils.TokenManager) *Services {
	guestService := NewGuestService(repos.Guest)
	staffService := NewStaffService(repos.Staff)
	committeeService := NewCommitteeService(repos.Committee)

	return &Services{
		Auth:      NewAuthService(repos.Admin, tokens),
		User:      NewUserService(repos.User, guestService, staffService, committeeService),
		Guest:     guestService,
		Staff:     staffService,
		Committee: committeeService,
		Event:     NewEventService(repos.Event, repos.Guest, repos.Committee),
	}
}
