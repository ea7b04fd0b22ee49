package service

import (
	"context"
	"fmt"

	"guest_management/internal/models"
	"guest_management/internal/repository"
)

// UserService 依 users.type 鑑別欄位將基礎列解析成具體的子類型
type UserService struct {
	userRepo  repository.UserRepository
	guests    *GuestService
	staff     *StaffService
	committee *CommitteeService
}

func NewUserService(userRepo repository.UserRepository, guests *GuestService, staff *StaffService, committee *CommitteeService) *UserService {
	return &UserService{
		userRepo:  userRepo,
		guests:    guests,
		staff:     staff,
		committee: committee,
	}
}

// GetUser 回傳 *Guest、*Staff 或 *CommitteeMember 其中之一
func (s *UserService) GetUser(ctx context.Context, id uint) (interface{}, error) {
	userModel, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "User")
	}

	switch userModel.Type {
	case models.UserTypeGuest:
		return s.guests.GetGuest(ctx, id)
	case models.UserTypeStaff:
		return s.staff.GetStaff(ctx, id)
	case models.UserTypeCommitteeMember:
		return s.committee.GetMember(ctx, id)
	default:
		return nil, fmt.Errorf("user %d has unknown type %q", id, userModel.Type)
	}
}

// ListUsers 只回傳基礎欄位與 type
func (s *UserService) ListUsers(ctx context.Context, p Pagination) ([]User, error) {
	userModels, err := s.userRepo.List(ctx, p.page())
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(userModels))
	for _, u := range userModels {
		users = append(users, convertUser(u))
	}
	return users, nil
}
