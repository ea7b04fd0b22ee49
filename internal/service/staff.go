package service

import (
	"context"

	"guest_management/internal/models"
	"guest_management/internal/repository"
)

type StaffFields struct {
	Responsibility *string `json:"responsibility" binding:"omitempty,max=200"`
	AuthorityLevel *int    `json:"authority_level"`
}

func (f StaffFields) changes() map[string]interface{} {
	fields := map[string]interface{}{}
	if f.Responsibility != nil {
		fields["responsibility"] = *f.Responsibility
	}
	if f.AuthorityLevel != nil {
		fields["authority_level"] = *f.AuthorityLevel
	}
	return fields
}

type StaffCreate struct {
	Name string `json:"name" binding:"required,max=100"`
	UserFields
	StaffFields
}

type StaffUpdate struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	UserFields
	StaffFields
}

type Staff struct {
	User
	StaffFields
}

func convertStaff(s *models.Staff) *Staff {
	staff := &Staff{
		User: convertUser(s.User),
		StaffFields: StaffFields{
			Responsibility: s.Responsibility,
			AuthorityLevel: s.AuthorityLevel,
		},
	}
	staff.ID = s.UserID
	return staff
}

type StaffService struct {
	staffRepo repository.StaffRepository
}

func NewStaffService(staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

func (s *StaffService) CreateStaff(ctx context.Context, input StaffCreate) (*Staff, error) {
	staffModel := &models.Staff{
		User:           models.User{Name: input.Name},
		Responsibility: input.Responsibility,
		AuthorityLevel: input.AuthorityLevel,
	}
	input.UserFields.apply(&staffModel.User)

	if err := s.staffRepo.Create(ctx, staffModel); err != nil {
		return nil, translate(err, "Staff")
	}
	return s.GetStaff(ctx, staffModel.UserID)
}

func (s *StaffService) GetStaff(ctx context.Context, id uint) (*Staff, error) {
	staffModel, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Staff")
	}
	return convertStaff(staffModel), nil
}

func (s *StaffService) ListStaff(ctx context.Context, p Pagination) ([]*Staff, error) {
	staffModels, err := s.staffRepo.List(ctx, p.page())
	if err != nil {
		return nil, err
	}
	result := make([]*Staff, 0, len(staffModels))
	for i := range staffModels {
		result = append(result, convertStaff(&staffModels[i]))
	}
	return result, nil
}

func (s *StaffService) UpdateStaff(ctx context.Context, id uint, input StaffUpdate) (*Staff, error) {
	userFields := input.UserFields.changes()
	if input.Name != nil {
		userFields["name"] = *input.Name
	}

	if err := s.staffRepo.Update(ctx, id, userFields, input.StaffFields.changes()); err != nil {
		return nil, translate(err, "Staff")
	}
	return s.GetStaff(ctx, id)
}

func (s *StaffService) DeleteStaff(ctx context.Context, id uint) error {
	return translate(s.staffRepo.Delete(ctx, id), "Staff")
}
