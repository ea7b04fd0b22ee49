package service

import (
	"context"

	"guest_management/internal/models"
	"guest_management/internal/repository"
)

// GuestFields 是嘉賓專屬的可選欄位
type GuestFields struct {
	Location     *string `json:"location" binding:"omitempty,max=200"`
	Organization *string `json:"organization" binding:"omitempty,max=200"`
	Email        *string `json:"email" binding:"omitempty,email,max=100"`
	Passport     *string `json:"passport" binding:"omitempty,max=50"`
	Nationality  *string `json:"nationality" binding:"omitempty,max=100"`
	GuestLevel   *int    `json:"guest_level"`
}

func (f GuestFields) changes() map[string]interface{} {
	fields := map[string]interface{}{}
	if f.Location != nil {
		fields["location"] = *f.Location
	}
	if f.Organization != nil {
		fields["organization"] = *f.Organization
	}
	if f.Email != nil {
		fields["email"] = *f.Email
	}
	if f.Passport != nil {
		fields["passport"] = *f.Passport
	}
	if f.Nationality != nil {
		fields["nationality"] = *f.Nationality
	}
	if f.GuestLevel != nil {
		fields["guest_level"] = *f.GuestLevel
	}
	return fields
}

type GuestCreate struct {
	Name string `json:"name" binding:"required,max=100"`
	UserFields
	GuestFields
}

// GuestUpdate 只會覆寫請求中出現的欄位
type GuestUpdate struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	UserFields
	GuestFields
}

// Guest 是嘉賓的對外表示
type Guest struct {
	User
	GuestFields
	Events []EventSummary `json:"events"`
}

func convertGuest(g *models.Guest) *Guest {
	guest := &Guest{
		User: convertUser(g.User),
		GuestFields: GuestFields{
			Location:     g.Location,
			Organization: g.Organization,
			Email:        g.Email,
			Passport:     g.Passport,
			Nationality:  g.Nationality,
			GuestLevel:   g.GuestLevel,
		},
		Events: convertEventSummaries(g.Events),
	}
	guest.ID = g.UserID
	return guest
}

func convertGuests(guests []models.Guest) []*Guest {
	result := make([]*Guest, 0, len(guests))
	for i := range guests {
		result = append(result, convertGuest(&guests[i]))
	}
	return result
}

type GuestService struct {
	guestRepo repository.GuestRepository
}

func NewGuestService(guestRepo repository.GuestRepository) *GuestService {
	return &GuestService{guestRepo: guestRepo}
}

func (s *GuestService) CreateGuest(ctx context.Context, input GuestCreate) (*Guest, error) {
	guestModel := &models.Guest{
		User:         models.User{Name: input.Name},
		Location:     input.Location,
		Organization: input.Organization,
		Email:        input.Email,
		Passport:     input.Passport,
		Nationality:  input.Nationality,
		GuestLevel:   input.GuestLevel,
	}
	input.UserFields.apply(&guestModel.User)

	if err := s.guestRepo.Create(ctx, guestModel); err != nil {
		return nil, translate(err, "Guest")
	}
	return s.GetGuest(ctx, guestModel.UserID)
}

func (s *GuestService) GetGuest(ctx context.Context, id uint) (*Guest, error) {
	guestModel, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Guest")
	}
	return convertGuest(guestModel), nil
}

func (s *GuestService) ListGuests(ctx context.Context, p Pagination) ([]*Guest, error) {
	guests, err := s.guestRepo.List(ctx, p.page())
	if err != nil {
		return nil, err
	}
	return convertGuests(guests), nil
}

// SearchGuests 回傳姓名包含 name（不分大小寫）的嘉賓
func (s *GuestService) SearchGuests(ctx context.Context, name string, p Pagination) ([]*Guest, error) {
	guests, err := s.guestRepo.SearchByName(ctx, name, p.page())
	if err != nil {
		return nil, err
	}
	return convertGuests(guests), nil
}

func (s *GuestService) ListGuestsByLevel(ctx context.Context, level int, p Pagination) ([]*Guest, error) {
	guests, err := s.guestRepo.FindByLevel(ctx, level, p.page())
	if err != nil {
		return nil, err
	}
	return convertGuests(guests), nil
}

func (s *GuestService) UpdateGuest(ctx context.Context, id uint, input GuestUpdate) (*Guest, error) {
	userFields := input.UserFields.changes()
	if input.Name != nil {
		userFields["name"] = *input.Name
	}

	if err := s.guestRepo.Update(ctx, id, userFields, input.GuestFields.changes()); err != nil {
		return nil, translate(err, "Guest")
	}
	return s.GetGuest(ctx, id)
}

func (s *GuestService) DeleteGuest(ctx context.Context, id uint) error {
	return translate(s.guestRepo.Delete(ctx, id), "Guest")
}
