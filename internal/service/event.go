package service

import (
	"context"
	"time"

	"guest_management/internal/models"
	"guest_management/internal/repository"
)

type EventFields struct {
	Location           *string    `json:"location" binding:"omitempty,max=200"`
	Time               *time.Time `json:"time"`
	MinPermissionLevel *int       `json:"min_permission_level"`
}

func (f EventFields) changes() map[string]interface{} {
	fields := map[string]interface{}{}
	if f.Location != nil {
		fields["location"] = *f.Location
	}
	if f.Time != nil {
		fields["time"] = f.Time.UTC()
	}
	if f.MinPermissionLevel != nil {
		fields["min_permission_level"] = *f.MinPermissionLevel
	}
	return fields
}

type EventCreate struct {
	Title string `json:"title" binding:"required,max=200"`
	EventFields
}

type EventUpdate struct {
	Title *string `json:"title" binding:"omitempty,min=1,max=200"`
	EventFields
}

// Event 是活動的對外表示，包含參加的嘉賓與負責的委員
type Event struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	EventFields
	Guests   []*Guest           `json:"guests"`
	Managers []*CommitteeMember `json:"managers"`
}

func convertEvent(e *models.Event) *Event {
	event := &Event{
		ID:    e.ID,
		Title: e.Title,
		EventFields: EventFields{
			Location:           e.Location,
			Time:               e.Time,
			MinPermissionLevel: e.MinPermissionLevel,
		},
		Guests:   convertGuests(e.Guests),
		Managers: make([]*CommitteeMember, 0, len(e.Managers)),
	}
	for i := range e.Managers {
		event.Managers = append(event.Managers, convertCommitteeMember(&e.Managers[i]))
	}
	return event
}

// EventService 管理活動以及活動與嘉賓、委員之間的關聯。
// MinPermissionLevel 只做儲存，建立關聯時不會與 guest_level 或 permission_level 比較。
type EventService struct {
	eventRepo     repository.EventRepository
	guestRepo     repository.GuestRepository
	committeeRepo repository.CommitteeRepository
}

func NewEventService(eventRepo repository.EventRepository, guestRepo repository.GuestRepository, committeeRepo repository.CommitteeRepository) *EventService {
	return &EventService{
		eventRepo:     eventRepo,
		guestRepo:     guestRepo,
		committeeRepo: committeeRepo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input EventCreate) (*Event, error) {
	eventModel := &models.Event{
		Title:              input.Title,
		Location:           input.Location,
		MinPermissionLevel: input.MinPermissionLevel,
	}
	if input.Time != nil {
		t := input.Time.UTC()
		eventModel.Time = &t
	}

	if err := s.eventRepo.Create(ctx, eventModel); err != nil {
		return nil, translate(err, "Event")
	}
	return s.GetEvent(ctx, eventModel.ID)
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (*Event, error) {
	eventModel, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Event")
	}
	return convertEvent(eventModel), nil
}

func (s *EventService) ListEvents(ctx context.Context, p Pagination) ([]*Event, error) {
	eventModels, err := s.eventRepo.List(ctx, p.page())
	if err != nil {
		return nil, err
	}
	result := make([]*Event, 0, len(eventModels))
	for i := range eventModels {
		result = append(result, convertEvent(&eventModels[i]))
	}
	return result, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id uint, input EventUpdate) (*Event, error) {
	fields := input.EventFields.changes()
	if input.Title != nil {
		fields["title"] = *input.Title
	}

	if err := s.eventRepo.Update(ctx, id, fields); err != nil {
		return nil, translate(err, "Event")
	}
	return s.GetEvent(ctx, id)
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	return translate(s.eventRepo.Delete(ctx, id), "Event")
}

// AddGuest 將嘉賓加入活動；重複加入不會產生重複的關聯
func (s *EventService) AddGuest(ctx context.Context, eventID, guestID uint) (*Event, error) {
	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, err
	}
	if _, err := s.guestRepo.FindByID(ctx, guestID); err != nil {
		return nil, translate(err, "Guest")
	}
	if err := s.eventRepo.AddGuest(ctx, eventID, guestID); err != nil {
		return nil, err
	}
	return s.GetEvent(ctx, eventID)
}

func (s *EventService) RemoveGuest(ctx context.Context, eventID, guestID uint) (*Event, error) {
	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, err
	}
	if err := s.eventRepo.RemoveGuest(ctx, eventID, guestID); err != nil {
		return nil, err
	}
	return s.GetEvent(ctx, eventID)
}

func (s *EventService) AddManager(ctx context.Context, eventID, memberID uint) (*Event, error) {
	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, err
	}
	if _, err := s.committeeRepo.FindByID(ctx, memberID); err != nil {
		return nil, translate(err, "Committee member")
	}
	if err := s.eventRepo.AddManager(ctx, eventID, memberID); err != nil {
		return nil, err
	}
	return s.GetEvent(ctx, eventID)
}

func (s *EventService) RemoveManager(ctx context.Context, eventID, memberID uint) (*Event, error) {
	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, err
	}
	if err := s.eventRepo.RemoveManager(ctx, eventID, memberID); err != nil {
		return nil, err
	}
	return s.GetEvent(ctx, eventID)
}

func (s *EventService) ensureEvent(ctx context.Context, id uint) error {
	_, err := s.eventRepo.FindByID(ctx, id)
	return translate(err, "Event")
}
