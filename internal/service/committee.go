package service

import (
	"context"

	"guest_management/internal/models"
	"guest_management/internal/repository"
)

type CommitteeMemberFields struct {
	Role            *string `json:"role" binding:"omitempty,max=100"`
	PermissionLevel *int    `json:"permission_level"`
	TeamType        *string `json:"team_type" binding:"omitempty,max=50"`
}

func (f CommitteeMemberFields) changes() map[string]interface{} {
	fields := map[string]interface{}{}
	if f.Role != nil {
		fields["role"] = *f.Role
	}
	if f.PermissionLevel != nil {
		fields["permission_level"] = *f.PermissionLevel
	}
	if f.TeamType != nil {
		fields["team_type"] = *f.TeamType
	}
	return fields
}

type CommitteeMemberCreate struct {
	Name string `json:"name" binding:"required,max=100"`
	UserFields
	CommitteeMemberFields
}

type CommitteeMemberUpdate struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	UserFields
	CommitteeMemberFields
}

type CommitteeMember struct {
	User
	CommitteeMemberFields
	Events []EventSummary `json:"events"`
}

func convertCommitteeMember(m *models.CommitteeMember) *CommitteeMember {
	member := &CommitteeMember{
		User: convertUser(m.User),
		CommitteeMemberFields: CommitteeMemberFields{
			Role:            m.Role,
			PermissionLevel: m.PermissionLevel,
			TeamType:        m.TeamType,
		},
		Events: convertEventSummaries(m.Events),
	}
	member.ID = m.UserID
	return member
}

type CommitteeService struct {
	committeeRepo repository.CommitteeRepository
}

func NewCommitteeService(committeeRepo repository.CommitteeRepository) *CommitteeService {
	return &CommitteeService{committeeRepo: committeeRepo}
}

func (s *CommitteeService) CreateMember(ctx context.Context, input CommitteeMemberCreate) (*CommitteeMember, error) {
	memberModel := &models.CommitteeMember{
		User:            models.User{Name: input.Name},
		Role:            input.Role,
		PermissionLevel: input.PermissionLevel,
		TeamType:        input.TeamType,
	}
	input.UserFields.apply(&memberModel.User)

	if err := s.committeeRepo.Create(ctx, memberModel); err != nil {
		return nil, translate(err, "Committee member")
	}
	return s.GetMember(ctx, memberModel.UserID)
}

func (s *CommitteeService) GetMember(ctx context.Context, id uint) (*CommitteeMember, error) {
	memberModel, err := s.committeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Committee member")
	}
	return convertCommitteeMember(memberModel), nil
}

func (s *CommitteeService) ListMembers(ctx context.Context, p Pagination) ([]*CommitteeMember, error) {
	memberModels, err := s.committeeRepo.List(ctx, p.page())
	if err != nil {
		return nil, err
	}
	result := make([]*CommitteeMember, 0, len(memberModels))
	for i := range memberModels {
		result = append(result, convertCommitteeMember(&memberModels[i]))
	}
	return result, nil
}

func (s *CommitteeService) UpdateMember(ctx context.Context, id uint, input CommitteeMemberUpdate) (*CommitteeMember, error) {
	userFields := input.UserFields.changes()
	if input.Name != nil {
		userFields["name"] = *input.Name
	}

	if err := s.committeeRepo.Update(ctx, id, userFields, input.CommitteeMemberFields.changes()); err != nil {
		return nil, translate(err, "Committee member")
	}
	return s.GetMember(ctx, id)
}

func (s *CommitteeService) DeleteMember(ctx context.Context, id uint) error {
	return translate(s.committeeRepo.Delete(ctx, id), "Committee member")
}
