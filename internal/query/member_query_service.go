package query

import (
	"context"

	"github.com/coacandes/member-service/internal/cqrs"
	"github.com/coacandes/member-service/internal/models"
)

// MemberReader is the slice of the read repository the query service uses.
type MemberReader interface {
	GetByID(ctx context.Context, id string) (*models.MemberView, error)
	GetByIdentification(ctx context.Context, identification string) (*models.MemberView, error)
	List(ctx context.Context) ([]*models.MemberView, error)
}

// MemberQueryService serves member views from the read repository (Redis
// with a Postgres fallback).
type MemberQueryService struct {
	readRepo MemberReader
}

func NewMemberQueryService(readRepo MemberReader) *MemberQueryService {
	return &MemberQueryService{readRepo: readRepo}
}

func (s *MemberQueryService) GetMember(q cqrs.GetMemberQuery) (*models.MemberView, error) {
	return s.readRepo.GetByID(context.Background(), q.MemberID)
}

func (s *MemberQueryService) GetMemberByIdentification(q cqrs.GetMemberByIdentificationQuery) (*models.MemberView, error) {
	return s.readRepo.GetByIdentification(context.Background(), q.Identification)
}

func (s *MemberQueryService) ListMembers(q cqrs.ListMembersQuery) ([]*models.MemberView, error) {
	return s.readRepo.List(context.Background())
}
