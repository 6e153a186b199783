package command

import (
	"context"
	"log"
	"time"

	"github.com/coacandes/member-service/internal/cqrs"
	"github.com/coacandes/member-service/internal/events"
	"github.com/coacandes/member-service/internal/models"
	"github.com/coacandes/member-service/internal/utils"
)

// MemberStore is the slice of the write repository the command service uses.
type MemberStore interface {
	Create(member *models.Member) error
	GetByID(id string) (*models.Member, error)
	ExistsByIdentification(identification string) (bool, error)
	Update(member *models.Member) error
	Delete(id string) error
}

// ViewCacher keeps the Redis read model in step with the write store.
type ViewCacher interface {
	CacheMemberView(ctx context.Context, view *models.MemberView)
	InvalidateMemberView(ctx context.Context, memberID string)
}

// AccountsChecker asks the external accounts service whether a member holds
// active accounts. A returned error means the question went unanswered.
type AccountsChecker interface {
	HasActiveAccounts(ctx context.Context, memberID string) (bool, error)
}

// EventPublisher appends lifecycle events to the member event stream.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data any) error
}

// MemberCommandService owns every mutation of the member registry: it runs
// the identification uniqueness checks, stamps timestamps, and enforces the
// deletion safety rule against the accounts service.
type MemberCommandService struct {
	store     MemberStore
	views     ViewCacher
	accounts  AccountsChecker
	publisher EventPublisher
}

func NewMemberCommandService(
	store MemberStore,
	views ViewCacher,
	accounts AccountsChecker,
	publisher EventPublisher,
) *MemberCommandService {
	return &MemberCommandService{
		store:     store,
		views:     views,
		accounts:  accounts,
		publisher: publisher,
	}
}

// CreateMember registers a new member. The identification must not already
// exist; the check here is optimistic and the database constraint backs it.
func (s *MemberCommandService) CreateMember(cmd cqrs.CreateMemberCommand) (*models.Member, error) {
	exists, err := s.store.ExistsByIdentification(cmd.Identification)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateIdentification
	}

	now := time.Now().UTC()
	member := &models.Member{
		ID:                 utils.GenerateID("mbr"),
		Identification:     cmd.Identification,
		IdentificationType: cmd.IdentificationType,
		Names:              cmd.Names,
		Surnames:           cmd.Surnames,
		Email:              cmd.Email,
		Phone:              cmd.Phone,
		Address:            cmd.Address,
		Active:             true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.store.Create(member); err != nil {
		return nil, err
	}

	ctx := context.Background()
	s.views.CacheMemberView(ctx, memberToView(member))
	if err := s.publisher.Publish(ctx, events.MemberCreated, events.MemberCreatedEvent{
		MemberID:       member.ID,
		Identification: member.Identification,
		Names:          member.Names,
		Surnames:       member.Surnames,
	}); err != nil {
		log.Printf("Failed to publish member.created event: %v", err)
	}
	return member, nil
}

// UpdateMember applies every mutable field of the request onto the stored
// member. ID and creation timestamp are preserved; a changed identification
// must not already belong to another member.
func (s *MemberCommandService) UpdateMember(cmd cqrs.UpdateMemberCommand) (*models.MemberView, error) {
	member, err := s.store.GetByID(cmd.MemberID)
	if err != nil {
		return nil, err
	}

	if cmd.Identification != member.Identification {
		exists, err := s.store.ExistsByIdentification(cmd.Identification)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.ErrDuplicateIdentification
		}
	}

	member.Identification = cmd.Identification
	member.IdentificationType = cmd.IdentificationType
	member.Names = cmd.Names
	member.Surnames = cmd.Surnames
	member.Email = cmd.Email
	member.Phone = cmd.Phone
	member.Address = cmd.Address
	member.Active = cmd.Active
	member.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(member); err != nil {
		return nil, err
	}

	view := memberToView(member)
	s.views.CacheMemberView(context.Background(), view)
	if err := s.publisher.Publish(context.Background(), events.MemberUpdated, events.MemberUpdatedEvent{
		MemberID:       member.ID,
		Identification: member.Identification,
		Names:          member.Names,
		Surnames:       member.Surnames,
	}); err != nil {
		log.Printf("Failed to publish member.updated event: %v", err)
	}
	return view, nil
}

// DeleteMember removes a member, but only after the accounts service has
// positively confirmed the member holds no active accounts. If the member
// has accounts, or the accounts service cannot answer, the deletion is
// refused and the member is left untouched. Callers retry by issuing a new
// delete once the dependency recovers.
func (s *MemberCommandService) DeleteMember(cmd cqrs.DeleteMemberCommand) error {
	member, err := s.store.GetByID(cmd.MemberID)
	if err != nil {
		return err
	}

	// Fresh remote check on every delete; the outcome is never cached.
	hasAccounts, err := s.accounts.HasActiveAccounts(context.Background(), cmd.MemberID)
	if err != nil {
		return err
	}
	if hasAccounts {
		return models.ErrActiveAccounts
	}

	if err := s.store.Delete(cmd.MemberID); err != nil {
		return err
	}

	s.views.InvalidateMemberView(context.Background(), cmd.MemberID)
	if err := s.publisher.Publish(context.Background(), events.MemberDeleted, events.MemberDeletedEvent{
		MemberID:       member.ID,
		Identification: member.Identification,
	}); err != nil {
		log.Printf("Failed to publish member.deleted event: %v", err)
	}
	return nil
}

// memberToView is the explicit write-model to read-model conversion; every
// exposed field is listed here, nothing is mapped by reflection.
func memberToView(m *models.Member) *models.MemberView {
	return &models.MemberView{
		ID:                 m.ID,
		Identification:     m.Identification,
		IdentificationType: m.IdentificationType,
		Names:              m.Names,
		Surnames:           m.Surnames,
		Email:              m.Email,
		Phone:              m.Phone,
		Address:            m.Address,
		Active:             m.Active,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
