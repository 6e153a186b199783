package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/coacandes/member-service/internal/cqrs"
	"github.com/coacandes/member-service/internal/models"
)

// ---- fakes ----

// fakeStore is an in-memory MemberStore keyed by member ID.
type fakeStore struct {
	members map[string]*models.Member
}

func newFakeStore() *fakeStore {
	return &fakeStore{members: make(map[string]*models.Member)}
}

func (f *fakeStore) Create(member *models.Member) error {
	for _, m := range f.members {
		if m.Identification == member.Identification {
			return models.ErrDuplicateIdentification
		}
	}
	copied := *member
	f.members[member.ID] = &copied
	return nil
}

func (f *fakeStore) GetByID(id string) (*models.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, models.ErrMemberNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeStore) ExistsByIdentification(identification string) (bool, error) {
	for _, m := range f.members {
		if m.Identification == identification {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Update(member *models.Member) error {
	if _, ok := f.members[member.ID]; !ok {
		return models.ErrMemberNotFound
	}
	copied := *member
	f.members[member.ID] = &copied
	return nil
}

func (f *fakeStore) Delete(id string) error {
	if _, ok := f.members[id]; !ok {
		return models.ErrMemberNotFound
	}
	delete(f.members, id)
	return nil
}

type fakeViews struct {
	cached      []string
	invalidated []string
}

func (f *fakeViews) CacheMemberView(_ context.Context, view *models.MemberView) {
	f.cached = append(f.cached, view.ID)
}

func (f *fakeViews) InvalidateMemberView(_ context.Context, memberID string) {
	f.invalidated = append(f.invalidated, memberID)
}

type fakeAccounts struct {
	hasAccounts bool
	err         error
	calls       int
}

func (f *fakeAccounts) HasActiveAccounts(_ context.Context, _ string) (bool, error) {
	f.calls++
	return f.hasAccounts, f.err
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) Publish(_ context.Context, eventType string, _ any) error {
	f.published = append(f.published, eventType)
	return nil
}

func newService(store *fakeStore, gateway *fakeAccounts) (*MemberCommandService, *fakeViews, *fakePublisher) {
	views := &fakeViews{}
	publisher := &fakePublisher{}
	return NewMemberCommandService(store, views, gateway, publisher), views, publisher
}

func validCreate() cqrs.CreateMemberCommand {
	return cqrs.CreateMemberCommand{
		Identification:     "1712345678",
		IdentificationType: models.IdentificationIndividual,
		Names:              "Juan Carlos",
		Surnames:           "Pérez González",
		Email:              "juan.perez@gmail.com",
		Phone:              "0987654321",
		Address:            "Av. Amazonas N23-45",
	}
}

// ---- tests ----

func TestCreateMember(t *testing.T) {
	store := newFakeStore()
	svc, views, publisher := newService(store, &fakeAccounts{})

	member, err := svc.CreateMember(validCreate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if member.ID == "" || !strings.HasPrefix(member.ID, "mbr-") {
		t.Errorf("expected mbr- prefixed id, got %q", member.ID)
	}
	if !member.Active {
		t.Error("new member should default to active")
	}
	if member.CreatedAt.IsZero() || member.UpdatedAt.Before(member.CreatedAt) {
		t.Errorf("bad timestamps: created=%v updated=%v", member.CreatedAt, member.UpdatedAt)
	}

	stored, err := store.GetByID(member.ID)
	if err != nil {
		t.Fatalf("member not persisted: %v", err)
	}
	if stored.Identification != "1712345678" {
		t.Errorf("stored identification %q", stored.Identification)
	}
	if len(views.cached) != 1 || views.cached[0] != member.ID {
		t.Errorf("expected one cached view for %s, got %v", member.ID, views.cached)
	}
	if len(publisher.published) != 1 || publisher.published[0] != "member.created" {
		t.Errorf("expected member.created event, got %v", publisher.published)
	}
}

func TestCreateMemberDuplicateIdentification(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newService(store, &fakeAccounts{})

	if _, err := svc.CreateMember(validCreate()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	second := validCreate()
	second.Names = "Otro"
	second.Email = "otro@gmail.com"
	_, err := svc.CreateMember(second)
	if !errors.Is(err, models.ErrDuplicateIdentification) {
		t.Fatalf("expected ErrDuplicateIdentification, got %v", err)
	}
	if len(store.members) != 1 {
		t.Errorf("store should still hold exactly one member, has %d", len(store.members))
	}
}

func TestUpdateMember(t *testing.T) {
	store := newFakeStore()
	svc, _, publisher := newService(store, &fakeAccounts{})

	created, _ := svc.CreateMember(validCreate())

	t.Run("not found", func(t *testing.T) {
		cmd := cqrs.UpdateMemberCommand{MemberID: "mbr-missing000", Identification: "1799999999"}
		if _, err := svc.UpdateMember(cmd); !errors.Is(err, models.ErrMemberNotFound) {
			t.Fatalf("expected ErrMemberNotFound, got %v", err)
		}
	})

	t.Run("identification taken by another member", func(t *testing.T) {
		other := validCreate()
		other.Identification = "1723456789"
		other.Email = "maria@gmail.com"
		if _, err := svc.CreateMember(other); err != nil {
			t.Fatalf("setup create failed: %v", err)
		}

		cmd := cqrs.UpdateMemberCommand{
			MemberID:           created.ID,
			Identification:     "1723456789",
			IdentificationType: models.IdentificationIndividual,
			Names:              created.Names,
			Surnames:           created.Surnames,
			Active:             true,
		}
		if _, err := svc.UpdateMember(cmd); !errors.Is(err, models.ErrDuplicateIdentification) {
			t.Fatalf("expected ErrDuplicateIdentification, got %v", err)
		}
	})

	t.Run("keeping own identification succeeds", func(t *testing.T) {
		cmd := cqrs.UpdateMemberCommand{
			MemberID:           created.ID,
			Identification:     created.Identification,
			IdentificationType: created.IdentificationType,
			Names:              "Juan Renamed",
			Surnames:           created.Surnames,
			Email:              created.Email,
			Phone:              created.Phone,
			Address:            created.Address,
			Active:             true,
		}
		view, err := svc.UpdateMember(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Names != "Juan Renamed" {
			t.Errorf("names not applied, got %q", view.Names)
		}
		if view.ID != created.ID {
			t.Errorf("id changed on update: %q", view.ID)
		}
		if !view.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("createdAt changed on update: %v vs %v", view.CreatedAt, created.CreatedAt)
		}
		if view.UpdatedAt.Before(view.CreatedAt) {
			t.Errorf("updatedAt %v before createdAt %v", view.UpdatedAt, view.CreatedAt)
		}
	})

	found := false
	for _, e := range publisher.published {
		if e == "member.updated" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a member.updated event, got %v", publisher.published)
	}
}

func TestDeleteMemberWithoutAccounts(t *testing.T) {
	store := newFakeStore()
	gateway := &fakeAccounts{hasAccounts: false}
	svc, views, publisher := newService(store, gateway)

	created, _ := svc.CreateMember(validCreate())

	if err := svc.DeleteMember(cqrs.DeleteMemberCommand{MemberID: created.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gateway.calls != 1 {
		t.Errorf("expected exactly one accounts check, got %d", gateway.calls)
	}
	if _, err := store.GetByID(created.ID); !errors.Is(err, models.ErrMemberNotFound) {
		t.Errorf("member should be gone, got %v", err)
	}
	if len(views.invalidated) != 1 || views.invalidated[0] != created.ID {
		t.Errorf("expected invalidated view for %s, got %v", created.ID, views.invalidated)
	}
	if publisher.published[len(publisher.published)-1] != "member.deleted" {
		t.Errorf("expected member.deleted event, got %v", publisher.published)
	}
}

func TestDeleteMemberWithActiveAccounts(t *testing.T) {
	store := newFakeStore()
	svc, views, _ := newService(store, &fakeAccounts{hasAccounts: true})

	created, _ := svc.CreateMember(validCreate())

	err := svc.DeleteMember(cqrs.DeleteMemberCommand{MemberID: created.ID})
	if !errors.Is(err, models.ErrActiveAccounts) {
		t.Fatalf("expected ErrActiveAccounts, got %v", err)
	}
	if _, err := store.GetByID(created.ID); err != nil {
		t.Errorf("member must be untouched after a blocked delete: %v", err)
	}
	if len(views.invalidated) != 0 {
		t.Errorf("blocked delete must not invalidate the view: %v", views.invalidated)
	}
}

func TestDeleteMemberAccountsServiceDown(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newService(store, &fakeAccounts{err: models.ErrAccountsUnavailable})

	created, _ := svc.CreateMember(validCreate())

	err := svc.DeleteMember(cqrs.DeleteMemberCommand{MemberID: created.ID})
	if !errors.Is(err, models.ErrAccountsUnavailable) {
		t.Fatalf("expected ErrAccountsUnavailable, got %v", err)
	}
	if _, err := store.GetByID(created.ID); err != nil {
		t.Errorf("member must survive an unavailable accounts service: %v", err)
	}
}

func TestDeleteMemberNotFound(t *testing.T) {
	store := newFakeStore()
	gateway := &fakeAccounts{}
	svc, _, _ := newService(store, gateway)

	err := svc.DeleteMember(cqrs.DeleteMemberCommand{MemberID: "mbr-missing000"})
	if !errors.Is(err, models.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
	if gateway.calls != 0 {
		t.Errorf("accounts service must not be consulted for an unknown member")
	}
}

// Full lifecycle: register, reject the duplicate, delete once the accounts
// service reports an empty list, then fail the repeat delete.
func TestMemberLifecycle(t *testing.T) {
	store := newFakeStore()
	gateway := &fakeAccounts{hasAccounts: false}
	svc, _, _ := newService(store, gateway)

	m1, err := svc.CreateMember(validCreate())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.CreateMember(validCreate()); !errors.Is(err, models.ErrDuplicateIdentification) {
		t.Fatalf("expected ErrDuplicateIdentification, got %v", err)
	}

	if err := svc.DeleteMember(cqrs.DeleteMemberCommand{MemberID: m1.ID}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if err := svc.DeleteMember(cqrs.DeleteMemberCommand{MemberID: m1.ID}); !errors.Is(err, models.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound on repeat delete, got %v", err)
	}
}
