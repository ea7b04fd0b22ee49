package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guest_management/internal/models"
	"guest_management/internal/repository"
	"guest_management/internal/testutil"
	"guest_management/internal/utils"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	db := testutil.NewDB(t)
	return NewServices(repository.NewRepositories(db), utils.NewTokenManager("test-secret", time.Hour))
}

func ptr[T any](v T) *T {
	return &v
}

func TestCreateGuestAndReadBack(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	created, err := svc.Guest.CreateGuest(ctx, GuestCreate{
		Name:        "Amy",
		GuestFields: GuestFields{GuestLevel: ptr(2)},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.UserTypeGuest, created.Type)
	require.NotNil(t, created.GuestLevel)
	assert.Equal(t, 2, *created.GuestLevel)
	assert.NotNil(t, created.Events)
	assert.Empty(t, created.Events)

	fetched, err := svc.Guest.GetGuest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestUpdateGuestKeepsUnspecifiedFields(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	created, err := svc.Guest.CreateGuest(ctx, GuestCreate{
		Name:       "Bob",
		UserFields: UserFields{Contact: ptr("555-0100"), Gender: ptr(models.GenderMale)},
		GuestFields: GuestFields{
			Organization: ptr("ACME"),
			GuestLevel:   ptr(1),
		},
	})
	require.NoError(t, err)

	updated, err := svc.Guest.UpdateGuest(ctx, created.ID, GuestUpdate{
		GuestFields: GuestFields{GuestLevel: ptr(3)},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bob", updated.Name)
	assert.Equal(t, "555-0100", *updated.Contact)
	assert.Equal(t, models.GenderMale, *updated.Gender)
	assert.Equal(t, "ACME", *updated.Organization)
	assert.Equal(t, 3, *updated.GuestLevel)

	renamed, err := svc.Guest.UpdateGuest(ctx, created.ID, GuestUpdate{Name: ptr("Robert")})
	require.NoError(t, err)
	assert.Equal(t, "Robert", renamed.Name)
	assert.Equal(t, 3, *renamed.GuestLevel)
}

func TestUpdateMissingGuest(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.Guest.UpdateGuest(context.Background(), 42, GuestUpdate{Name: ptr("Nobody")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Guest not found")
}

func TestDeleteGuest(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	guest, err := svc.Guest.CreateGuest(ctx, GuestCreate{Name: "Cara"})
	require.NoError(t, err)
	event, err := svc.Event.CreateEvent(ctx, EventCreate{Title: "Opening"})
	require.NoError(t, err)
	_, err = svc.Event.AddGuest(ctx, event.ID, guest.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Guest.DeleteGuest(ctx, guest.ID))

	_, err = svc.Guest.GetGuest(ctx, guest.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.User.GetUser(ctx, guest.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	reloaded, err := svc.Event.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Guests)

	assert.ErrorIs(t, svc.Guest.DeleteGuest(ctx, guest.ID), ErrNotFound)
}

func TestSearchGuestsIsCaseInsensitive(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	for _, name := range []string{"Amy Adams", "amanda", "Bob", "Sam_Smith"} {
		_, err := svc.Guest.CreateGuest(ctx, GuestCreate{Name: name})
		require.NoError(t, err)
	}
	_, err := svc.Staff.CreateStaff(ctx, StaffCreate{Name: "Amos"})
	require.NoError(t, err)

	found, err := svc.Guest.SearchGuests(ctx, "AM", DefaultPagination)
	require.NoError(t, err)
	assert.Equal(t, []string{"Amy Adams", "amanda", "Sam_Smith"}, guestNames(found))

	found, err = svc.Guest.SearchGuests(ctx, "_", DefaultPagination)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sam_Smith"}, guestNames(found))

	found, err = svc.Guest.SearchGuests(ctx, "zzz", DefaultPagination)
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = svc.Guest.SearchGuests(ctx, "am", Pagination{Skip: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"amanda"}, guestNames(found))
}

func TestListGuestsByLevelAndPagination(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	levels := []int{1, 2, 2, 3, 2}
	for i, level := range levels {
		_, err := svc.Guest.CreateGuest(ctx, GuestCreate{
			Name:        string(rune('A' + i)),
			GuestFields: GuestFields{GuestLevel: ptr(level)},
		})
		require.NoError(t, err)
	}

	byLevel, err := svc.Guest.ListGuestsByLevel(ctx, 2, DefaultPagination)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "E"}, guestNames(byLevel))

	page, err := svc.Guest.ListGuests(ctx, Pagination{Skip: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, guestNames(page))

	all, err := svc.Guest.ListGuests(ctx, DefaultPagination)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStaffCRUD(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	created, err := svc.Staff.CreateStaff(ctx, StaffCreate{
		Name:        "Dana",
		StaffFields: StaffFields{Responsibility: ptr("registration"), AuthorityLevel: ptr(2)},
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeStaff, created.Type)

	updated, err := svc.Staff.UpdateStaff(ctx, created.ID, StaffUpdate{
		StaffFields: StaffFields{AuthorityLevel: ptr(4)},
	})
	require.NoError(t, err)
	assert.Equal(t, "registration", *updated.Responsibility)
	assert.Equal(t, 4, *updated.AuthorityLevel)

	list, err := svc.Staff.ListStaff(ctx, DefaultPagination)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Staff.DeleteStaff(ctx, created.ID))
	_, err = svc.Staff.GetStaff(ctx, created.ID)
	assert.EqualError(t, err, "Staff not found")
}

func TestGetUserResolvesSubtype(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	guest, err := svc.Guest.CreateGuest(ctx, GuestCreate{Name: "Guest"})
	require.NoError(t, err)
	staff, err := svc.Staff.CreateStaff(ctx, StaffCreate{Name: "Staff"})
	require.NoError(t, err)
	member, err := svc.Committee.CreateMember(ctx, CommitteeMemberCreate{
		Name:                  "Member",
		CommitteeMemberFields: CommitteeMemberFields{TeamType: ptr("logistics")},
	})
	require.NoError(t, err)

	resolved, err := svc.User.GetUser(ctx, guest.ID)
	require.NoError(t, err)
	assert.IsType(t, &Guest{}, resolved)

	resolved, err = svc.User.GetUser(ctx, staff.ID)
	require.NoError(t, err)
	assert.IsType(t, &Staff{}, resolved)

	resolved, err = svc.User.GetUser(ctx, member.ID)
	require.NoError(t, err)
	require.IsType(t, &CommitteeMember{}, resolved)
	assert.Equal(t, "logistics", *resolved.(*CommitteeMember).TeamType)

	users, err := svc.User.ListUsers(ctx, DefaultPagination)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []models.UserType{models.UserTypeGuest, models.UserTypeStaff, models.UserTypeCommitteeMember},
		[]models.UserType{users[0].Type, users[1].Type, users[2].Type})

	_, err = svc.User.GetUser(ctx, 999)
	assert.EqualError(t, err, "User not found")
}

func TestEventAssociations(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	when := time.Date(2030, 5, 1, 18, 30, 0, 0, time.UTC)
	event, err := svc.Event.CreateEvent(ctx, EventCreate{
		Title:       "Gala",
		EventFields: EventFields{Time: &when, MinPermissionLevel: ptr(3)},
	})
	require.NoError(t, err)
	require.NotNil(t, event.Time)
	assert.True(t, when.Equal(*event.Time))

	guest, err := svc.Guest.CreateGuest(ctx, GuestCreate{Name: "Eve"})
	require.NoError(t, err)
	member, err := svc.Committee.CreateMember(ctx, CommitteeMemberCreate{
		Name:                  "Finn",
		CommitteeMemberFields: CommitteeMemberFields{PermissionLevel: ptr(1)},
	})
	require.NoError(t, err)

	_, err = svc.Event.AddGuest(ctx, event.ID, guest.ID)
	require.NoError(t, err)
	withGuest, err := svc.Event.AddGuest(ctx, event.ID, guest.ID)
	require.NoError(t, err)
	require.Len(t, withGuest.Guests, 1, "adding twice must not duplicate membership")
	assert.Equal(t, "Eve", withGuest.Guests[0].Name)

	// permission_level 低於 min_permission_level 仍可加入
	withManager, err := svc.Event.AddManager(ctx, event.ID, member.ID)
	require.NoError(t, err)
	require.Len(t, withManager.Managers, 1)
	assert.Equal(t, "Finn", withManager.Managers[0].Name)

	guestView, err := svc.Guest.GetGuest(ctx, guest.ID)
	require.NoError(t, err)
	require.Len(t, guestView.Events, 1)
	assert.Equal(t, "Gala", guestView.Events[0].Title)

	memberView, err := svc.Committee.GetMember(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, memberView.Events, 1)

	_, err = svc.Event.AddGuest(ctx, event.ID, 999)
	assert.EqualError(t, err, "Guest not found")
	_, err = svc.Event.AddManager(ctx, 999, member.ID)
	assert.EqualError(t, err, "Event not found")

	withoutGuest, err := svc.Event.RemoveGuest(ctx, event.ID, guest.ID)
	require.NoError(t, err)
	assert.Empty(t, withoutGuest.Guests)
	assert.Len(t, withoutGuest.Managers, 1)

	require.NoError(t, svc.Committee.DeleteMember(ctx, member.ID))
	reloaded, err := svc.Event.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Managers)
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	event, err := svc.Event.CreateEvent(ctx, EventCreate{
		Title:       "Workshop",
		EventFields: EventFields{Location: ptr("Hall A")},
	})
	require.NoError(t, err)

	updated, err := svc.Event.UpdateEvent(ctx, event.ID, EventUpdate{Title: ptr("Workshop II")})
	require.NoError(t, err)
	assert.Equal(t, "Workshop II", updated.Title)
	assert.Equal(t, "Hall A", *updated.Location)

	guest, err := svc.Guest.CreateGuest(ctx, GuestCreate{Name: "Gus"})
	require.NoError(t, err)
	_, err = svc.Event.AddGuest(ctx, event.ID, guest.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Event.DeleteEvent(ctx, event.ID))
	_, err = svc.Event.GetEvent(ctx, event.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	guestView, err := svc.Guest.GetGuest(ctx, guest.ID)
	require.NoError(t, err)
	assert.Empty(t, guestView.Events)

	_, err = svc.Event.UpdateEvent(ctx, event.ID, EventUpdate{Title: ptr("gone")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func guestNames(guests []*Guest) []string {
	names := make([]string, 0, len(guests))
	for _, g := range guests {
		names = append(names, g.Name)
	}
	return names
}
