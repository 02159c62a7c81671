package service

import (
	"rolodex/internal/contract"
	"rolodex/internal/domain/entity"
	"rolodex/internal/utils/apierror"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactRequest() *contract.ContactRequest {
	return &contract.ContactRequest{
		Name:            "Jane Doe",
		Company:         "Acme",
		Role:            "Engineer",
		Email:           strptr("jane@acme.example"),
		LastContactDate: "2024-01-15",
	}
}

func TestCreateAndGetContact(t *testing.T) {
	svc := newContactService(t, newTestDB(t))

	created, apierr := svc.CreateContact(validContactRequest())
	require.Nil(t, apierr)
	require.NotZero(t, created.ID)

	fetched, apierr := svc.GetContactByID(created.ID)
	require.Nil(t, apierr)

	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Jane Doe", fetched.Name)
	assert.Equal(t, "Acme", fetched.Company)
	assert.Equal(t, "Engineer", fetched.Role)
	assert.Equal(t, "jane@acme.example", fetched.Email)
	assert.Equal(t, "2024-01-15T00:00:00Z", fetched.LastContactDate)
}

func TestCreateContactValidation(t *testing.T) {
	svc := newContactService(t, newTestDB(t))

	tests := []struct {
		name   string
		mutate func(req *contract.ContactRequest)
	}{
		{"missing name", func(r *contract.ContactRequest) { r.Name = "" }},
		{"missing company", func(r *contract.ContactRequest) { r.Company = "" }},
		{"missing role", func(r *contract.ContactRequest) { r.Role = "" }},
		{"invalid email", func(r *contract.ContactRequest) { r.Email = strptr("not-an-email") }},
		{"invalid url", func(r *contract.ContactRequest) { r.LinkedinURL = strptr("not a url") }},
		{"invalid date", func(r *contract.ContactRequest) { r.LastContactDate = "15/01/2024" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validContactRequest()
			tt.mutate(req)

			_, apierr := svc.CreateContact(req)
			require.NotNil(t, apierr)
			assert.Equal(t, 400, apierr.Code())
		})
	}
}

func TestUpdateContactPartial(t *testing.T) {
	svc := newContactService(t, newTestDB(t))

	created, apierr := svc.CreateContact(validContactRequest())
	require.Nil(t, apierr)

	updated, apierr := svc.UpdateContact(created.ID, &contract.UpdateContactRequest{
		Role: strptr("Staff Engineer"),
	})
	require.Nil(t, apierr)

	// Only the supplied field changes
	assert.Equal(t, "Staff Engineer", updated.Role)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Company, updated.Company)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.LastContactDate, updated.LastContactDate)
}

func TestUpdateContactNotFound(t *testing.T) {
	svc := newContactService(t, newTestDB(t))

	_, apierr := svc.UpdateContact(999, &contract.UpdateContactRequest{Name: strptr("Nobody")})
	require.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
}

func TestDeleteContactCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newContactService(t, db)

	created, apierr := svc.CreateContact(validContactRequest())
	require.Nil(t, apierr)

	require.NoError(t, db.Create(&entity.Note{ContactID: created.ID, Content: "met at conf", MeetingDate: 1}).Error)
	require.NoError(t, db.Create(&entity.Reminder{ContactID: created.ID, Description: "follow up", DueDate: 1}).Error)

	require.Nil(t, svc.DeleteContact(created.ID))

	_, apierr = svc.GetContactByID(created.ID)
	require.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())

	var notes, reminders int64
	db.Model(&entity.Note{}).Where("contact_id = ?", created.ID).Count(&notes)
	db.Model(&entity.Reminder{}).Where("contact_id = ?", created.ID).Count(&reminders)
	assert.Zero(t, notes)
	assert.Zero(t, reminders)
}

func TestSearchContacts(t *testing.T) {
	svc := newContactService(t, newTestDB(t))

	for _, name := range []string{"Jane Doe", "JANET SMITH", "Bob Brown"} {
		req := validContactRequest()
		req.Name = name
		_, apierr := svc.CreateContact(req)
		require.Nil(t, apierr)
	}

	found, apierr := svc.SearchContacts("jane")
	require.Nil(t, apierr)
	require.Len(t, found, 2)
}

func TestContactTiersInResponses(t *testing.T) {
	db := newTestDB(t)
	svc := newContactService(t, db)
	prefSvc := NewPreferenceService(svc.PrefRepo, newValidate(t))

	_, apierr := prefSvc.UpdatePreferences(&contract.UpdatePreferencesRequest{
		TargetCompanies: []string{"Acme"},
		TargetRoles:     []string{"Engineer"},
	})
	require.Nil(t, apierr)

	created, apierr := svc.CreateContact(validContactRequest())
	require.Nil(t, apierr)
	assert.Equal(t, string(entity.TierGold), created.Tier)

	silver := validContactRequest()
	silver.Role = "Sales"
	createdSilver, apierr := svc.CreateContact(silver)
	require.Nil(t, apierr)
	assert.Equal(t, string(entity.TierSilver), createdSilver.Tier)
}

func TestMergeContacts(t *testing.T) {
	db := newTestDB(t)
	svc := newContactService(t, db)

	var ids []int
	for _, name := range []string{"Jane Doe", "Jane D.", "J. Doe"} {
		req := validContactRequest()
		req.Name = name
		created, apierr := svc.CreateContact(req)
		require.Nil(t, apierr)
		ids = append(ids, created.ID)
	}

	for _, id := range ids[1:] {
		require.NoError(t, db.Create(&entity.Note{ContactID: id, Content: "x", MeetingDate: 1}).Error)
		require.NoError(t, db.Create(&entity.Reminder{ContactID: id, Description: "x", DueDate: 1}).Error)
	}

	primary, apierr := svc.MergeContacts(&contract.MergeContactsRequest{
		PrimaryID:    ids[0],
		DuplicateIDs: ids[1:],
	})
	require.Nil(t, apierr)
	assert.Equal(t, ids[0], primary.ID)

	// All children now point at the primary
	var notes, reminders int64
	db.Model(&entity.Note{}).Where("contact_id = ?", ids[0]).Count(&notes)
	db.Model(&entity.Reminder{}).Where("contact_id = ?", ids[0]).Count(&reminders)
	assert.EqualValues(t, 2, notes)
	assert.EqualValues(t, 2, reminders)

	// Duplicates are gone
	for _, id := range ids[1:] {
		_, apierr = svc.GetContactByID(id)
		require.NotNil(t, apierr)
		assert.Equal(t, 404, apierr.Code())
	}
}

// A merge that fails midway must leave the database untouched: no
// reassigned children, no deleted duplicates.
func TestMergeContactsRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	svc := newContactService(t, db)

	var ids []int
	for _, name := range []string{"Jane Doe", "Jane D."} {
		req := validContactRequest()
		req.Name = name
		created, apierr := svc.CreateContact(req)
		require.Nil(t, apierr)
		ids = append(ids, created.ID)
	}
	require.NoError(t, db.Create(&entity.Note{ContactID: ids[1], Content: "x", MeetingDate: 1}).Error)

	// Fails the reminder reassignment, after the notes were already moved
	require.NoError(t, db.Migrator().DropTable(&entity.Reminder{}))

	_, apierr := svc.MergeContacts(&contract.MergeContactsRequest{
		PrimaryID:    ids[0],
		DuplicateIDs: []int{ids[1]},
	})
	require.NotNil(t, apierr)
	assert.Equal(t, 500, apierr.Code())

	var reassigned int64
	db.Model(&entity.Note{}).Where("contact_id = ?", ids[0]).Count(&reassigned)
	assert.Zero(t, reassigned)

	dup, apierr := svc.GetContactByID(ids[1])
	require.Nil(t, apierr)
	assert.Equal(t, "Jane D.", dup.Name)
}

func TestMergeContactsRequiresDuplicates(t *testing.T) {
	svc := newContactService(t, newTestDB(t))

	created, apierr := svc.CreateContact(validContactRequest())
	require.Nil(t, apierr)

	_, apierr = svc.MergeContacts(&contract.MergeContactsRequest{
		PrimaryID: created.ID,
	})
	require.NotNil(t, apierr)
	assert.Equal(t, apierror.NoDuplicateIDsError, apierr)
}

func TestMergeContactsRejectsSelfMerge(t *testing.T) {
	svc := newContactService(t, newTestDB(t))

	created, apierr := svc.CreateContact(validContactRequest())
	require.Nil(t, apierr)

	_, apierr = svc.MergeContacts(&contract.MergeContactsRequest{
		PrimaryID:    created.ID,
		DuplicateIDs: []int{created.ID},
	})
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
}

func TestMergeContactsMissingDuplicate(t *testing.T) {
	svc := newContactService(t, newTestDB(t))

	created, apierr := svc.CreateContact(validContactRequest())
	require.Nil(t, apierr)

	_, apierr = svc.MergeContacts(&contract.MergeContactsRequest{
		PrimaryID:    created.ID,
		DuplicateIDs: []int{999},
	})
	require.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
}
