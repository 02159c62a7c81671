package service

import (
	"rolodex/internal/contract"
	"rolodex/internal/domain/sqlite/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNoteService(t *testing.T, db *gorm.DB) *DefaultNoteService {
	t.Helper()
	return NewNoteService(
		repository.NewNoteRepository(db),
		repository.NewContactRepository(db),
		newValidate(t),
	)
}

func TestCreateNote(t *testing.T) {
	db := newTestDB(t)
	contactSvc := newContactService(t, db)
	noteSvc := newNoteService(t, db)

	contact, apierr := contactSvc.CreateContact(validContactRequest())
	require.Nil(t, apierr)

	note, apierr := noteSvc.CreateNote(&contract.NoteRequest{
		ContactID:   contact.ID,
		Content:     "Talked about the roadmap",
		MeetingDate: "2024-01-15",
		Title:       strptr("Roadmap Sync"),
	})
	require.Nil(t, apierr)

	assert.NotZero(t, note.ID)
	assert.Equal(t, contact.ID, note.ContactID)
	assert.Equal(t, "Roadmap Sync", note.Title)

	notes, apierr := noteSvc.GetNotesByContact(contact.ID)
	require.Nil(t, apierr)
	require.Len(t, notes, 1)
	assert.Equal(t, note.ID, notes[0].ID)
}

// The schema has no foreign key for the contact reference, so the
// service enforces it.
func TestCreateNoteUnknownContact(t *testing.T) {
	noteSvc := newNoteService(t, newTestDB(t))

	_, apierr := noteSvc.CreateNote(&contract.NoteRequest{
		ContactID:   999,
		Content:     "orphan note",
		MeetingDate: "2024-01-15",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
}

func TestUpdateNotePartial(t *testing.T) {
	db := newTestDB(t)
	contactSvc := newContactService(t, db)
	noteSvc := newNoteService(t, db)

	contact, apierr := contactSvc.CreateContact(validContactRequest())
	require.Nil(t, apierr)

	note, apierr := noteSvc.CreateNote(&contract.NoteRequest{
		ContactID:   contact.ID,
		Content:     "original content",
		MeetingDate: "2024-01-15",
	})
	require.Nil(t, apierr)

	updated, apierr := noteSvc.UpdateNote(note.ID, &contract.UpdateNoteRequest{
		Summary: strptr("Quick catch-up"),
	})
	require.Nil(t, apierr)

	assert.Equal(t, "Quick catch-up", updated.Summary)
	assert.Equal(t, "original content", updated.Content)
	assert.Equal(t, note.MeetingDate, updated.MeetingDate)
}

func TestUpdateNoteNotFound(t *testing.T) {
	noteSvc := newNoteService(t, newTestDB(t))

	_, apierr := noteSvc.UpdateNote(999, &contract.UpdateNoteRequest{Summary: strptr("x")})
	require.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
}
