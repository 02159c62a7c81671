package service

import (
	"rolodex/internal/contract"
	"rolodex/internal/domain/entity"
	"rolodex/internal/utils"
	"rolodex/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type NoteRepository interface {
	FindAll() ([]*entity.Note, error)
	FindByContactID(contactId int) ([]*entity.Note, error)
	FindByID(id int) (*entity.Note, error)
	Save(note *entity.Note) error
}

type DefaultNoteService struct {
	NoteRepo    NoteRepository
	ContactRepo ContactRepository
	Validate    *validator.Validate
}

func NewNoteService(
	noteRepo NoteRepository,
	contactRepo ContactRepository,
	validate *validator.Validate,
) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo:    noteRepo,
		ContactRepo: contactRepo,
		Validate:    validate,
	}
}

func (n *DefaultNoteService) GetNotesByContact(contactId int) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindByContactID(contactId)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp, nil
}

func (n *DefaultNoteService) CreateNote(req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	// The schema carries no foreign key for this reference, so the
	// integrity check lives here.
	contact, err := n.ContactRepo.FindByID(req.ContactID)
	if err != nil {
		log.Errorf("failed to fetch contact: %v", err)
		return nil, apierror.InternalServerError
	}

	if contact == nil {
		return nil, apierror.UnknownContactError
	}

	now := utils.NowUTC()
	note := &entity.Note{
		ContactID:   req.ContactID,
		Content:     req.Content,
		MeetingDate: parseDateField(req.MeetingDate),
		DocumentURL: deref(req.DocumentURL),
		Title:       deref(req.Title),
		Summary:     deref(req.Summary),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) UpdateNote(noteId int, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	note, err := n.NoteRepo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.MeetingDate != nil {
		note.MeetingDate = parseDateField(*req.MeetingDate)
	}
	if req.DocumentURL != nil {
		note.DocumentURL = *req.DocumentURL
	}
	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Summary != nil {
		note.Summary = *req.Summary
	}

	note.UpdatedAt = utils.NowUTC()
	if err = n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to update note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:          note.ID,
		ContactID:   note.ContactID,
		Content:     note.Content,
		MeetingDate: utils.FormatEpoch(note.MeetingDate),
		DocumentURL: note.DocumentURL,
		Title:       note.Title,
		Summary:     note.Summary,
		CreatedAt:   utils.FormatEpoch(note.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(note.UpdatedAt),
	}
}
