package service

import (
	"rolodex/internal/contract"
	"rolodex/internal/domain/entity"
	"rolodex/internal/utils"
	"rolodex/internal/utils/apierror"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ContactRepository interface {
	FindAll() ([]*entity.Contact, error)
	FindByID(id int) (*entity.Contact, error)
	FindByNameContains(name string) ([]*entity.Contact, error)
	Save(contact *entity.Contact) error
	DeleteCascade(contact *entity.Contact) error
	Merge(primaryID int, duplicateIDs []int) error
}

type PreferenceRepository interface {
	Get() (*entity.UserPreferences, error)
	Save(prefs *entity.UserPreferences) error
}

type DefaultContactService struct {
	ContactRepo ContactRepository
	PrefRepo    PreferenceRepository
	Validate    *validator.Validate
}

func NewContactService(
	contactRepo ContactRepository,
	prefRepo PreferenceRepository,
	validate *validator.Validate,
) *DefaultContactService {
	return &DefaultContactService{
		ContactRepo: contactRepo,
		PrefRepo:    prefRepo,
		Validate:    validate,
	}
}

func (s *DefaultContactService) GetAllContacts() ([]*contract.ContactResponse, apierror.ErrorResponse) {
	contacts, err := s.ContactRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch contacts: %v", err)
		return nil, apierror.InternalServerError
	}
	return s.toContactResponses(contacts)
}

func (s *DefaultContactService) GetContactByID(id int) (*contract.ContactResponse, apierror.ErrorResponse) {
	contact, err := s.ContactRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch contact: %v", err)
		return nil, apierror.InternalServerError
	}

	if contact == nil {
		return nil, apierror.NotFoundError
	}
	return s.toSingleResponse(contact)
}

func (s *DefaultContactService) CreateContact(req *contract.ContactRequest) (*contract.ContactResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	contact := &entity.Contact{
		Name:            req.Name,
		Company:         req.Company,
		Role:            req.Role,
		LinkedinURL:     deref(req.LinkedinURL),
		Email:           deref(req.Email),
		Phone:           deref(req.Phone),
		Notes:           deref(req.Notes),
		LastContactDate: parseDateField(req.LastContactDate),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.NextContactDate != nil {
		contact.NextContactDate = parseDateField(*req.NextContactDate)
	}

	if err := s.ContactRepo.Save(contact); err != nil {
		log.Errorf("failed to save contact: %v", err)
		return nil, apierror.InternalServerError
	}
	return s.toSingleResponse(contact)
}

func (s *DefaultContactService) UpdateContact(id int, req *contract.UpdateContactRequest) (*contract.ContactResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	contact, err := s.ContactRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch contact: %v", err)
		return nil, apierror.InternalServerError
	}

	if contact == nil {
		return nil, apierror.NotFoundError
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Company != nil {
		contact.Company = *req.Company
	}
	if req.Role != nil {
		contact.Role = *req.Role
	}
	if req.LinkedinURL != nil {
		contact.LinkedinURL = *req.LinkedinURL
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Notes != nil {
		contact.Notes = *req.Notes
	}
	if req.LastContactDate != nil {
		contact.LastContactDate = parseDateField(*req.LastContactDate)
	}
	if req.NextContactDate != nil {
		contact.NextContactDate = parseDateField(*req.NextContactDate)
	}

	contact.UpdatedAt = utils.NowUTC()
	if err = s.ContactRepo.Save(contact); err != nil {
		log.Errorf("failed to update contact: %v", err)
		return nil, apierror.InternalServerError
	}
	return s.toSingleResponse(contact)
}

// DeleteContact removes the contact and cascades to its notes and
// reminders so no child rows are orphaned.
func (s *DefaultContactService) DeleteContact(id int) apierror.ErrorResponse {
	contact, err := s.ContactRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch contact: %v", err)
		return apierror.InternalServerError
	}

	if contact == nil {
		return apierror.NotFoundError
	}

	if err = s.ContactRepo.DeleteCascade(contact); err != nil {
		log.Errorf("failed to delete contact: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultContactService) SearchContacts(name string) ([]*contract.ContactResponse, apierror.ErrorResponse) {
	contacts, err := s.ContactRepo.FindByNameContains(name)
	if err != nil {
		log.Errorf("failed to search contacts: %v", err)
		return nil, apierror.InternalServerError
	}
	return s.toContactResponses(contacts)
}

// FindDuplicates returns every contact whose name contains the given
// fragment, case-insensitively. Deliberately loose: the list is meant
// for human review before a merge, not automatic matching.
func (s *DefaultContactService) FindDuplicates(name string) ([]*contract.ContactResponse, apierror.ErrorResponse) {
	return s.SearchContacts(name)
}

func (s *DefaultContactService) MergeContacts(req *contract.MergeContactsRequest) (*contract.ContactResponse, apierror.ErrorResponse) {
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if len(req.DuplicateIDs) == 0 {
		return nil, apierror.NoDuplicateIDsError
	}

	if slices.Contains(req.DuplicateIDs, req.PrimaryID) {
		return nil, apierror.NewSimple(400, "Primary contact cannot be listed as its own duplicate")
	}

	primary, err := s.ContactRepo.FindByID(req.PrimaryID)
	if err != nil {
		log.Errorf("failed to fetch primary contact: %v", err)
		return nil, apierror.InternalServerError
	}

	if primary == nil {
		return nil, apierror.NotFoundError
	}

	for _, dupId := range req.DuplicateIDs {
		dup, derr := s.ContactRepo.FindByID(dupId)
		if derr != nil {
			log.Errorf("failed to fetch duplicate contact: %v", derr)
			return nil, apierror.InternalServerError
		}
		if dup == nil {
			return nil, apierror.NewSimple(404, "Duplicate contact %d does not exist", dupId)
		}
	}

	if err = s.ContactRepo.Merge(primary.ID, req.DuplicateIDs); err != nil {
		log.Errorf("failed to merge contacts into %d: %v", primary.ID, err)
		return nil, apierror.InternalServerError
	}
	return s.toSingleResponse(primary)
}

func (s *DefaultContactService) toSingleResponse(contact *entity.Contact) (*contract.ContactResponse, apierror.ErrorResponse) {
	prefs, err := s.PrefRepo.Get()
	if err != nil {
		log.Errorf("failed to fetch preferences: %v", err)
		return nil, apierror.InternalServerError
	}
	return toContactResponse(contact, prefs), nil
}

func (s *DefaultContactService) toContactResponses(contacts []*entity.Contact) ([]*contract.ContactResponse, apierror.ErrorResponse) {
	prefs, err := s.PrefRepo.Get()
	if err != nil {
		log.Errorf("failed to fetch preferences: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ContactResponse, len(contacts))
	for i, contact := range contacts {
		resp[i] = toContactResponse(contact, prefs)
	}
	return resp, nil
}

func toContactResponse(contact *entity.Contact, prefs *entity.UserPreferences) *contract.ContactResponse {
	var nextContact string
	if contact.NextContactDate > 0 {
		nextContact = utils.FormatEpoch(contact.NextContactDate)
	}

	return &contract.ContactResponse{
		ID:              contact.ID,
		Name:            contact.Name,
		Company:         contact.Company,
		Role:            contact.Role,
		LinkedinURL:     contact.LinkedinURL,
		Email:           contact.Email,
		Phone:           contact.Phone,
		Notes:           contact.Notes,
		LastContactDate: utils.FormatEpoch(contact.LastContactDate),
		NextContactDate: nextContact,
		Tier:            string(TierFor(contact, prefs)),
		CreatedAt:       utils.FormatEpoch(contact.CreatedAt),
		UpdatedAt:       utils.FormatEpoch(contact.UpdatedAt),
	}
}

// parseDateField assumes the value already passed the `isodate`
// validator; anything unparsable at this point is a programming error.
func parseDateField(value string) int64 {
	millis, _ := utils.ParseDate(value)
	return millis
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
