package service

import (
	"rolodex/internal/contract"
	"rolodex/internal/domain/entity"
	"rolodex/internal/utils"
	"rolodex/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ReminderRepository interface {
	FindAll() ([]*entity.Reminder, error)
	FindByID(id int) (*entity.Reminder, error)
	Save(reminder *entity.Reminder) error
	Delete(reminder *entity.Reminder) error
}

type DefaultReminderService struct {
	ReminderRepo ReminderRepository
	ContactRepo  ContactRepository
	Validate     *validator.Validate
}

func NewReminderService(
	reminderRepo ReminderRepository,
	contactRepo ContactRepository,
	validate *validator.Validate,
) *DefaultReminderService {
	return &DefaultReminderService{
		ReminderRepo: reminderRepo,
		ContactRepo:  contactRepo,
		Validate:     validate,
	}
}

func (s *DefaultReminderService) GetAllReminders() ([]*contract.ReminderResponse, apierror.ErrorResponse) {
	reminders, err := s.ReminderRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch reminders: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ReminderResponse, len(reminders))
	for i, reminder := range reminders {
		resp[i] = toReminderResponse(reminder)
	}
	return resp, nil
}

func (s *DefaultReminderService) CreateReminder(req *contract.ReminderRequest) (*contract.ReminderResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	contact, err := s.ContactRepo.FindByID(req.ContactID)
	if err != nil {
		log.Errorf("failed to fetch contact: %v", err)
		return nil, apierror.InternalServerError
	}

	if contact == nil {
		return nil, apierror.UnknownContactError
	}

	now := utils.NowUTC()
	reminder := &entity.Reminder{
		ContactID:   req.ContactID,
		Description: req.Description,
		DueDate:     parseDateField(req.DueDate),
		Completed:   req.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.ReminderRepo.Save(reminder); err != nil {
		log.Errorf("failed to save reminder: %v", err)
		return nil, apierror.InternalServerError
	}
	return toReminderResponse(reminder), nil
}

func (s *DefaultReminderService) UpdateReminder(id int, req *contract.UpdateReminderRequest) (*contract.ReminderResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	reminder, err := s.ReminderRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch reminder: %v", err)
		return nil, apierror.InternalServerError
	}

	if reminder == nil {
		return nil, apierror.NotFoundError
	}

	if req.Description != nil {
		reminder.Description = *req.Description
	}
	if req.DueDate != nil {
		reminder.DueDate = parseDateField(*req.DueDate)
	}
	if req.Completed != nil {
		reminder.Completed = *req.Completed
	}

	reminder.UpdatedAt = utils.NowUTC()
	if err = s.ReminderRepo.Save(reminder); err != nil {
		log.Errorf("failed to update reminder: %v", err)
		return nil, apierror.InternalServerError
	}
	return toReminderResponse(reminder), nil
}

func (s *DefaultReminderService) DeleteReminder(id int) apierror.ErrorResponse {
	reminder, err := s.ReminderRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch reminder: %v", err)
		return apierror.InternalServerError
	}

	if reminder == nil {
		return apierror.NotFoundError
	}

	if err = s.ReminderRepo.Delete(reminder); err != nil {
		log.Errorf("failed to delete reminder: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func toReminderResponse(reminder *entity.Reminder) *contract.ReminderResponse {
	return &contract.ReminderResponse{
		ID:          reminder.ID,
		ContactID:   reminder.ContactID,
		Description: reminder.Description,
		DueDate:     utils.FormatEpoch(reminder.DueDate),
		Completed:   reminder.Completed,
	}
}
