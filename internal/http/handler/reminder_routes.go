package handler

import (
	"net/http"
	"rolodex/internal/contract"
	"rolodex/internal/utils/apierror"
	"strconv"

	"github.com/labstack/echo/v4"
)

type ReminderService interface {
	GetAllReminders() ([]*contract.ReminderResponse, apierror.ErrorResponse)
	CreateReminder(req *contract.ReminderRequest) (*contract.ReminderResponse, apierror.ErrorResponse)
	UpdateReminder(id int, req *contract.UpdateReminderRequest) (*contract.ReminderResponse, apierror.ErrorResponse)
	DeleteReminder(id int) apierror.ErrorResponse
}

type DefaultReminderRoute struct {
	ReminderService ReminderService
}

func NewReminderDefault(reminderService ReminderService) *DefaultReminderRoute {
	return &DefaultReminderRoute{ReminderService: reminderService}
}

func (h *DefaultReminderRoute) GetReminders(c echo.Context) error {
	reminders, apierr := h.ReminderService.GetAllReminders()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, reminders)
}

func (h *DefaultReminderRoute) CreateReminder(c echo.Context) error {
	var req contract.ReminderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	reminder, apierr := h.ReminderService.CreateReminder(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, reminder)
}

func (h *DefaultReminderRoute) UpdateReminder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateReminderRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	reminder, apierr := h.ReminderService.UpdateReminder(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, reminder)
}

func (h *DefaultReminderRoute) DeleteReminder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := h.ReminderService.DeleteReminder(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
