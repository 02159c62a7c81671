package handler

import (
	"net/http"
	"rolodex/internal/contract"
	"rolodex/internal/utils/apierror"
	"strconv"

	"github.com/labstack/echo/v4"
)

type ContactService interface {
	GetAllContacts() ([]*contract.ContactResponse, apierror.ErrorResponse)
	GetContactByID(id int) (*contract.ContactResponse, apierror.ErrorResponse)
	CreateContact(req *contract.ContactRequest) (*contract.ContactResponse, apierror.ErrorResponse)
	UpdateContact(id int, req *contract.UpdateContactRequest) (*contract.ContactResponse, apierror.ErrorResponse)
	DeleteContact(id int) apierror.ErrorResponse
	SearchContacts(name string) ([]*contract.ContactResponse, apierror.ErrorResponse)
	FindDuplicates(name string) ([]*contract.ContactResponse, apierror.ErrorResponse)
	MergeContacts(req *contract.MergeContactsRequest) (*contract.ContactResponse, apierror.ErrorResponse)
}

type DefaultContactRoute struct {
	ContactService ContactService
}

func NewContactDefault(contactService ContactService) *DefaultContactRoute {
	return &DefaultContactRoute{ContactService: contactService}
}

func (h *DefaultContactRoute) GetContacts(c echo.Context) error {
	contacts, err := h.ContactService.GetAllContacts()
	if err != nil {
		return c.JSON(err.Code(), err)
	}
	return c.JSON(http.StatusOK, contacts)
}

func (h *DefaultContactRoute) GetContact(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	contact, apierr := h.ContactService.GetContactByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, contact)
}

func (h *DefaultContactRoute) CreateContact(c echo.Context) error {
	var req contract.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	contact, apierr := h.ContactService.CreateContact(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, contact)
}

func (h *DefaultContactRoute) UpdateContact(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateContactRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	contact, apierr := h.ContactService.UpdateContact(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, contact)
}

func (h *DefaultContactRoute) DeleteContact(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := h.ContactService.DeleteContact(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DefaultContactRoute) SearchContacts(c echo.Context) error {
	contacts, apierr := h.ContactService.SearchContacts(c.QueryParam("name"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, contacts)
}

func (h *DefaultContactRoute) FindDuplicates(c echo.Context) error {
	contacts, apierr := h.ContactService.FindDuplicates(c.Param("name"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, contacts)
}

func (h *DefaultContactRoute) MergeContacts(c echo.Context) error {
	var req contract.MergeContactsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	contact, apierr := h.ContactService.MergeContacts(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, contact)
}
