package handler

import (
	"context"
	"net/http"
	"rolodex/internal/contract"
	"rolodex/internal/utils/apierror"
	"strconv"

	"github.com/labstack/echo/v4"
)

type NoteService interface {
	GetNotesByContact(contactId int) ([]*contract.NoteResponse, apierror.ErrorResponse)
	CreateNote(req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	UpdateNote(noteId int, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
}

type SummaryRegenerator interface {
	Run(ctx context.Context) (processed, failed int, err error)
}

type DefaultNoteRoute struct {
	NoteService NoteService
	Regenerator SummaryRegenerator
}

func NewNoteDefault(noteService NoteService, regenerator SummaryRegenerator) *DefaultNoteRoute {
	return &DefaultNoteRoute{
		NoteService: noteService,
		Regenerator: regenerator,
	}
}

func (n *DefaultNoteRoute) GetContactNotes(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	notes, apierr := n.NoteService.GetNotesByContact(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	var req contract.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.CreateNote(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, note)
}

func (n *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateNoteRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.UpdateNote(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

// RegenerateSummaries runs the bulk re-summarization sweep inline and
// reports the aggregate counts once it finishes.
func (n *DefaultNoteRoute) RegenerateSummaries(c echo.Context) error {
	processed, failed, err := n.Regenerator.Run(c.Request().Context())
	if err != nil {
		return c.JSON(apierror.InternalServerError.Code(), apierror.InternalServerError)
	}

	resp := contract.RegenerateSummariesResponse{
		Processed: processed,
		Failed:    failed,
	}
	return c.JSON(http.StatusOK, &resp)
}
