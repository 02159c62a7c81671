package handler

import (
	"context"
	"mime/multipart"
	"net/http"
	"rolodex/internal/contract"
	"rolodex/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type DocumentService interface {
	ProcessDocument(ctx context.Context, fileHeader *multipart.FileHeader) (*contract.ProcessDocumentResponse, apierror.ErrorResponse)
	ProcessBatch(ctx context.Context, fileHeaders []*multipart.FileHeader) (*contract.BatchDocumentResponse, apierror.ErrorResponse)
}

type DefaultDocumentRoute struct {
	DocumentService DocumentService
}

func NewDocumentDefault(documentService DocumentService) *DefaultDocumentRoute {
	return &DefaultDocumentRoute{DocumentService: documentService}
}

func (h *DefaultDocumentRoute) ProcessDocument(c echo.Context) error {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MissingDocumentError)
	}

	resp, apierr := h.DocumentService.ProcessDocument(c.Request().Context(), fileHeader)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultDocumentRoute) ProcessBatch(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := h.DocumentService.ProcessBatch(c.Request().Context(), form.File["documents"])
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
