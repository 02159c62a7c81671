package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed request body")
	InternalServerError = NewSimple(500, "Internal server error")
	NotFoundError       = NewSimple(404, "Resource not found")

	DuplicateCompanyError = NewSimple(400, "A company with this name already exists")
	UnknownContactError   = NewSimple(400, "Referenced contact does not exist")
	NoDuplicateIDsError   = NewSimple(400, "At least one duplicate contact id is required")

	/*
	 * Used by the document ingestion pipeline
	 */
	MissingDocumentError   = NewSimple(400, "Missing 'document' file in form data")
	EmptyFileError         = NewSimple(400, "Uploaded file is empty")
	UnsupportedFileError   = NewSimple(400, "Only Word documents (.doc/.docx) are supported")
	EmptyDocumentTextError = NewSimple(400, "Could not extract any text from the document")
	FilenameFormatError    = NewSimple(400, "Filename must follow the pattern 'YYYYMMDD - Person Name.docx'")
	ExtractionFailedError  = NewSimple(400, "Failed to extract text from the document")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	structured := NewStructured(http.StatusBadRequest)
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			structured.Add(field, "This field is required")
		case "min":
			structured.Add(field, "Value is too short, min: "+fe.Param())
		case "max":
			structured.Add(field, "Value is too long, max: "+fe.Param())
		case "email":
			structured.Add(field, "Value must be a valid email address")
		case "url":
			structured.Add(field, "Value must be a valid URL")
		case "isodate":
			structured.Add(field, "Value must be an ISO date (2006-01-02 or RFC3339)")
		case "nodupes":
			structured.Add(field, "List cannot contain duplicate entries")

		default:
			structured.Add(field, "Invalid value provided")
		}
	}
	return structured
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewDocumentTooLargeError(maxBytes int) *APIError {
	return NewSimple(http.StatusBadRequest, "Document exceeds the maximum size of %d bytes", maxBytes)
}
