package service

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"rolodex/internal/contract"
	"rolodex/internal/infrastructure/aws/storage"
	"rolodex/internal/infrastructure/docparse"
	"rolodex/internal/utils/apierror"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// Fixed fallbacks for when the completion API is unreachable. The
// pipeline is best-effort: an AI failure degrades the draft, it never
// fails the request.
const (
	fallbackSummary = "Career Discussion"
	fallbackTitle   = "Career Discussion Notes"
)

type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
	GenerateTitle(ctx context.Context, text string) (string, error)
}

type DefaultDocumentService struct {
	Extractor TextExtractor
	AI        Summarizer
	S3        storage.S3Client // nil disables document archiving
}

func NewDocumentService(extractor TextExtractor, ai Summarizer, s3 storage.S3Client) *DefaultDocumentService {
	return &DefaultDocumentService{
		Extractor: extractor,
		AI:        ai,
		S3:        s3,
	}
}

// ProcessDocument runs the ingestion pipeline over one uploaded file:
// filename parse, text extraction, label scan, AI enrichment. Nothing
// is persisted; the caller decides what to do with the draft.
func (d *DefaultDocumentService) ProcessDocument(ctx context.Context, fileHeader *multipart.FileHeader) (*contract.ProcessDocumentResponse, apierror.ErrorResponse) {
	if apierr := checkDocumentFile(fileHeader); apierr != nil {
		return nil, apierr
	}

	parsed, ok := ParseDocumentFilename(fileHeader.Filename)
	if !ok {
		return nil, apierror.FilenameFormatError
	}

	data, apierr := readDocumentFile(fileHeader)
	if apierr != nil {
		return nil, apierr
	}

	text, err := d.Extractor.ExtractText(data)
	if err != nil {
		if errors.Is(err, docparse.ErrNoText) {
			return nil, apierror.EmptyDocumentTextError
		}
		log.Errorf("failed to extract text from %s: %v", fileHeader.Filename, err)
		return nil, apierror.ExtractionFailedError
	}

	fields := ScanContactFields(text)
	summary, title := d.enrich(ctx, text)

	resp := &contract.ProcessDocumentResponse{
		Text:        text,
		DocumentURL: d.archiveDocument(data, fileHeader.Filename),
		ExtractedContact: &contract.ExtractedContact{
			Name:        parsed.Name,
			Company:     fields.Company,
			Role:        fields.Role,
			Email:       fields.Email,
			MeetingDate: parsed.MeetingDate.Format("2006-01-02"),
			Title:       title,
			Summary:     summary,
		},
	}
	return resp, nil
}

// ProcessBatch runs the pipeline over each file sequentially. A failing
// file is reported in its slot and does not abort the rest.
func (d *DefaultDocumentService) ProcessBatch(ctx context.Context, fileHeaders []*multipart.FileHeader) (*contract.BatchDocumentResponse, apierror.ErrorResponse) {
	if len(fileHeaders) == 0 {
		return nil, apierror.MissingDocumentError
	}

	resp := &contract.BatchDocumentResponse{
		Results: make([]*contract.BatchDocumentResult, 0, len(fileHeaders)),
	}

	for _, fileHeader := range fileHeaders {
		result := &contract.BatchDocumentResult{Filename: fileHeader.Filename}

		processed, apierr := d.ProcessDocument(ctx, fileHeader)
		if apierr != nil {
			resp.Failed++
			result.Error = errorMessage(apierr)
		} else {
			resp.Processed++
			result.Result = processed
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

func (d *DefaultDocumentService) enrich(ctx context.Context, text string) (summary, title string) {
	var err error

	summary, err = d.AI.Summarize(ctx, text)
	if err != nil {
		log.Warnf("summarization failed, using fallback: %v", err)
		summary = fallbackSummary
	}

	title, err = d.AI.GenerateTitle(ctx, text)
	if err != nil {
		log.Warnf("title generation failed, using fallback: %v", err)
		title = fallbackTitle
	}
	return summary, title
}

// archiveDocument stores the raw upload so notes can link back to it.
// Archiving is optional and best-effort: no bucket or a failed upload
// just means no document URL on the draft.
func (d *DefaultDocumentService) archiveDocument(data []byte, originalName string) string {
	if d.S3 == nil {
		return ""
	}

	filename := uuid.NewString() + filepath.Ext(originalName)
	url, err := d.S3.UploadFile(data, filename)
	if err != nil {
		log.Errorf("failed to archive document %s: %v", originalName, err)
		return ""
	}
	return url
}

func checkDocumentFile(fileHeader *multipart.FileHeader) apierror.ErrorResponse {
	if fileHeader.Size == 0 {
		return apierror.EmptyFileError
	}

	if fileHeader.Size > contract.MaxDocumentSizeBytes {
		return apierror.NewDocumentTooLargeError(contract.MaxDocumentSizeBytes)
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	mimeType = strings.TrimSpace(mimeType)

	if !slices.Contains(contract.ValidDocumentMimeTypes, mimeType) {
		return apierror.UnsupportedFileError
	}
	return nil
}

func readDocumentFile(fileHeader *multipart.FileHeader) ([]byte, apierror.ErrorResponse) {
	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open file: %v", err)
		return nil, apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("failed to read file: %v", err)
		return nil, apierror.InternalServerError
	}
	return data, nil
}

func errorMessage(err apierror.ErrorResponse) string {
	if apiErr, ok := err.(*apierror.APIError); ok {
		return apiErr.Message
	}
	return "processing failed"
}
