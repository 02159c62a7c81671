package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"rolodex/internal/infrastructure/docparse"
	"rolodex/internal/utils/apierror"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docxMime = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func makeFileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="document"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)

	files := form.File["document"]
	require.Len(t, files, 1)
	return files[0]
}

func TestProcessDocument(t *testing.T) {
	extractor := &mockExtractor{Text: "Company: Acme\nRole: Engineer\nEmail: jane@acme.example\ngreat chat"}
	svc := NewDocumentService(extractor, &mockAI{}, nil)

	fh := makeFileHeader(t, "20240115 - jane doe.docx", docxMime, []byte("binary"))
	resp, apierr := svc.ProcessDocument(context.Background(), fh)
	require.Nil(t, apierr)

	assert.Equal(t, extractor.Text, resp.Text)
	assert.Empty(t, resp.DocumentURL)

	contact := resp.ExtractedContact
	require.NotNil(t, contact)
	assert.Equal(t, "Jane Doe", contact.Name)
	assert.Equal(t, "2024-01-15", contact.MeetingDate)
	assert.Equal(t, "Acme", contact.Company)
	assert.Equal(t, "Engineer", contact.Role)
	assert.Equal(t, "jane@acme.example", contact.Email)
	assert.Equal(t, "Mock Summary", contact.Summary)
	assert.Equal(t, "Mock Title", contact.Title)
}

func TestProcessDocumentRejections(t *testing.T) {
	svc := NewDocumentService(&mockExtractor{Text: "some text"}, &mockAI{}, nil)

	tests := []struct {
		name     string
		filename string
		mime     string
		data     []byte
	}{
		{"unsupported mime type", "20240115 - Jane Doe.pdf", "application/pdf", []byte("x")},
		{"empty file", "20240115 - Jane Doe.docx", docxMime, nil},
		{"filename without date", "notes.docx", docxMime, []byte("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fh := makeFileHeader(t, tt.filename, tt.mime, tt.data)

			_, apierr := svc.ProcessDocument(context.Background(), fh)
			require.NotNil(t, apierr)
			assert.Equal(t, 400, apierr.Code())
		})
	}
}

func TestProcessDocumentExtractionFailure(t *testing.T) {
	svc := NewDocumentService(&mockExtractor{Err: errors.New("corrupt archive")}, &mockAI{}, nil)

	fh := makeFileHeader(t, "20240115 - Jane Doe.docx", docxMime, []byte("x"))
	_, apierr := svc.ProcessDocument(context.Background(), fh)
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
}

func TestProcessDocumentNoText(t *testing.T) {
	svc := NewDocumentService(&mockExtractor{Err: docparse.ErrNoText}, &mockAI{}, nil)

	fh := makeFileHeader(t, "20240115 - Jane Doe.docx", docxMime, []byte("x"))
	_, apierr := svc.ProcessDocument(context.Background(), fh)
	require.NotNil(t, apierr)
	assert.Equal(t, apierror.EmptyDocumentTextError, apierr)
}

// An unreachable completion API degrades the draft, it never fails the
// request.
func TestProcessDocumentAIFallbacks(t *testing.T) {
	ai := &mockAI{
		SummarizeFn: func(context.Context, string) (string, error) {
			return "", errors.New("api down")
		},
		TitleFn: func(context.Context, string) (string, error) {
			return "", errors.New("api down")
		},
	}
	svc := NewDocumentService(&mockExtractor{Text: "notes"}, ai, nil)

	fh := makeFileHeader(t, "20240115 - Jane Doe.docx", docxMime, []byte("x"))
	resp, apierr := svc.ProcessDocument(context.Background(), fh)
	require.Nil(t, apierr)

	assert.Equal(t, fallbackSummary, resp.ExtractedContact.Summary)
	assert.Equal(t, fallbackTitle, resp.ExtractedContact.Title)
}

func TestProcessBatchIsolatesFailures(t *testing.T) {
	svc := NewDocumentService(&mockExtractor{Text: "notes"}, &mockAI{}, nil)

	good := makeFileHeader(t, "20240115 - Jane Doe.docx", docxMime, []byte("x"))
	bad := makeFileHeader(t, "notes.docx", docxMime, []byte("x"))

	resp, apierr := svc.ProcessBatch(context.Background(), []*multipart.FileHeader{good, bad})
	require.Nil(t, apierr)

	assert.Equal(t, 1, resp.Processed)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 2)
	assert.NotNil(t, resp.Results[0].Result)
	assert.NotEmpty(t, resp.Results[1].Error)
}

func TestProcessBatchEmpty(t *testing.T) {
	svc := NewDocumentService(&mockExtractor{Text: "notes"}, &mockAI{}, nil)

	_, apierr := svc.ProcessBatch(context.Background(), nil)
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
}
