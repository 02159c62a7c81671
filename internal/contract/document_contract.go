package contract

const MaxDocumentSizeBytes = 30 * 1024 * 1024

// The pipeline only takes word-processor uploads; everything else is
// rejected before any processing happens.
var ValidDocumentMimeTypes = []string{
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ExtractedContact is the best-effort draft scraped from a processed
// document. Nothing here is persisted; the caller decides whether to
// turn it into Contact and Note rows.
type ExtractedContact struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Email       string `json:"email,omitempty"`
	MeetingDate string `json:"meeting_date"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
}

type ProcessDocumentResponse struct {
	Text             string            `json:"text"`
	DocumentURL      string            `json:"document_url,omitempty"`
	ExtractedContact *ExtractedContact `json:"extracted_contact"`
}

type BatchDocumentResult struct {
	Filename string                   `json:"filename"`
	Error    string                   `json:"error,omitempty"`
	Result   *ProcessDocumentResponse `json:"result,omitempty"`
}

type BatchDocumentResponse struct {
	Processed int                    `json:"processed"`
	Failed    int                    `json:"failed"`
	Results   []*BatchDocumentResult `json:"results"`
}
