package contract

type NoteRequest struct {
	ContactID   int     `json:"contact_id" validate:"required,min=1"`
	Content     string  `json:"content" validate:"required,max=1000000"`
	MeetingDate string  `json:"meeting_date" validate:"required,isodate"`
	DocumentURL *string `json:"document_url" validate:"omitempty,url"`
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Summary     *string `json:"summary" validate:"omitempty,max=500"`
}

type UpdateNoteRequest struct {
	Content     *string `json:"content" validate:"omitempty,max=1000000"`
	MeetingDate *string `json:"meeting_date" validate:"omitempty,isodate"`
	DocumentURL *string `json:"document_url" validate:"omitempty,url"`
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Summary     *string `json:"summary" validate:"omitempty,max=500"`
}

type NoteResponse struct {
	ID          int    `json:"id"`
	ContactID   int    `json:"contact_id"`
	Content     string `json:"content"`
	MeetingDate string `json:"meeting_date"`
	DocumentURL string `json:"document_url,omitempty"`
	Title       string `json:"title,omitempty"`
	Summary     string `json:"summary,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// RegenerateSummariesResponse reports the outcome of the bulk
// re-summarization maintenance operation.
type RegenerateSummariesResponse struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}
