package contract

type ReminderRequest struct {
	ContactID   int    `json:"contact_id" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1,max=500"`
	DueDate     string `json:"due_date" validate:"required,isodate"`
	Completed   bool   `json:"completed"`
}

type UpdateReminderRequest struct {
	Description *string `json:"description" validate:"omitempty,min=1,max=500"`
	DueDate     *string `json:"due_date" validate:"omitempty,isodate"`
	Completed   *bool   `json:"completed"`
}

type ReminderResponse struct {
	ID          int    `json:"id"`
	ContactID   int    `json:"contact_id"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
}
