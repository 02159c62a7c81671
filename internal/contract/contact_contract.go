package contract

type ContactRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=120"`
	Company         string  `json:"company" validate:"required,min=1,max=120"`
	Role            string  `json:"role" validate:"required,min=1,max=120"`
	LinkedinURL     *string `json:"linkedin_url" validate:"omitempty,url"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone" validate:"omitempty,max=40"`
	Notes           *string `json:"notes" validate:"omitempty,max=10000"`
	LastContactDate string  `json:"last_contact_date" validate:"required,isodate"`
	NextContactDate *string `json:"next_contact_date" validate:"omitempty,isodate"`
}

type UpdateContactRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=120"`
	Company         *string `json:"company" validate:"omitempty,min=1,max=120"`
	Role            *string `json:"role" validate:"omitempty,min=1,max=120"`
	LinkedinURL     *string `json:"linkedin_url" validate:"omitempty,url"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone" validate:"omitempty,max=40"`
	Notes           *string `json:"notes" validate:"omitempty,max=10000"`
	LastContactDate *string `json:"last_contact_date" validate:"omitempty,isodate"`
	NextContactDate *string `json:"next_contact_date" validate:"omitempty,isodate"`
}

type MergeContactsRequest struct {
	PrimaryID    int   `json:"primary_id" validate:"required,min=1"`
	DuplicateIDs []int `json:"duplicate_ids" validate:"nodupes,dive,min=1"`
}

type ContactResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Company         string `json:"company"`
	Role            string `json:"role"`
	LinkedinURL     string `json:"linkedin_url,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Notes           string `json:"notes,omitempty"`
	LastContactDate string `json:"last_contact_date"`
	NextContactDate string `json:"next_contact_date,omitempty"`
	Tier            string `json:"tier"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}
