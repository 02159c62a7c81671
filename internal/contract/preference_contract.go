package contract

// UpdatePreferencesRequest is a partial update: nil slices and pointers
// leave the stored value untouched.
type UpdatePreferencesRequest struct {
	TargetCompanies    []string `json:"target_companies" validate:"omitempty,max=100,nodupes,dive,required,max=120"`
	TargetRoles        []string `json:"target_roles" validate:"omitempty,max=100,nodupes,dive,required,max=120"`
	EmailNotifications *bool    `json:"email_notifications"`
}

type PreferencesResponse struct {
	TargetCompanies    []string `json:"target_companies"`
	TargetRoles        []string `json:"target_roles"`
	EmailNotifications bool     `json:"email_notifications"`
}
