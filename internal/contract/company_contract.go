package contract

type CompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=120"`
	IsTarget bool   `json:"is_target"`
}

type CompanyResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsTarget bool   `json:"is_target"`
}
