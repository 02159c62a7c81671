package handler

import (
	"net/http"
	"rolodex/internal/contract"
	"rolodex/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CompanyService interface {
	GetAllCompanies() ([]*contract.CompanyResponse, apierror.ErrorResponse)
	CreateCompany(req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse)
}

type DefaultCompanyRoute struct {
	CompanyService CompanyService
}

func NewCompanyDefault(companyService CompanyService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{CompanyService: companyService}
}

func (h *DefaultCompanyRoute) GetCompanies(c echo.Context) error {
	companies, apierr := h.CompanyService.GetAllCompanies()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, companies)
}

func (h *DefaultCompanyRoute) CreateCompany(c echo.Context) error {
	var req contract.CompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	company, apierr := h.CompanyService.CreateCompany(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, company)
}
