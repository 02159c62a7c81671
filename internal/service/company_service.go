package service

import (
	"errors"
	"rolodex/internal/contract"
	"rolodex/internal/domain/entity"
	"rolodex/internal/utils"
	"rolodex/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	FindAll() ([]*entity.Company, error)
	FindByName(name string) (*entity.Company, error)
	Save(company *entity.Company) error
}

type DefaultCompanyService struct {
	CompanyRepo CompanyRepository
	Validate    *validator.Validate
}

func NewCompanyService(companyRepo CompanyRepository, validate *validator.Validate) *DefaultCompanyService {
	return &DefaultCompanyService{
		CompanyRepo: companyRepo,
		Validate:    validate,
	}
}

func (s *DefaultCompanyService) GetAllCompanies() ([]*contract.CompanyResponse, apierror.ErrorResponse) {
	companies, err := s.CompanyRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch companies: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CompanyResponse, len(companies))
	for i, company := range companies {
		resp[i] = toCompanyResponse(company)
	}
	return resp, nil
}

func (s *DefaultCompanyService) CreateCompany(req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	existing, err := s.CompanyRepo.FindByName(req.Name)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}

	if existing != nil {
		return nil, apierror.DuplicateCompanyError
	}

	company := &entity.Company{
		Name:     req.Name,
		IsTarget: req.IsTarget,
	}

	if err = s.CompanyRepo.Save(company); err != nil {
		// The pre-check races with concurrent creates; the unique index
		// is the authoritative guard.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.DuplicateCompanyError
		}
		log.Errorf("failed to save company: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(company *entity.Company) *contract.CompanyResponse {
	return &contract.CompanyResponse{
		ID:       company.ID,
		Name:     company.Name,
		IsTarget: company.IsTarget,
	}
}
