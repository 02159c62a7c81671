package service

import (
	"rolodex/internal/contract"
	"rolodex/internal/domain/entity"
	"rolodex/internal/utils"
	"rolodex/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type DefaultPreferenceService struct {
	PrefRepo PreferenceRepository
	Validate *validator.Validate
}

func NewPreferenceService(prefRepo PreferenceRepository, validate *validator.Validate) *DefaultPreferenceService {
	return &DefaultPreferenceService{
		PrefRepo: prefRepo,
		Validate: validate,
	}
}

func (s *DefaultPreferenceService) GetPreferences() (*contract.PreferencesResponse, apierror.ErrorResponse) {
	prefs, err := s.PrefRepo.Get()
	if err != nil {
		log.Errorf("failed to fetch preferences: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPreferencesResponse(prefs), nil
}

func (s *DefaultPreferenceService) UpdatePreferences(req *contract.UpdatePreferencesRequest) (*contract.PreferencesResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	prefs, err := s.PrefRepo.Get()
	if err != nil {
		log.Errorf("failed to fetch preferences: %v", err)
		return nil, apierror.InternalServerError
	}

	if req.TargetCompanies != nil {
		prefs.TargetCompanies = req.TargetCompanies
	}
	if req.TargetRoles != nil {
		prefs.TargetRoles = req.TargetRoles
	}
	if req.EmailNotifications != nil {
		prefs.EmailNotifications = *req.EmailNotifications
	}

	if err = s.PrefRepo.Save(prefs); err != nil {
		log.Errorf("failed to save preferences: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPreferencesResponse(prefs), nil
}

func toPreferencesResponse(prefs *entity.UserPreferences) *contract.PreferencesResponse {
	companies := prefs.TargetCompanies
	if companies == nil {
		companies = []string{}
	}

	roles := prefs.TargetRoles
	if roles == nil {
		roles = []string{}
	}

	return &contract.PreferencesResponse{
		TargetCompanies:    companies,
		TargetRoles:        roles,
		EmailNotifications: prefs.EmailNotifications,
	}
}
