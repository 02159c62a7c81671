package handler

import (
	"net/http"
	"rolodex/internal/contract"
	"rolodex/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PreferenceService interface {
	GetPreferences() (*contract.PreferencesResponse, apierror.ErrorResponse)
	UpdatePreferences(req *contract.UpdatePreferencesRequest) (*contract.PreferencesResponse, apierror.ErrorResponse)
}

type DefaultPreferenceRoute struct {
	PreferenceService PreferenceService
}

func NewPreferenceDefault(preferenceService PreferenceService) *DefaultPreferenceRoute {
	return &DefaultPreferenceRoute{PreferenceService: preferenceService}
}

func (h *DefaultPreferenceRoute) GetPreferences(c echo.Context) error {
	prefs, apierr := h.PreferenceService.GetPreferences()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, prefs)
}

func (h *DefaultPreferenceRoute) UpdatePreferences(c echo.Context) error {
	var req contract.UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	prefs, apierr := h.PreferenceService.UpdatePreferences(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, prefs)
}
