package service

import (
	"rolodex/internal/domain/entity"
	"slices"
	"strings"
)

// TierFor classifies a contact against the configured target lists.
// GOLD needs both a company and a role match, SILVER a company match
// only. Company matching is exact; role matching is a case-insensitive
// substring check against any target role. The result is recomputed on
// demand and never stored.
func TierFor(contact *entity.Contact, prefs *entity.UserPreferences) entity.Tier {
	matchesCompany := slices.Contains(prefs.TargetCompanies, contact.Company)

	role := strings.ToLower(contact.Role)
	matchesRole := false
	for _, target := range prefs.TargetRoles {
		if strings.Contains(role, strings.ToLower(target)) {
			matchesRole = true
			break
		}
	}

	if matchesCompany && matchesRole {
		return entity.TierGold
	}
	if matchesCompany {
		return entity.TierSilver
	}
	return entity.TierStandard
}
