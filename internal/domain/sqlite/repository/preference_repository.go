package repository

import (
	"errors"
	"rolodex/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultPreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *DefaultPreferenceRepository {
	return &DefaultPreferenceRepository{db: db}
}

// Get returns the singleton preferences row, creating it with defaults
// the first time it is read.
func (r *DefaultPreferenceRepository) Get() (*entity.UserPreferences, error) {
	var prefs entity.UserPreferences
	err := r.db.First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs = entity.UserPreferences{
			TargetCompanies:    []string{},
			TargetRoles:        []string{},
			EmailNotifications: true,
		}
		if cerr := r.db.Create(&prefs).Error; cerr != nil {
			return nil, cerr
		}
		return &prefs, nil
	}

	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *DefaultPreferenceRepository) Save(prefs *entity.UserPreferences) error {
	return r.db.Save(prefs).Error
}
