package repository

import (
	"errors"
	"rolodex/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *DefaultReminderRepository {
	return &DefaultReminderRepository{db: db}
}

func (r *DefaultReminderRepository) FindAll() ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	err := r.db.Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *DefaultReminderRepository) FindByID(id int) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := r.db.First(&reminder, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *DefaultReminderRepository) Save(reminder *entity.Reminder) error {
	return r.db.Save(reminder).Error
}

func (r *DefaultReminderRepository) Delete(reminder *entity.Reminder) error {
	return r.db.Delete(reminder).Error
}
