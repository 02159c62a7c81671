package repository

import (
	"errors"
	"rolodex/internal/domain/entity"
	"strings"

	"gorm.io/gorm"
)

type DefaultContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *DefaultContactRepository {
	return &DefaultContactRepository{db: db}
}

func (d *DefaultContactRepository) FindAll() ([]*entity.Contact, error) {
	var contacts []*entity.Contact
	err := d.db.Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (d *DefaultContactRepository) FindByID(id int) (*entity.Contact, error) {
	var contact entity.Contact
	err := d.db.First(&contact, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// FindByNameContains performs a case-insensitive substring match on the
// contact name. It backs both the search endpoint and duplicate discovery,
// which is deliberately loose: candidates are reviewed by a human before
// any merge.
func (d *DefaultContactRepository) FindByNameContains(name string) ([]*entity.Contact, error) {
	var contacts []*entity.Contact
	pattern := "%" + strings.ToLower(name) + "%"
	err := d.db.Where("lower(name) LIKE ?", pattern).Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (d *DefaultContactRepository) Save(contact *entity.Contact) error {
	return d.db.Save(contact).Error
}

// DeleteCascade removes the contact together with its notes and reminders
// in a single transaction, so no child rows are left referencing a dead
// contact id.
func (d *DefaultContactRepository) DeleteCascade(contact *entity.Contact) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", contact.ID).Delete(&entity.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contact_id = ?", contact.ID).Delete(&entity.Reminder{}).Error; err != nil {
			return err
		}
		return tx.Delete(contact).Error
	})
}

// Merge reassigns every note and reminder belonging to the duplicate
// contacts onto the primary, then deletes the duplicate rows. The whole
// operation runs in one transaction: either every reassignment and
// deletion lands, or none do.
func (d *DefaultContactRepository) Merge(primaryID int, duplicateIDs []int) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entity.Note{}).
			Where("contact_id IN ?", duplicateIDs).
			Update("contact_id", primaryID).Error
		if err != nil {
			return err
		}

		err = tx.Model(&entity.Reminder{}).
			Where("contact_id IN ?", duplicateIDs).
			Update("contact_id", primaryID).Error
		if err != nil {
			return err
		}

		return tx.Delete(&entity.Contact{}, duplicateIDs).Error
	})
}
