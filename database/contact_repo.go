package database

import (
	"gorm.io/gorm"

	"github.com/kichu12348/kichu-space-backend/models"
)

type contactRepo struct {
	db *gorm.DB
}

func newContactRepo(db *gorm.DB) *contactRepo {
	return &contactRepo{db}
}

// Add appends a contact form entry.
func (r *contactRepo) Add(entry *models.ContactEntry) error {
	return r.db.Create(entry).Error
}

// FindAll returns every entry in insertion order.
func (r *contactRepo) FindAll() ([]models.ContactEntry, error) {
	var entries []models.ContactEntry
	err := r.db.Order("id").Find(&entries).Error
	return entries, err
}
