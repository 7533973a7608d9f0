package models

import "time"

// ContactEntry is one submission of the public contact form. Entries are
// append-only; the API never updates or deletes them. The list endpoint
// returns only the name/email/message triple, so the row identity and
// timestamp stay out of the JSON shape.
type ContactEntry struct {
	ID        int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;not null"`
	Message   string    `json:"message" gorm:"type:text"`
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}

func (ContactEntry) TableName() string { return "contact_form" }
