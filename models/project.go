package models

import "gorm.io/datatypes"

// Link is an external reference rendered on a project card.
type Link struct {
	URL  string `json:"url"`
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// CollaboratorLink points at one of a collaborator's profiles.
type CollaboratorLink struct {
	Type string `json:"type"`
	URI  string `json:"uri"`
	Icon string `json:"icon"`
}

// Collaborator credits a person on a project.
type Collaborator struct {
	Name string             `json:"name"`
	URI  []CollaboratorLink `json:"uri"`
}

// Project represents a portfolio project. The tech, features and links
// columns hold JSON-encoded text rather than child tables, matching the
// schema the frontend already reads. Collaborators is nullable; most
// projects are solo.
type Project struct {
	ID            int64                              `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string                             `json:"title" gorm:"type:text;not null"`
	Description   string                             `json:"description" gorm:"type:text;not null"`
	Tech          datatypes.JSONSlice[string]        `json:"tech" gorm:"not null"`
	Features      datatypes.JSONSlice[string]        `json:"features" gorm:"not null"`
	Links         datatypes.JSONSlice[Link]          `json:"links" gorm:"not null"`
	Collaborators *datatypes.JSONSlice[Collaborator] `json:"collaborators,omitempty"`
}

func (Project) TableName() string { return "projects" }
