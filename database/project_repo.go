package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kichu12348/kichu-space-backend/models"
)

type projectRepo struct {
	db *gorm.DB
}

func newProjectRepo(db *gorm.DB) *projectRepo {
	return &projectRepo{db}
}

// FindAll returns all projects in insertion order.
func (r *projectRepo) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("id").Find(&projects).Error
	return projects, err
}

// FindByID returns the project with the given id, or (nil, nil) when no row
// matches.
func (r *projectRepo) FindByID(id int64) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project and fills in its assigned id.
func (r *projectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update replaces every column of the row matching project.ID and reports
// how many rows were touched. Zero rows is not an error; the caller decides
// whether that is a 404.
func (r *projectRepo) Update(project *models.Project) (int64, error) {
	result := r.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Select("title", "description", "tech", "features", "links", "collaborators").
		Updates(project)
	return result.RowsAffected, result.Error
}

// Delete removes the row matching id and reports how many rows were removed.
func (r *projectRepo) Delete(id int64) (int64, error) {
	result := r.db.Delete(&models.Project{}, id)
	return result.RowsAffected, result.Error
}
