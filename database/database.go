package database

import (
	"gorm.io/gorm"

	"github.com/kichu12348/kichu-space-backend/models"
)

// Database is the single point of access to the datastore. There are two
// implementations, selected once at startup: the gorm-backed live store and
// a null store for running the API without a database attached.
type Database interface {
	ProjectRepo() ProjectRepo
	ContactRepo() ContactRepo
	TokenRepo() TokenRepo

	// Init creates the schema if it does not exist. It reports true on the
	// first creation and false when the tables were already there; safe to
	// call on every deployment.
	Init() (bool, error)

	// Seed inserts the initial portfolio projects when the projects table is
	// empty. Reports whether anything was inserted.
	Seed() (bool, error)

	// Offline reports whether this is the null store.
	Offline() bool
}

// ProjectRepo owns the projects table. Absent rows are returned as
// (nil, nil), never as an error; Update and Delete report rows affected so
// callers can distinguish a miss from a failure.
type ProjectRepo interface {
	FindAll() ([]models.Project, error)
	FindByID(id int64) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) (int64, error)
	Delete(id int64) (int64, error)
}

// ContactRepo owns the contact_form table. Append-only: entries are never
// updated or removed.
type ContactRepo interface {
	Add(entry *models.ContactEntry) error
	FindAll() ([]models.ContactEntry, error)
}

// TokenRepo owns the user_tokens table.
type TokenRepo interface {
	// Mint generates, stores and returns a fresh token.
	Mint() (string, error)

	// Check reports whether token exists in the store. An empty token is
	// false, not an error.
	Check(token string) (bool, error)
}

type gormDatabase struct {
	db          *gorm.DB
	projectRepo *projectRepo
	contactRepo *contactRepo
	tokenRepo   *tokenRepo
}

// New wires the live store over a shared gorm handle.
func New(db *gorm.DB) Database {
	return &gormDatabase{
		db:          db,
		projectRepo: newProjectRepo(db),
		contactRepo: newContactRepo(db),
		tokenRepo:   newTokenRepo(db),
	}
}

func (d *gormDatabase) ProjectRepo() ProjectRepo { return d.projectRepo }
func (d *gormDatabase) ContactRepo() ContactRepo { return d.contactRepo }
func (d *gormDatabase) TokenRepo() TokenRepo     { return d.tokenRepo }
func (d *gormDatabase) Offline() bool            { return false }

func (d *gormDatabase) Init() (bool, error) {
	tables := []interface{}{
		&models.Project{},
		&models.ContactEntry{},
		&models.UserToken{},
	}

	already := true
	for _, table := range tables {
		if !d.db.Migrator().HasTable(table) {
			already = false
			break
		}
	}

	if err := d.db.AutoMigrate(tables...); err != nil {
		return false, err
	}
	return !already, nil
}
