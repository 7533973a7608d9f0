package database

import "github.com/kichu12348/kichu-space-backend/models"

// nullDatabase backs the offline fallback mode: every read returns an absent
// result, every write silently no-ops, and nothing ever errors. It lets the
// HTTP surface run without a database binding attached.
type nullDatabase struct{}

// NewNull returns the offline store.
func NewNull() Database {
	return nullDatabase{}
}

func (nullDatabase) ProjectRepo() ProjectRepo { return nullProjectRepo{} }
func (nullDatabase) ContactRepo() ContactRepo { return nullContactRepo{} }
func (nullDatabase) TokenRepo() TokenRepo { return nullTokenRepo{} }
func (nullDatabase) Offline() bool { return true }
func (nullDatabase) Init() (bool, error) { return false, nil }
func (nullDatabase) Seed() (bool, error) { return false, nil }

type nullProjectRepo struct{}

func (nullProjectRepo) FindAll() ([]models.Project, error) { return nil, nil }
func (nullProjectRepo) FindByID(int64) (*models.Project, error) { return nil, nil }
func (nullProjectRepo) Add(*models.Project) error { return nil }
func (nullProjectRepo) Update(*models.Project) (int64, error) { return 0, nil }
func (nullProjectRepo) Delete(int64) (int64, error) { return 0, nil }

type nullContactRepo struct{}

func (nullContactRepo) Add(*models.ContactEntry) error { return nil }
func (nullContactRepo) FindAll() ([]models.ContactEntry, error) { return nil, nil }

type nullTokenRepo struct{}

// Mint still hands out a token so the frontend flow can be exercised
// offline; it is never stored, so Check will not recognize it.
func (nullTokenRepo) Mint() (string, error) { return generateToken() }
func (nullTokenRepo) Check(string) (bool, error) { return false, nil }
