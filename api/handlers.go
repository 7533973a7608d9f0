package api

import (
	"github.com/kichu12348/kichu-space-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, c map[string]string) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(db.ProjectRepo()),
		contactHandler: newContactHandler(db.ContactRepo()),
		authHandler:    newAuthHandler(db.TokenRepo()),
		systemHandler:  newSystemHandler(db, c),
	}
}
