package api

import (
	"net/http"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kichu12348/kichu-space-backend/config"
	"github.com/kichu12348/kichu-space-backend/database"
	"github.com/kichu12348/kichu-space-backend/errs"
)

type systemHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	config    map[string]string
}

func newSystemHandler(db database.Database, c map[string]string) systemHandler {
	logger := log.With().Str("handlerName", "systemHandler").Logger()

	return systemHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		config:    c,
	}
}

func (h systemHandler) liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("kichu.space backend is up"))
	}
}

// initSchema creates the tables if needed. Calling it again is harmless and
// reports that the schema was already in place.
func (h systemHandler) initSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := h.db.Init()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("initialize", "database", err))
			return
		}

		message := "Database already initialized"
		if created {
			message = "Database initialized successfully"
		}
		h.responder.WriteJSON(w, map[string]string{"message": message})
	}
}

// debugEnv reports whether a store binding is attached and which environment
// keys are set. Names only; values never leave the process.
func (h systemHandler) debugEnv() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keys := config.Keys(h.config)
		sort.Strings(keys)

		h.responder.WriteJSON(w, map[string]interface{}{
			"hasDb":   !h.db.Offline(),
			"dbType":  config.GetString(h.config, "DB_TYPE", ""),
			"envKeys": keys,
		})
	}
}
