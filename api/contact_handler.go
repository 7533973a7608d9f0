package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kichu12348/kichu-space-backend/database"
	"github.com/kichu12348/kichu-space-backend/errs"
	"github.com/kichu12348/kichu-space-backend/models"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo database.ContactRepo
}

func newContactHandler(contactRepo database.ContactRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
	}
}

// createEntry accepts a contact form submission. Deliberately
// unauthenticated: anyone may reach out.
func (h contactHandler) createEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry models.ContactEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact form body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if entry.Name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name is required"))
			return
		}
		if entry.Email == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("email is required"))
			return
		}

		entry.ID = 0

		if err := h.contactRepo.Add(&entry); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "contact form entry", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"message": "Contact form entry added successfully",
		})
	}
}

func (h contactHandler) getAllEntries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "contact form entries", err))
			return
		}

		if len(entries) == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("no contact form entries found"))
			return
		}

		h.responder.WriteJSON(w, entries)
	}
}
