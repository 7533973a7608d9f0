package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kichu12348/kichu-space-backend/database"
	"github.com/kichu12348/kichu-space-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	tokenRepo database.TokenRepo
}

func newAuthHandler(tokenRepo database.TokenRepo) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tokenRepo: tokenRepo,
	}
}

// mintToken hands out a fresh admin token. Leaving this unauthenticated is a
// product decision carried over from the original site, not an oversight:
// the tokens gate writes to a single-owner portfolio.
func (h authHandler) mintToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := h.tokenRepo.Mint()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("mint", "token", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"token": token})
	}
}

// isValid is purely informational: it reports whether a token would pass the
// gate, without granting or denying anything itself.
func (h authHandler) isValid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")

		valid, err := h.tokenRepo.Check(token)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("check", "token", err))
			return
		}

		if !valid {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			h.responder.WriteJSON(w, map[string]bool{"valid": false})
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"valid": true})
	}
}
