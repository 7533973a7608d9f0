package api

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kichu12348/kichu-space-backend/database"
	"github.com/kichu12348/kichu-space-backend/errs"
)

// credentialExtractor pulls a candidate token from an inbound request. The
// transport (bearer header vs. cookie) is picked once from configuration so
// both mechanisms never coexist on the same deployment.
type credentialExtractor func(r *http.Request) (string, bool)

func bearerCredential(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}

func cookieCredential(r *http.Request) (string, bool) {
	cookie, err := r.Cookie("admin-auth")
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func newCredentialExtractor(transport string) credentialExtractor {
	if transport == "cookie" {
		return cookieCredential
	}
	return bearerCredential
}

type authMiddleware struct {
	responder Responder
	tokens    database.TokenRepo
	extract   credentialExtractor
}

func newAuthMiddleware(tokens database.TokenRepo, transport string) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		tokens:    tokens,
		extract:   newCredentialExtractor(transport),
	}
}

// authenticate gates mutating project routes. A missing credential is
// rejected without touching the store; the gate itself never mutates state.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := m.extract(r)
		if !ok {
			m.responder.WriteError(w, errs.NewUnauthorizedError("missing credential"))
			return
		}

		valid, err := m.tokens.Check(token)
		if err != nil {
			m.responder.WriteError(w, errs.NewDatabaseError("check", "token", err))
			return
		}
		if !valid {
			m.responder.WriteError(w, errs.NewUnauthorizedError("invalid token"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// HTTPLoggingMiddleware logs every request with a generated request id and a
// level keyed off the response status.
func HTTPLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent = log.Info()
		switch {
		case srw.status >= 500:
			logEvent = log.Error()
		case srw.status >= 400:
			logEvent = log.Warn()
		}

		logEvent.
			Str("requestId", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
