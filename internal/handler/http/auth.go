package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/knockout-login/internal/logger"
	"github.com/MKhiriev/knockout-login/internal/service"
	"github.com/MKhiriev/knockout-login/internal/utils"
	"github.com/MKhiriev/knockout-login/models"
)

const (
	sessionCookieName = "knockout_session"
	callbackPath      = "/auth/callback"
)

// login redirects the browser to the Knockout auth provider. The provider
// sends the user back to this deployment's callback with a one-time token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	target := h.services.AuthService.LoginURL(h.callbackURL(r))
	http.Redirect(w, r, target, http.StatusFound)
}

// callback completes the login: the one-time token from the query string is
// exchanged for the user's identity and a session cookie is issued.
func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CompleteLogin(ctx, r.URL.Query().Get("token"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyToken):
			log.Err(err).Msg("callback without token")
			http.Error(w, "missing token", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrLoginRejected):
			log.Err(err).Msg("login rejected by provider")
			http.Error(w, "login rejected", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("token exchange failed")
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
			return
		}
	}

	http.SetCookie(w, sessionCookie(token.SignedString, token.ExpiresAt.Time))

	log.Debug().Int64("user_id", token.UserID).Str("username", token.Username).Msg("session issued")

	http.Redirect(w, r, "/", http.StatusFound)
}

// logout clears the session cookie.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, sessionCookie("", time.Unix(0, 0)))
	http.Redirect(w, r, "/", http.StatusFound)
}

// session returns the authenticated user behind the session cookie.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.Session(ctx, cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenIsExpired):
			log.Err(err).Msg("session expired")
			http.Error(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("invalid session token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
	}

	utils.WriteJSON(w, models.SessionResponse{ID: token.UserID, Username: token.Username}, http.StatusOK)
}

// callbackURL builds the absolute URL of the callback endpoint: from the
// configured public base URL when set, otherwise from the request's Host.
func (h *Handler) callbackURL(r *http.Request) string {
	if h.baseURL != nil {
		return strings.TrimRight(h.baseURL.String(), "/") + callbackPath
	}

	return "https://" + r.Host + callbackPath
}

func sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
