package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ExpTable_Go/internal/logger"
	"github.com/osse101/ExpTable_Go/internal/settings"
)

// Profile identification
const (
	ProfileCookieName = "exp_table_profile"
	HeaderProfileID   = "X-Profile-ID"
	profileCookieTTL  = 400 * 24 * time.Hour
)

// resolveProfile returns the caller's profile id. API clients send X-Profile-ID;
// browsers carry a cookie, which is issued on first visit.
func resolveProfile(w http.ResponseWriter, r *http.Request) (string, error) {
	if id := r.Header.Get(HeaderProfileID); id != "" {
		return id, settings.ValidateProfile(id)
	}
	if c, err := r.Cookie(ProfileCookieName); err == nil && settings.ValidateProfile(c.Value) == nil {
		return c.Value, nil
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     ProfileCookieName,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(profileCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	logger.FromContext(r.Context()).Debug(LogMsgProfileIssued, "profile", id)
	return id, nil
}
