package handler

import (
	"net/http"
	"time"

	"charty-dashboard-backend/internal/middleware"
	"charty-dashboard-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth         *auth.Service
	secureCookie bool
}

func NewAuthHandler(a *auth.Service, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: a, secureCookie: secureCookie}
}

// Login authenticates the email/password form and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	form, err := readForm(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.auth.Authenticate(c.Request.Context(), "", form)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if state.Message != "" {
		c.JSON(http.StatusUnauthorized, state)
		return
	}

	session := state.Session
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, session.Token, maxAge, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	c.Status(http.StatusNoContent)
}
