package handler

import (
	"errors"
	"net/http"

	"autobid-server/internal/auth"
	model "autobid-server/internal/models"
	"autobid-server/services/auction/helpers"
	"autobid-server/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie the session token travels in
const SessionCookieName = "token"

type SessionIssuer interface {
	Issue(p model.Principal) (string, error)
}

type SessionHandler struct {
	sessions SessionIssuer
}

func NewSessionHandler(sessions SessionIssuer) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// CreateSessionHandler handles POST /jwt
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	var req helpers.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateSessionHandler", err)
		return
	}

	token, err := h.sessions.Issue(model.Principal{Email: req.Email, Name: req.Name, Photo: req.Photo})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, errors.New("failed to create session token"), "failed to create session token")
		utils.Error("CreateSessionHandler: token signing failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	setSessionCookie(c, token, int(auth.SessionTTL.Seconds()))
	utils.JSONResponse(c, http.StatusOK, gin.H{"success": true}, "session created successfully")
	helpers.LogSuccess("CreateSessionHandler", "session created successfully", map[string]any{"email": req.Email})
}

// LogoutHandler handles POST /logout
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	setSessionCookie(c, "", -1)
	utils.JSONResponse(c, http.StatusOK, gin.H{"success": true}, "session cleared")
}

// setSessionCookie writes the cross-site session cookie: HTTP-only, Secure
// and SameSite=None so the browser client on another origin can carry it.
func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", true, true)
}
