package handlers

import (
	"io"
	"net/http"

	"staywise/models"
	"staywise/nav"
	"staywise/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the session manager to the front-desk UI.
type AuthHandler struct {
	Sessions session.SessionManager
	Nav      *nav.Recorder
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(sessions session.SessionManager, recorder *nav.Recorder) *AuthHandler {
	return &AuthHandler{Sessions: sessions, Nav: recorder}
}

// redirect attaches the recorded navigation, if any, to a response payload.
func redirect(recorder *nav.Recorder, payload gin.H) gin.H {
	if move := recorder.TakeLast(); move != nil {
		payload["redirectTo"] = move.Path
		payload["replaceHistory"] = move.Replace
	}
	return payload
}

// LoginHandler handles staff login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// The settle callback is the form's cue to clear its credential fields.
	user, err := h.Sessions.Login(c.Request.Context(), req.Email, req.Password, nil)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Provided email or password are incorrect"})
		return
	}
	c.JSON(http.StatusOK, redirect(h.Nav, gin.H{"user": user}))
}

// SignupHandler creates a new, unverified staff account.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		FullName string `json:"fullName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.Sessions.Signup(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Signup failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// LogoutHandler invalidates the current session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.Sessions.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, redirect(h.Nav, gin.H{"status": "signed out"}))
}

// SessionHandler reports the resolved session state for the route guard on
// the UI side.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	current := h.Sessions.CurrentSession(c.Request.Context())
	c.JSON(http.StatusOK, current)
}

// UpdateUserHandler applies a partial profile update to the current user.
// Avatar uploads arrive as multipart form data.
func (h *AuthHandler) UpdateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	req := models.UserUpdateRequest{
		Password: c.PostForm("password"),
		FullName: c.PostForm("fullName"),
	}

	if file, err := c.FormFile("avatar"); err == nil {
		src, err := file.Open()
		if err != nil {
			logger.Error("Failed to open avatar upload", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid avatar upload"})
			return
		}
		defer src.Close()
		data, err := io.ReadAll(src)
		if err != nil {
			logger.Error("Failed to read avatar upload", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid avatar upload"})
			return
		}
		req.Avatar = data
		req.AvatarName = file.Filename
	}

	user, err := h.Sessions.UpdateCurrentUser(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
