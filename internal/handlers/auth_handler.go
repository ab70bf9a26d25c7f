package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/middleware"
	"estatedesk/internal/services"
	"estatedesk/internal/tokenstore"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService  services.UserServicer
	auth         *middleware.Authenticator
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, auth *middleware.Authenticator, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{userService: userService, auth: auth, auditService: auditService}
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user and start a session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body services.RegisterInput true "User registration data"
// @Success     201 {object} MessageResponse "User registered, accessToken cookie set"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate email"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.Register(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.auth.Issue(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	h.auth.SetCookie(c, token)

	h.auditService.Log(user.ID, "REGISTER", "user", user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, MessageResponse{Success: true, Message: "Registered successful"})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and set the accessToken cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body services.LoginInput true "User login credentials"
// @Success     200 {object} MessageResponse "Login successful"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.Login(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.auth.Issue(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	h.auth.SetCookie(c, token)

	h.auditService.Log(user.ID, "LOGIN", "user", user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Login successful"})
}

// Logout handles user logout
// @Summary     Logout user
// @Description Revoke the session token and clear the cookie
// @Tags        auth
// @Produce     json
// @Success     200 {object} MessageResponse "Logout successful"
// @Failure     401 {object} ErrorResponse "No token provided"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.CookieName)
	if err != nil || token == "" {
		respondWithError(c, apperrors.ErrNoToken)
		return
	}

	if err := h.auth.Revoke(c.Request.Context(), token); err != nil {
		if errors.Is(err, tokenstore.ErrTokenNotFound) {
			h.auth.ClearCookie(c)
			respondWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Token not found"))
			return
		}
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	h.auth.ClearCookie(c)

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Logout successful"})
}

// Me returns the signed-in user
// @Summary     Current user
// @Description Get the authenticated user's profile
// @Tags        auth
// @Produce     json
// @Success     200 {object} models.User "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Invalid token"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
