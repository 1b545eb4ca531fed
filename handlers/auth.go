package handlers

import (
	"net/http"

	"haviaa/services/user"
	"haviaa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves sign-up, sign-in and the profile of the signed-in user.
type UserHandler struct {
	UserSvc user.UserService
}

func NewUserHandler(userSvc user.UserService) *UserHandler {
	return &UserHandler{UserSvc: userSvc}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

// SignupHandler handles POST /api/auth/signup.
func (h *UserHandler) SignupHandler(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	session, err := h.UserSvc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, "Signup failed", err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// LoginHandler handles POST /api/auth/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	session, err := h.UserSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, "Login failed", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// LogoutHandler handles POST /api/auth/logout. It needs a valid bearer token.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	sessionID := currentSessionID(c)
	if err := h.UserSvc.Logout(c.Request.Context(), sessionID); err != nil {
		utils.RespondError(c, "Logout failed", err)
		return
	}
	getLogger(c).Info("User logged out", zap.String("sessionID", sessionID))
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
