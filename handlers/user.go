package handlers

import (
	"net/http"

	"haviaa/models"
	"haviaa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		getLogger(c).Error("User not found in context")
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler merges the given fields into the authenticated user's profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Warn("Invalid profile update", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.UserSvc.UpdateProfile(c.Request.Context(), currentSessionID(c), update)
	if err != nil {
		utils.RespondError(c, "Failed to update profile", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetPreferenceOptionsHandler lists the household preferences a user may pick.
func (h *UserHandler) GetPreferenceOptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"preferences": models.PreferenceOptions})
}
