package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/skillpath-backend/internal/http/response"
	"github.com/yungbote/skillpath-backend/internal/services"
)

// PublicHandler serves unauthenticated reads.
type PublicHandler struct {
	userService services.UserService
}

func NewPublicHandler(userService services.UserService) *PublicHandler {
	return &PublicHandler{userService: userService}
}

func (ph *PublicHandler) GetProfile(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		response.RespondError(c, http.StatusNotFound, "not_found", errors.New("user not found"))
		return
	}
	profile, err := ph.userService.GetPublicProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, profile)
}
