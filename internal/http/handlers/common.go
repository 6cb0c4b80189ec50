package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/skillpath-backend/internal/platform/apierr"
	"github.com/yungbote/skillpath-backend/internal/platform/ctxutil"
	"github.com/yungbote/skillpath-backend/internal/http/response"
)

// respondServiceError maps service errors onto the wire: apierr carries its
// own status/code, anything else is a generic server error.
func respondServiceError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		response.RespondError(c, apiErr.Status, apiErr.Code, apiErr)
		return
	}
	response.RespondError(c, http.StatusInternalServerError, "server_error", err)
}

// currentUserID reads the authenticated caller set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return rd.UserID, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
