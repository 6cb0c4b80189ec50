package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/skillpath-backend/internal/http/response"
	"github.com/yungbote/skillpath-backend/internal/services"
)

// TutorHandler fronts the AI-backed routes.
type TutorHandler struct {
	tutorService services.TutorService
}

func NewTutorHandler(tutorService services.TutorService) *TutorHandler {
	return &TutorHandler{tutorService: tutorService}
}

func (th *TutorHandler) Generate(c *gin.Context) {
	var req struct {
		Skill string `json:"skill"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Skill == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errors.New("skill is required"))
		return
	}
	template, err := th.tutorService.GenerateRoadmap(c.Request.Context(), req.Skill)
	if err != nil {
		if errors.Is(err, services.ErrGenerationFailed) {
			response.RespondError(c, http.StatusInternalServerError, "generation_failed", err)
			return
		}
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, template)
}

func (th *TutorHandler) Explain(c *gin.Context) {
	var req struct {
		Topic string `json:"topic"`
		Skill string `json:"skill"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	// ExplainTopic degrades internally; it never fails for upstream reasons.
	explanation, err := th.tutorService.ExplainTopic(c.Request.Context(), req.Topic, req.Skill)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, explanation)
}

func (th *TutorHandler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
		Skill   string `json:"skill"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	reply, err := th.tutorService.Chat(c.Request.Context(), req.Message, req.Skill)
	if err != nil {
		if errors.Is(err, services.ErrChatFailed) {
			response.RespondError(c, http.StatusInternalServerError, "chat_failed", err)
			return
		}
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"reply": reply})
}

func (th *TutorHandler) Schedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("not authenticated"))
		return
	}
	roadmapID, ok := parseIDParam(c, "id")
	if !ok {
		response.RespondError(c, http.StatusNotFound, "not_found", errors.New("roadmap not found"))
		return
	}
	var req struct {
		HoursPerWeek float64 `json:"hoursPerWeek"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rm, err := th.tutorService.GenerateSchedule(c.Request.Context(), roadmapID, userID, req.HoursPerWeek)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, rm)
}
