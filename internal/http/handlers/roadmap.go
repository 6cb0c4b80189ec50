package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/skillpath-backend/internal/domain/roadmap"
	"github.com/yungbote/skillpath-backend/internal/http/response"
	"github.com/yungbote/skillpath-backend/internal/services"
)

type RoadmapHandler struct {
	roadmapService     services.RoadmapService
	certificateService services.CertificateService
}

func NewRoadmapHandler(roadmapService services.RoadmapService, certificateService services.CertificateService) *RoadmapHandler {
	return &RoadmapHandler{
		roadmapService:     roadmapService,
		certificateService: certificateService,
	}
}

func (rh *RoadmapHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("not authenticated"))
		return
	}
	var req struct {
		Skill           string          `json:"skill"`
		Description     string          `json:"description"`
		Phases          []roadmap.Phase `json:"phases"`
		CapstoneProject *roadmap.Task   `json:"capstoneProject"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Skill == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errors.New("skill is required"))
		return
	}
	rm, err := rh.roadmapService.Save(c.Request.Context(), userID, req.Skill, req.Description, req.Phases, req.CapstoneProject)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, rm)
}

func (rh *RoadmapHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("not authenticated"))
		return
	}
	roadmaps, err := rh.roadmapService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, roadmaps)
}

func (rh *RoadmapHandler) Get(c *gin.Context) {
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
	rm, err := rh.roadmapService.Get(c.Request.Context(), roadmapID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, rm)
}

func (rh *RoadmapHandler) Update(c *gin.Context) {
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
		Phases          []roadmap.Phase `json:"phases"`
		CapstoneProject *roadmap.Task   `json:"capstoneProject"`
		IsCompleted     bool            `json:"isCompleted"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rm, err := rh.roadmapService.Update(c.Request.Context(), roadmapID, userID, req.Phases, req.CapstoneProject, req.IsCompleted)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, rm)
}

func (rh *RoadmapHandler) Delete(c *gin.Context) {
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
	if err := rh.roadmapService.Delete(c.Request.Context(), roadmapID, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"msg": "roadmap removed"})
}

func (rh *RoadmapHandler) LogTopicTime(c *gin.Context) {
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
		PhaseIndex       int     `json:"phaseIndex"`
		TopicIndex       int     `json:"topicIndex"`
		TimeSpentSeconds float64 `json:"timeSpentSeconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rm, err := rh.roadmapService.LogTopicTime(c.Request.Context(), roadmapID, userID, req.PhaseIndex, req.TopicIndex, req.TimeSpentSeconds)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, rm)
}

func (rh *RoadmapHandler) Certificate(c *gin.Context) {
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
	png, err := rh.certificateService.Render(c.Request.Context(), roadmapID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="certificate.png"`)
	c.Data(http.StatusOK, "image/png", png)
}
