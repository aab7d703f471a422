package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portfolio-api/internal/application"
	"portfolio-api/internal/domain/entity"
	"portfolio-api/internal/interface/middleware"
	"portfolio-api/pkg/response"
	"portfolio-api/pkg/validation"
)

type ExperienceHandler struct {
	Svc    *application.ExperienceService
	Logger *logrus.Logger
}

func NewExperienceHandler(svc *application.ExperienceService, logger *logrus.Logger) *ExperienceHandler {
	return &ExperienceHandler{Svc: svc, Logger: logger}
}

type addExperienceRequest struct {
	Title   string `json:"title" binding:"required"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
	Details string `json:"details" binding:"required,max=2000"`
}

// Pointer fields keep "absent" and "empty" apart: a missing key
// leaves the stored value alone, an explicit "" is applied.
type experiencePatch struct {
	Title   *string `json:"title"`
	Start   *string `json:"start"`
	End     *string `json:"end"`
	Details *string `json:"details" binding:"omitempty,max=2000"`
}

type updateExperienceRequest struct {
	ExpID       string           `json:"exp_id" binding:"required"`
	UpdatedData *experiencePatch `json:"updated_data" binding:"required"`
}

type deleteExperienceRequest struct {
	ExpID string `json:"exp_id" binding:"required"`
}

type experienceResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Details string `json:"details"`
}

type experienceListResponse struct {
	Experiences []experienceResponse `json:"experiences"`
}

type experienceUpdateResponse struct {
	Experience experienceResponse `json:"experience"`
}

type experienceDeleteResponse struct {
	Deleted bool `json:"deleted"`
}

func toExperienceResponse(e *entity.Experience) experienceResponse {
	return experienceResponse{ID: e.ID, Title: e.Title, Start: e.Start, End: e.End, Details: e.Details}
}

// Add POST /api/dashboard
func (h *ExperienceHandler) Add(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	var req addExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing required fields", validation.ToDetails(err))
		return
	}

	e, err := h.Svc.Add(uid, application.AddExperienceInput{
		Title:   req.Title,
		Start:   req.Start,
		End:     req.End,
		Details: req.Details,
	})
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}

	response.Success(c, http.StatusCreated, toExperienceResponse(e), "experience added", nil)
}

// List GET /api/dashboard
func (h *ExperienceHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	items, err := h.Svc.List(uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}

	out := make([]experienceResponse, 0, len(items))
	for i := range items {
		out = append(out, toExperienceResponse(&items[i]))
	}
	response.Success(c, http.StatusOK, experienceListResponse{Experiences: out}, "experiences", nil)
}

// Update PATCH /api/dashboard
func (h *ExperienceHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	var req updateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	e, err := h.Svc.Update(uid, req.ExpID, application.UpdateExperienceInput{
		Title:   req.UpdatedData.Title,
		Start:   req.UpdatedData.Start,
		End:     req.UpdatedData.End,
		Details: req.UpdatedData.Details,
	})
	if err != nil {
		if errors.Is(err, application.ErrExperienceNotFound) {
			response.Error[any](c, http.StatusNotFound, "experience not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}

	response.Success(c, http.StatusOK, experienceUpdateResponse{Experience: toExperienceResponse(e)}, "experience updated", nil)
}

// Delete DELETE /api/dashboard
func (h *ExperienceHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	var req deleteExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if err := h.Svc.Delete(uid, req.ExpID); err != nil {
		if errors.Is(err, application.ErrExperienceNotFound) {
			response.Error[any](c, http.StatusNotFound, "experience not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}

	response.Success(c, http.StatusOK, experienceDeleteResponse{Deleted: true}, "experience deleted", nil)
}
