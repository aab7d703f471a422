package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portfolio-api/internal/application"
	"portfolio-api/internal/interface/middleware"
	"portfolio-api/pkg/helpers"
	"portfolio-api/pkg/response"
)

// PageHandler serves the data behind the guarded page surfaces.
// Rendering itself stays external; these endpoints hand the render
// layer the plain structures it needs.
type PageHandler struct {
	Auth        *application.AuthService
	Experiences *application.ExperienceService
	Logger      *logrus.Logger
}

func NewPageHandler(auth *application.AuthService, experiences *application.ExperienceService, logger *logrus.Logger) *PageHandler {
	return &PageHandler{Auth: auth, Experiences: experiences, Logger: logger}
}

type profileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Slug  string `json:"slug"`
}

type dashboardResponse struct {
	Profile     profileResponse      `json:"profile"`
	Experiences []experienceResponse `json:"experiences"`
}

type makePostResponse struct {
	Name string `json:"name"`
}

// Dashboard GET /dashboard
func (h *PageHandler) Dashboard(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	u, err := h.Auth.GetProfile(uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	items, err := h.Experiences.List(uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}

	out := make([]experienceResponse, 0, len(items))
	for i := range items {
		out = append(out, toExperienceResponse(&items[i]))
	}
	response.Success(c, http.StatusOK, dashboardResponse{
		Profile: profileResponse{
			Name:  u.Name,
			Email: u.Email,
			Slug:  helpers.Slugify(u.Name),
		},
		Experiences: out,
	}, "dashboard", nil)
}

// MakePost GET /makepost
func (h *PageHandler) MakePost(c *gin.Context) {
	response.Success(c, http.StatusOK, makePostResponse{
		Name: c.GetString(middleware.CtxUserNameKey),
	}, "makepost", nil)
}
