package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portfolio-api/internal/application"
	"portfolio-api/pkg/response"
)

type PortfolioHandler struct {
	Svc    *application.PortfolioService
	Logger *logrus.Logger
}

func NewPortfolioHandler(svc *application.PortfolioService, logger *logrus.Logger) *PortfolioHandler {
	return &PortfolioHandler{Svc: svc, Logger: logger}
}

// Get GET /api/portfolio/:username
// The slug is attacker-controlled free text; normalization and pattern
// escaping happen in the service before any query is issued.
func (h *PortfolioHandler) Get(c *gin.Context) {
	data, err := h.Svc.Resolve(c.Param("username"))
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "portfolio not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("portfolio resolution failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}

	response.Success(c, http.StatusOK, data, "portfolio", nil)
}
