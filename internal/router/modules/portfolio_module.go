package modules

import (
	"github.com/gin-gonic/gin"

	handlers "portfolio-api/internal/interface/http"
)

// PortfolioModule wires the public portfolio read.
// Public: GET /api/portfolio/:username
type PortfolioModule struct {
	Handler *handlers.PortfolioHandler
}

func NewPortfolioModule(h *handlers.PortfolioHandler) *PortfolioModule {
	return &PortfolioModule{Handler: h}
}

func (m *PortfolioModule) Register(rg *gin.RouterGroup) {
	rg.GET("/portfolio/:username", m.Handler.Get)
}
