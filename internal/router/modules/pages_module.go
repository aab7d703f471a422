package modules

import (
	"github.com/gin-gonic/gin"

	handlers "portfolio-api/internal/interface/http"
	"portfolio-api/internal/interface/middleware"
	"portfolio-api/pkg/helpers"
)

const loginPath = "/login"

// PagesModule wires the guarded page surfaces. Unlike the API guard,
// failing requests here are redirected to the login page.
// Guarded: GET /dashboard, GET /makepost
type PagesModule struct {
	Handler *handlers.PageHandler
	JWT     *helpers.JWTManager
}

func NewPagesModule(h *handlers.PageHandler, jwt *helpers.JWTManager) *PagesModule {
	return &PagesModule{Handler: h, JWT: jwt}
}

func (m *PagesModule) Register(rg *gin.RouterGroup) {
	guard := middleware.RequirePageAuth(m.JWT, loginPath)
	rg.GET("/dashboard", guard, m.Handler.Dashboard)
	rg.GET("/makepost", guard, m.Handler.MakePost)
}
