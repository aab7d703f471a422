package modules

import (
	"github.com/gin-gonic/gin"

	handlers "portfolio-api/internal/interface/http"
	"portfolio-api/internal/interface/middleware"
	"portfolio-api/pkg/helpers"
)

// ExperienceModule wires the protected experience collection.
// All verbs share one path and require the session cookie:
// GET/POST/PATCH/DELETE /api/dashboard
type ExperienceModule struct {
	Handler *handlers.ExperienceHandler
	JWT     *helpers.JWTManager
}

func NewExperienceModule(h *handlers.ExperienceHandler, jwt *helpers.JWTManager) *ExperienceModule {
	return &ExperienceModule{Handler: h, JWT: jwt}
}

func (m *ExperienceModule) Register(rg *gin.RouterGroup) {
	guarded := rg.Group("/dashboard")
	guarded.Use(middleware.RequireAuth(m.JWT))
	{
		guarded.GET("", m.Handler.List)
		guarded.POST("", m.Handler.Add)
		guarded.PATCH("", m.Handler.Update)
		guarded.DELETE("", m.Handler.Delete)
	}
}
