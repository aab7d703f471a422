package modules

import (
	"github.com/gin-gonic/gin"

	handlers "portfolio-api/internal/interface/http"
)

// AuthModule wires the unguarded account endpoints.
// Public: POST /api/users, POST /api/login, POST /api/logout
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
	rg.POST("/logout", m.Handler.Logout)
}
