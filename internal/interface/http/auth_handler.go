package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portfolio-api/internal/application"
	"portfolio-api/pkg/helpers"
	"portfolio-api/pkg/response"
	"portfolio-api/pkg/validation"
)

type AuthHandler struct {
	Svc      *application.AuthService
	Logger   *logrus.Logger
	Cookies  *helpers.Manager
	Redirect string
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool, redirect string) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure), Redirect: redirect}
}

// trimmed sheds surrounding whitespace while the body is decoded, so
// the length and format rules see the value that gets stored, not the
// padded wire form. " J " is a one-character name.
type trimmed string

func (t *trimmed) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = trimmed(strings.TrimSpace(s))
	return nil
}

type registerRequest struct {
	Name     trimmed `json:"name" binding:"required,min=2,max=80"`
	Email    trimmed `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    trimmed `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
}

type registerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type loginResponse struct {
	RedirectTo string `json:"redirect_to"`
	Name       string `json:"name"`
}

type logoutResponse struct {
	LoggedOut bool `json:"logged_out"`
}

// Register POST /api/users
// The password never appears in the response, hashed or otherwise.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(application.RegisterInput{Name: string(req.Name), Email: string(req.Email), Password: req.Password})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error[any](c, http.StatusBadRequest, "invalid payload",
				[]validation.FieldError{{Field: "email", Message: "already registered"}})
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}

	response.Success(c, http.StatusCreated, registerResponse{
		ID:   u.ID,
		Name: u.Name,
		Slug: helpers.Slugify(u.Name),
	}, "user created", nil)
}

// Login POST /api/login
// Unknown email answers 404, a wrong password 401; each attempt is
// evaluated independently with no lockout or throttling.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Svc.Login(string(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error[any](c, http.StatusUnauthorized, "incorrect password", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		}
		return
	}

	h.Cookies.SetSession(c, token, exp)
	response.Success(c, http.StatusOK, loginResponse{
		RedirectTo: h.Redirect,
		Name:       u.Name,
	}, "login successful", map[string]any{"expires_at": exp})
}

// Logout POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, logoutResponse{LoggedOut: true}, "logged out", nil)
}
