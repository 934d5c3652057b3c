package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
	"github.com/oksasatya/go-blog-api/pkg/response"
	"github.com/oksasatya/go-blog-api/pkg/validation"
)

type UserHandler struct {
	Svc     *userapp.UserService
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewUserHandler(svc *userapp.UserService, jwt *helpers.JWTManager, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Svc: svc, JWT: jwt, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Avatar   string `json:"avatar"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register - POST /register {username, password, avatar?}
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(req.Username, req.Password, req.Avatar)
	if err != nil {
		if errors.Is(err, userapp.ErrDuplicateUsername) {
			response.Error[any](c, http.StatusBadRequest, "username already taken", nil)
			return
		}
		response.Error[any](c, http.StatusBadRequest, "registration failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"avatar":     u.Avatar,
		"created_at": u.CreatedAt,
	}, "registered", nil)
}

// Login - POST /login {username, password}; sets the token cookie on success
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Authenticate(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, userapp.ErrUserNotFound):
			response.Error[any](c, http.StatusBadRequest, "unknown username", nil)
		case errors.Is(err, userapp.ErrWrongCredentials):
			response.Error[any](c, http.StatusBadRequest, "wrong credentials", nil)
		default:
			response.Error[any](c, http.StatusBadRequest, "login failed", nil)
		}
		return
	}

	token, exp, err := h.JWT.Generate(u.ID, u.Username)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
		return
	}
	h.Cookies.SetToken(c, token, exp)
	response.Success(c, http.StatusOK, gin.H{
		"id":       u.ID,
		"username": u.Username,
		"avatar":   u.Avatar,
	}, "login successful", map[string]any{"expires_at": exp})
}

// Logout - POST /logout; clears the token cookie
func (h *UserHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, "ok", "logged out", nil)
}

// GetProfile - GET /profile; echoes the verified claims
func (h *UserHandler) GetProfile(c *gin.Context) {
	v, ok := c.Get(middleware.CtxClaimsKey)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	claims, ok := v.(*helpers.Claims)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user_id":    claims.UserID,
		"username":   claims.Username,
		"issued_at":  claims.IssuedAt,
		"expires_at": claims.ExpiresAt,
	}, "profile", nil)
}
