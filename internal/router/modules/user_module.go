package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

// UserModule wires account HTTP handlers into routes.
// Public: POST /register, POST /login, POST /logout
// Protected: GET /profile

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
	// Logout only clears the cookie; it works for anonymous callers too.
	rg.POST("/logout", m.Handler.Logout)

	auth := rg.Group("/")
	auth.Use(middleware.Session(m.JWT))
	{
		auth.GET("/profile", m.Handler.GetProfile)
	}
}
