package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

// PostModule wires blog post HTTP handlers into routes.
// Public: GET /post, GET /post/:id
// Protected: POST /create_post, PUT /post

type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.GET("/post", m.Handler.List)
	rg.GET("/post/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Session(m.JWT))
	{
		auth.POST("/create_post", m.Handler.Create)
		auth.PUT("/post", m.Handler.Update)
	}
}
