package router

import (
	app "github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/container"
	pginfra "github.com/oksasatya/go-blog-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
	"github.com/oksasatya/go-blog-api/internal/router/modules"
)

func buildUserModule() *modules.UserModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	service := app.NewUserService(repo, container.GetLogger())
	handler := handlers.NewUserHandler(
		service,
		container.GetJWT(),
		container.GetLogger(),
		container.GetConfig().CookieDomain,
		container.GetConfig().CookieSecure,
	)
	return modules.NewUserModule(handler, container.GetJWT())
}

func buildPostModule() *modules.PostModule {
	repo := pginfra.NewPostRepository(container.GetPGPool())
	service := app.NewPostService(repo, container.GetLogger())
	handler := handlers.NewPostHandler(service, container.GetStorage(), container.GetLogger())
	return modules.NewPostModule(handler, container.GetJWT())
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	r.Add(buildUserModule())
	r.Add(buildPostModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
