package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/genesehub/internal/auth"
	"github.com/ignatzorin/genesehub/internal/config"
	"github.com/ignatzorin/genesehub/internal/http/handlers"
	"github.com/ignatzorin/genesehub/internal/http/middleware"
	"github.com/ignatzorin/genesehub/internal/web"
)

// Route описывает один маршрут и его политику аутентификации.
// Page-маршруты отдают ошибки страницей error.html, остальные отвечают JSON.
type Route struct {
	Method  string
	Path    string
	Policy  middleware.AuthPolicy
	Page    bool
	Handler gin.HandlerFunc
}

// Handlers собирает хэндлеры, из которых строится таблица маршрутов.
type Handlers struct {
	Pages   *handlers.PageHandler
	Profile *handlers.ProfileHandler
	Health  *handlers.HealthHandler
}

// Routes возвращает таблицу маршрутов приложения.
func Routes(h Handlers) []Route {
	return []Route{
		{Method: "GET", Path: "/", Policy: middleware.Public, Page: true, Handler: h.Pages.Home},
		{Method: "GET", Path: "/courses", Policy: middleware.Public, Page: true, Handler: h.Pages.Courses},
		{Method: "GET", Path: "/portifolio", Policy: middleware.Public, Page: true, Handler: h.Pages.Portfolio},
		{Method: "GET", Path: "/add-project", Policy: middleware.Public, Page: true, Handler: h.Pages.AddProject},
		{Method: "GET", Path: middleware.LoginPath, Policy: middleware.Public, Page: true, Handler: h.Pages.Login},

		{Method: "GET", Path: handlers.ProfilePath, Policy: middleware.RedirectToLogin, Page: true, Handler: h.Profile.ShowProfile},
		{Method: "GET", Path: "/profile/edit", Policy: middleware.RedirectToLogin, Page: true, Handler: h.Profile.ShowProfileEdit},

		{Method: "POST", Path: "/perfil/me/update", Policy: middleware.RejectUnauthorized, Handler: h.Profile.UpdateMe},
		{Method: "GET", Path: "/perfil/me/dados", Policy: middleware.RejectUnauthorized, Handler: h.Profile.GetMe},
		{Method: "GET", Path: "/perfil/me/projetos", Policy: middleware.RejectUnauthorized, Handler: h.Profile.ListMyProjects},

		{Method: "GET", Path: "/health", Policy: middleware.Public, Handler: h.Health.Health},
	}
}

// SetupRouter собирает gin.Engine: middleware, шаблоны, статику и таблицу маршрутов.
func SetupRouter(cfg *config.Config, provider auth.Provider, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())

	r.SetHTMLTemplate(web.MustTemplates())
	r.StaticFS("/static", web.Static(cfg.StaticDir))

	for _, route := range Routes(h) {
		chain := make([]gin.HandlerFunc, 0, 3)
		if route.Page {
			chain = append(chain, middleware.HTMLErrors())
		}
		chain = append(chain, middleware.RequireUser(provider, route.Policy), route.Handler)
		r.Handle(route.Method, route.Path, chain...)
	}

	return r
}
