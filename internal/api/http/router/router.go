package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/healinghandsmipt/website_backend/config"
	"github.com/healinghandsmipt/website_backend/internal/api/http/handler"
	"github.com/healinghandsmipt/website_backend/internal/service/clinicinfo"
	"github.com/healinghandsmipt/website_backend/internal/service/contact"
	"github.com/healinghandsmipt/website_backend/internal/service/notification"
	"github.com/healinghandsmipt/website_backend/pkg/email"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	ContactSvc      contact.Service
	NotificationSvc notification.Service
	SiteSvc         clinicinfo.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Handlers
	contactH := handler.NewContactHandler(r.p.ContactSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	siteH := handler.NewSiteHandler(r.p.SiteSvc)

	api := app.Group("/api/v1")

	// 3. Delegate to sub-files
	r.registerContactRoutes(api, contactH)
	r.registerNotificationRoutes(api, notificationH)
	r.registerSiteRoutes(api, siteH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		// ready means we can actually deliver inquiries
		Probe: func(c fiber.Ctx) bool {
			return email.FromCentralConfig(r.p.Cfg.Email).Configured()
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
