package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/healinghandsmipt/website_backend/internal/api/http/handler"
)

func (r *Router) registerSiteRoutes(api fiber.Router, h *handler.SiteHandler) {
	site := api.Group("/site")

	site.Get("/", h.Info)
	site.Get("/services", h.Services)
	site.Get("/services/:id", h.ServiceByID)
	site.Get("/hours", h.Hours)
}
