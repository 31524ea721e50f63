package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/healinghandsmipt/website_backend/internal/api/http/handler"
)

func (r *Router) registerNotificationRoutes(api fiber.Router, h *handler.NotificationHandler) {
	api.Get("/notifications", h.List)
}
