package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/healinghandsmipt/website_backend/internal/service/notification"
)

type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// GET /notifications
//
// Always 200. A broken or absent feed renders as an empty list so the site
// banner degrades silently.
func (h *NotificationHandler) List(c fiber.Ctx) error {
	items := h.svc.Active(c.Context())
	if items == nil {
		items = []notification.Item{}
	}
	return ok(c, items)
}
