package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/healinghandsmipt/website_backend/internal/service/clinicinfo"
)

type SiteHandler struct {
	svc clinicinfo.Service
}

func NewSiteHandler(svc clinicinfo.Service) *SiteHandler {
	return &SiteHandler{svc: svc}
}

// GET /site
func (h *SiteHandler) Info(c fiber.Ctx) error {
	return ok(c, h.svc.Info())
}

// GET /site/services
func (h *SiteHandler) Services(c fiber.Ctx) error {
	return ok(c, h.svc.Services())
}

// GET /site/services/:id
func (h *SiteHandler) ServiceByID(c fiber.Ctx) error {
	entry, found := h.svc.ServiceByID(c.Params("id"))
	if !found {
		return notFound(c, "service not found")
	}
	return ok(c, entry)
}

// GET /site/hours
func (h *SiteHandler) Hours(c fiber.Ctx) error {
	return ok(c, h.svc.Hours())
}
