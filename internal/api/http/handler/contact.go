package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/healinghandsmipt/website_backend/internal/api/http/middleware"
	"github.com/healinghandsmipt/website_backend/internal/service/contact"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// SubmitInquiry handles the consent-aware general inquiries form. The form
// posts either JSON or url-encoded fields; checkbox consent arrives as "on".
func (h *ContactHandler) SubmitInquiry(c fiber.Ctx) error {
	req, bound := bindInquiry(c)
	if !bound {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   contact.ReasonInvalid,
		})
	}

	res := h.svc.SubmitInquiry(c.Context(), clientInfo(c), req)
	return renderInquiryResult(c, res)
}

// Submit handles the legacy minimal contact form (JSON only, no subject or
// consent field).
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Message  string `json:"message"`
		Honeypot string `json:"honeypot"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": contact.ReasonInvalid})
	}

	res := h.svc.SubmitLegacy(c.Context(), clientInfo(c), contact.LegacyRequest{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Message:  body.Message,
		Honeypot: body.Honeypot,
	})
	return renderLegacyResult(c, res)
}

func bindInquiry(c fiber.Ctx) (contact.InquiryRequest, bool) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		var body struct {
			Name       string `json:"name"`
			Email      string `json:"email"`
			Phone      string `json:"phone"`
			Subject    string `json:"subject"`
			Message    string `json:"message"`
			ConsentAck any    `json:"consentAck"`
			Honeypot   string `json:"honeypot"`
		}
		if err := c.Bind().JSON(&body); err != nil {
			return contact.InquiryRequest{}, false
		}
		return contact.InquiryRequest{
			Name:       body.Name,
			Email:      body.Email,
			Phone:      body.Phone,
			Subject:    body.Subject,
			Message:    body.Message,
			ConsentAck: consentChecked(body.ConsentAck),
			Honeypot:   body.Honeypot,
		}, true
	}

	return contact.InquiryRequest{
		Name:       c.FormValue("name"),
		Email:      c.FormValue("email"),
		Phone:      c.FormValue("phone"),
		Subject:    c.FormValue("subject"),
		Message:    c.FormValue("message"),
		ConsentAck: consentChecked(c.FormValue("consentAck")),
		Honeypot:   c.FormValue("honeypot"),
	}, true
}

// consentChecked accepts the JSON boolean and the values browsers send for a
// checked checkbox. Anything else is not consent.
func consentChecked(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(t) {
		case "on", "true", "1":
			return true
		}
	}
	return false
}

func clientInfo(c fiber.Ctx) contact.ClientInfo {
	if meta, found := middleware.RequestMetaFromFiber(c); found {
		return contact.ClientInfo{
			ForwardedFor: meta.ForwardedFor,
			RealIP:       meta.RealIP,
			UserAgent:    meta.UserAgent,
		}
	}
	return contact.ClientInfo{
		ForwardedFor: c.Get("X-Forwarded-For"),
		RealIP:       c.Get("X-Real-Ip"),
		UserAgent:    c.Get("User-Agent"),
	}
}

func renderInquiryResult(c fiber.Ctx, res contact.Result) error {
	if res.OK {
		return c.JSON(fiber.Map{"success": true})
	}
	body := fiber.Map{"success": false, "error": res.Reason}
	if len(res.Fields) > 0 {
		body["fields"] = res.Fields
	}
	return c.Status(statusFor(res.Kind)).JSON(body)
}

func renderLegacyResult(c fiber.Ctx, res contact.Result) error {
	if res.OK {
		return c.JSON(fiber.Map{"success": true})
	}
	return c.Status(statusFor(res.Kind)).JSON(fiber.Map{"error": res.Reason})
}

func statusFor(kind contact.FailureKind) int {
	switch kind {
	case contact.FailureInvalid:
		return fiber.StatusBadRequest
	case contact.FailureRateLimited:
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}
