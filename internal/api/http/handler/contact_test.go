package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/healinghandsmipt/website_backend/internal/service/contact"
)

type stubContactService struct {
	result      contact.Result
	lastInquiry contact.InquiryRequest
	lastLegacy  contact.LegacyRequest
	lastClient  contact.ClientInfo
}

func (s *stubContactService) SubmitInquiry(_ context.Context, client contact.ClientInfo, req contact.InquiryRequest) contact.Result {
	s.lastClient = client
	s.lastInquiry = req
	return s.result
}

func (s *stubContactService) SubmitLegacy(_ context.Context, client contact.ClientInfo, req contact.LegacyRequest) contact.Result {
	s.lastClient = client
	s.lastLegacy = req
	return s.result
}

func newContactApp(svc contact.Service) *fiber.App {
	app := fiber.New()
	h := NewContactHandler(svc)
	app.Post("/api/v1/contact/inquiry", h.SubmitInquiry)
	app.Post("/api/v1/contact", h.Submit)
	return app
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return body
}

func TestSubmitInquiryJSON(t *testing.T) {
	svc := &stubContactService{result: contact.Result{OK: true}}
	app := newContactApp(svc)

	req := httptest.NewRequest("POST", "/api/v1/contact/inquiry", strings.NewReader(
		`{"name":"Jane Doe","email":"jane@example.com","phone":"(248) 555-0100","subject":"Billing","message":"A question about my invoice.","consentAck":true}`,
	))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body["success"] != true {
		t.Errorf("body = %v, want success true", body)
	}

	if !svc.lastInquiry.ConsentAck {
		t.Error("ConsentAck not carried through from JSON boolean")
	}
	if svc.lastInquiry.Subject != "Billing" {
		t.Errorf("Subject = %q", svc.lastInquiry.Subject)
	}
	if svc.lastClient.ForwardedFor != "203.0.113.9, 10.0.0.1" {
		t.Errorf("ForwardedFor = %q", svc.lastClient.ForwardedFor)
	}
	if svc.lastClient.UserAgent != "test-agent" {
		t.Errorf("UserAgent = %q", svc.lastClient.UserAgent)
	}
}

func TestSubmitInquiryFormEncoded(t *testing.T) {
	svc := &stubContactService{result: contact.Result{OK: true}}
	app := newContactApp(svc)

	form := url.Values{}
	form.Set("name", "Jane Doe")
	form.Set("email", "jane@example.com")
	form.Set("phone", "2485550100")
	form.Set("subject", "Scheduling")
	form.Set("message", "A question about appointment times.")
	form.Set("consentAck", "on")

	req := httptest.NewRequest("POST", "/api/v1/contact/inquiry", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !svc.lastInquiry.ConsentAck {
		t.Error(`checkbox value "on" should read as consent`)
	}
	if svc.lastInquiry.Name != "Jane Doe" {
		t.Errorf("Name = %q", svc.lastInquiry.Name)
	}
}

func TestSubmitInquiryStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		result     contact.Result
		wantStatus int
	}{
		{"invalid", contact.Result{Kind: contact.FailureInvalid, Reason: contact.ReasonInvalid, Fields: []string{"email"}}, fiber.StatusBadRequest},
		{"rate limited", contact.Result{Kind: contact.FailureRateLimited, Reason: contact.ReasonRateLimited}, fiber.StatusTooManyRequests},
		{"not configured", contact.Result{Kind: contact.FailureNotConfigured, Reason: contact.ReasonNotConfigured}, fiber.StatusInternalServerError},
		{"transport", contact.Result{Kind: contact.FailureTransport, Reason: contact.ReasonServerError}, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubContactService{result: tt.result}
			app := newContactApp(svc)

			req := httptest.NewRequest("POST", "/api/v1/contact/inquiry", strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			body := decodeBody(t, resp.Body)
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}
			if body["error"] != tt.result.Reason {
				t.Errorf("error = %v, want %q", body["error"], tt.result.Reason)
			}
		})
	}
}

func TestSubmitInquiryMalformedJSON(t *testing.T) {
	svc := &stubContactService{result: contact.Result{OK: true}}
	app := newContactApp(svc)

	req := httptest.NewRequest("POST", "/api/v1/contact/inquiry", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSubmitLegacy(t *testing.T) {
	svc := &stubContactService{result: contact.Result{Kind: contact.FailureRateLimited, Reason: contact.ReasonRateLimited}}
	app := newContactApp(svc)

	req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(
		`{"name":"Jane Doe","email":"jane@example.com","phone":"2485550100","message":"Do you take walk-ins on weekdays?"}`,
	))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body["error"] != contact.ReasonRateLimited {
		t.Errorf("error = %v", body["error"])
	}
	if _, present := body["success"]; present {
		t.Error("legacy error body should not carry a success field")
	}
	if svc.lastLegacy.Message != "Do you take walk-ins on weekdays?" {
		t.Errorf("Message = %q", svc.lastLegacy.Message)
	}
}

func TestConsentChecked(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{true, true},
		{false, false},
		{"on", true},
		{"true", true},
		{"1", true},
		{"ON", true},
		{"yes", false},
		{"", false},
		{nil, false},
		{float64(1), false},
	}
	for _, tt := range tests {
		if got := consentChecked(tt.in); got != tt.want {
			t.Errorf("consentChecked(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
