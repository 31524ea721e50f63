package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/nyaruka/phonenumbers"

	"github.com/healinghandsmipt/website_backend/config"
	"github.com/healinghandsmipt/website_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// InquiryRequest is one submission of the general inquiries form. It exists
// only for the duration of the handling call and is never persisted.
type InquiryRequest struct {
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	ConsentAck bool
	Honeypot   string
}

// LegacyRequest is one submission of the legacy minimal contact form, which
// has no subject or consent field.
type LegacyRequest struct {
	Name     string
	Email    string
	Phone    string
	Message  string
	Honeypot string
}

// ClientInfo carries the best-effort client fingerprint inputs captured by
// the HTTP layer. Used solely for rate limiting, not authentication.
type ClientInfo struct {
	ForwardedFor string
	RealIP       string
	UserAgent    string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Mailer is the outbound transport contract the pipeline dispatches through.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
}

type Service interface {
	SubmitInquiry(ctx context.Context, client ClientInfo, req InquiryRequest) Result
	SubmitLegacy(ctx context.Context, client ClientInfo, req LegacyRequest) Result
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	store    AdmitStore
	mailer   Mailer
	emailCfg email.Config
	siteName string
	now      func() time.Time
}

func New(cfg *config.Config, store AdmitStore, mailer Mailer) Service {
	return &contactService{
		store:    store,
		mailer:   mailer,
		emailCfg: email.FromCentralConfig(cfg.Email),
		siteName: cfg.Site.Name,
		now:      time.Now,
	}
}

// SubmitInquiry runs the full pipeline for the consent-aware general form:
// honeypot short-circuit, validation, admission, configuration check,
// sanitize, dispatch.
func (s *contactService) SubmitInquiry(ctx context.Context, client ClientInfo, req InquiryRequest) Result {
	// A tripped honeypot looks like delivery to the caller. No mail is sent.
	if req.Honeypot != "" {
		return success()
	}

	if fields := validateInquiry(req); len(fields) > 0 {
		return invalid(fields)
	}

	if !s.admit(ctx, clientIdentity(client)) {
		return failure(FailureRateLimited)
	}

	if !s.configured() {
		return failure(FailureNotConfigured)
	}

	phone := displayPhone(req.Phone)
	safe := sanitizeFields(req.Name, req.Email, phone, req.Subject, req.Message)

	msg := email.BuildGeneralInquiry(email.InquiryData{
		SiteName:    s.siteName,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       phone,
		Subject:     req.Subject,
		Message:     req.Message,
		SafeName:    safe.name,
		SafeEmail:   safe.email,
		SafePhone:   safe.phone,
		SafeSubject: safe.subject,
		SafeMessage: safe.message,
	})
	msg.To = []string{s.emailCfg.Recipient}

	return s.dispatch(ctx, msg)
}

// SubmitLegacy runs the same pipeline with the legacy field set. Its identity
// key is the address alone, without the user-agent.
func (s *contactService) SubmitLegacy(ctx context.Context, client ClientInfo, req LegacyRequest) Result {
	if req.Honeypot != "" {
		return success()
	}

	if fields := validateLegacy(req); len(fields) > 0 {
		return invalid(fields)
	}

	if !s.admit(ctx, clientAddr(client)) {
		return failure(FailureRateLimited)
	}

	if !s.configured() {
		return failure(FailureNotConfigured)
	}

	phone := displayPhone(req.Phone)
	safe := sanitizeFields(req.Name, req.Email, phone, "", req.Message)

	msg := email.BuildLegacyContact(email.InquiryData{
		SiteName:    s.siteName,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       phone,
		Message:     req.Message,
		SafeName:    safe.name,
		SafeEmail:   safe.email,
		SafePhone:   safe.phone,
		SafeMessage: safe.message,
	})
	msg.To = []string{s.emailCfg.Recipient}

	return s.dispatch(ctx, msg)
}

func (s *contactService) configured() bool {
	return s.emailCfg.Enabled && s.emailCfg.Configured()
}

// admit checks the ledger. Store errors admit the request: the limiter is
// best-effort spam mitigation, not a security boundary.
func (s *contactService) admit(ctx context.Context, identity string) bool {
	ok, err := s.store.Admit(ctx, identity, s.now())
	if err != nil {
		slog.WarnContext(ctx, "contact admit store unavailable, admitting")
		return true
	}
	return ok
}

// dispatch makes the single blocking delivery attempt. Failures collapse to a
// generic result; the underlying error is dropped so submitter-provided
// content cannot reach any log sink.
func (s *contactService) dispatch(ctx context.Context, msg email.Message) Result {
	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.WarnContext(ctx, "contact email dispatch failed")
		return failure(FailureTransport)
	}
	return success()
}

// displayPhone renders the submitted number in national format when it parses
// as a valid US number; anything else passes through untouched.
func displayPhone(raw string) string {
	num, err := phonenumbers.Parse(raw, "US")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}
