package contact

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/healinghandsmipt/website_backend/pkg/email"
)

type mailerSpy struct {
	calls []email.Message
	err   error
}

func (m *mailerSpy) Send(_ context.Context, msg email.Message) error {
	m.calls = append(m.calls, msg)
	return m.err
}

func testEmailConfig() email.Config {
	return email.Config{
		Enabled:      true,
		From:         "Website General Inquiry <forms@clinic.test>",
		Recipient:    "frontdesk@clinic.test",
		SMTPHost:     "smtp.clinic.test",
		SMTPPort:     465,
		SMTPUsername: "forms@clinic.test",
		SMTPPassword: "secret",
	}
}

func newTestService(spy *mailerSpy) *contactService {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &contactService{
		store:    NewMemoryStore(15*time.Second, time.Hour, 5000),
		mailer:   spy,
		emailCfg: testEmailConfig(),
		siteName: "Healing Hands Physical Therapy Associates LLC",
		now:      func() time.Time { return base },
	}
}

func validInquiryRequest() InquiryRequest {
	return InquiryRequest{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "(248) 555-0101",
		Subject:    "Billing question",
		Message:    "Do you accept my insurance?",
		ConsentAck: true,
	}
}

func TestSubmitInquiry_Success(t *testing.T) {
	spy := &mailerSpy{}
	svc := newTestService(spy)

	res := svc.SubmitInquiry(context.Background(), ClientInfo{ForwardedFor: "203.0.113.7", UserAgent: "ua"}, validInquiryRequest())

	if !res.OK {
		t.Fatalf("expected success, got %+v", res)
	}
	if len(spy.calls) != 1 {
		t.Fatalf("expected exactly one dispatch, got %d", len(spy.calls))
	}

	msg := spy.calls[0]
	if msg.ReplyTo != "jane@example.com" {
		t.Errorf("reply-to = %q, want submitter address", msg.ReplyTo)
	}
	if !strings.Contains(msg.Subject, "Billing question") {
		t.Errorf("subject %q does not embed the submission subject", msg.Subject)
	}
	if len(msg.To) != 1 || msg.To[0] != "frontdesk@clinic.test" {
		t.Errorf("to = %v, want the configured recipient", msg.To)
	}
	if msg.TextBody == "" || msg.HTMLBody == "" {
		t.Error("expected dual plain-text and HTML bodies")
	}
}

func TestSubmitInquiry_HoneypotShortCircuits(t *testing.T) {
	spy := &mailerSpy{}
	svc := newTestService(spy)

	req := validInquiryRequest()
	req.Honeypot = "http://spam.example"

	res := svc.SubmitInquiry(context.Background(), ClientInfo{}, req)

	if !res.OK {
		t.Fatalf("honeypot trip must look like success, got %+v", res)
	}
	if len(spy.calls) != 0 {
		t.Fatalf("transport invoked %d times for a honeypot trip", len(spy.calls))
	}
}

func TestSubmitInquiry_RateLimitWindow(t *testing.T) {
	spy := &mailerSpy{}
	svc := newTestService(spy)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	client := ClientInfo{ForwardedFor: "203.0.113.7", UserAgent: "ua"}

	if res := svc.SubmitInquiry(context.Background(), client, validInquiryRequest()); !res.OK {
		t.Fatalf("first call: %+v", res)
	}

	now = now.Add(5 * time.Second)
	res := svc.SubmitInquiry(context.Background(), client, validInquiryRequest())
	if res.OK || res.Kind != FailureRateLimited {
		t.Fatalf("second call inside window: %+v, want rate-limit failure", res)
	}
	if res.Reason != ReasonRateLimited {
		t.Errorf("reason = %q", res.Reason)
	}

	now = now.Add(16 * time.Second)
	if res := svc.SubmitInquiry(context.Background(), client, validInquiryRequest()); !res.OK {
		t.Fatalf("call after window elapsed: %+v", res)
	}

	if len(spy.calls) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(spy.calls))
	}
}

func TestSubmitInquiry_DistinctIdentitiesDoNotCollide(t *testing.T) {
	spy := &mailerSpy{}
	svc := newTestService(spy)

	a := ClientInfo{ForwardedFor: "203.0.113.7", UserAgent: "ua"}
	b := ClientInfo{ForwardedFor: "203.0.113.8", UserAgent: "ua"}

	if res := svc.SubmitInquiry(context.Background(), a, validInquiryRequest()); !res.OK {
		t.Fatalf("client a: %+v", res)
	}
	if res := svc.SubmitInquiry(context.Background(), b, validInquiryRequest()); !res.OK {
		t.Fatalf("client b: %+v", res)
	}
}

func TestSubmitInquiry_InvalidNeverDispatches(t *testing.T) {
	spy := &mailerSpy{}
	svc := newTestService(spy)

	req := validInquiryRequest()
	req.Message = ""

	res := svc.SubmitInquiry(context.Background(), ClientInfo{}, req)

	if res.OK || res.Kind != FailureInvalid {
		t.Fatalf("got %+v, want validation failure", res)
	}
	if res.Reason != ReasonInvalid {
		t.Errorf("reason = %q", res.Reason)
	}
	if len(res.Fields) == 0 || res.Fields[0] != "message" {
		t.Errorf("fields = %v, want [message]", res.Fields)
	}
	if len(spy.calls) != 0 {
		t.Fatal("transport invoked for invalid input")
	}
}

func TestSubmitInquiry_SanitizesHTMLPartOnly(t *testing.T) {
	spy := &mailerSpy{}
	svc := newTestService(spy)

	req := validInquiryRequest()
	req.Message = "<script>alert(1)</script> & more\nsecond line"

	res := svc.SubmitInquiry(context.Background(), ClientInfo{}, req)
	if !res.OK {
		t.Fatalf("got %+v", res)
	}

	html := spy.calls[0].HTMLBody
	for _, want := range []string{"&lt;script&gt;", "&amp; more", "second line", "<br>"} {
		if !strings.Contains(html, want) {
			t.Errorf("html body missing %q", want)
		}
	}
	if strings.Contains(html, "<script>") {
		t.Error("html body contains a literal <script> tag")
	}

	// The text part has no markup surface and keeps the raw value.
	if !strings.Contains(spy.calls[0].TextBody, "<script>alert(1)</script>") {
		t.Error("text body should carry the original message unescaped")
	}
}

func TestSubmitInquiry_NotConfigured(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*email.Config)
	}{
		{"missing username", func(c *email.Config) { c.SMTPUsername = "" }},
		{"missing password", func(c *email.Config) { c.SMTPPassword = "" }},
		{"missing recipient", func(c *email.Config) { c.Recipient = "" }},
		{"disabled", func(c *email.Config) { c.Enabled = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &mailerSpy{}
			svc := newTestService(spy)
			tt.mutate(&svc.emailCfg)

			res := svc.SubmitInquiry(context.Background(), ClientInfo{}, validInquiryRequest())

			if res.OK || res.Kind != FailureNotConfigured {
				t.Fatalf("got %+v, want not-configured failure", res)
			}
			if res.Reason != ReasonNotConfigured {
				t.Errorf("reason = %q", res.Reason)
			}
			if len(spy.calls) != 0 {
				t.Fatal("transport invoked despite missing configuration")
			}
		})
	}
}

func TestSubmitInquiry_TransportFailure(t *testing.T) {
	spy := &mailerSpy{err: email.ErrSend{Provider: "gomail/smtp"}}
	svc := newTestService(spy)

	res := svc.SubmitInquiry(context.Background(), ClientInfo{}, validInquiryRequest())

	if res.OK || res.Kind != FailureTransport {
		t.Fatalf("got %+v, want transport failure", res)
	}
	if res.Reason != ReasonServerError {
		t.Errorf("reason = %q, transport detail must not surface", res.Reason)
	}
	if len(spy.calls) != 1 {
		t.Fatalf("expected exactly one delivery attempt, got %d", len(spy.calls))
	}
}

func TestSubmitLegacy(t *testing.T) {
	spy := &mailerSpy{}
	svc := newTestService(spy)

	req := LegacyRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "(248) 555-0101",
		Message: "Do you accept my insurance plan?",
	}

	res := svc.SubmitLegacy(context.Background(), ClientInfo{ForwardedFor: "203.0.113.7"}, req)
	if !res.OK {
		t.Fatalf("got %+v", res)
	}
	if len(spy.calls) != 1 {
		t.Fatalf("expected one dispatch, got %d", len(spy.calls))
	}
	if !strings.Contains(spy.calls[0].Subject, "Jane Doe") {
		t.Errorf("legacy subject %q should embed the submitter name", spy.calls[0].Subject)
	}
}

func TestSubmitLegacy_ShortMessageInvalid(t *testing.T) {
	spy := &mailerSpy{}
	svc := newTestService(spy)

	// 9 runes: under the legacy minimum of 10, above the general minimum of 5.
	req := LegacyRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "(248) 555-0101",
		Message: "hi please",
	}

	res := svc.SubmitLegacy(context.Background(), ClientInfo{}, req)
	if res.OK || res.Kind != FailureInvalid {
		t.Fatalf("got %+v, want validation failure", res)
	}
}

func TestAdmitStoreErrorAdmits(t *testing.T) {
	spy := &mailerSpy{}
	svc := newTestService(spy)
	svc.store = failingStore{}

	res := svc.SubmitInquiry(context.Background(), ClientInfo{}, validInquiryRequest())
	if !res.OK {
		t.Fatalf("store outage should not deny submissions, got %+v", res)
	}
}

type failingStore struct{}

func (failingStore) Admit(context.Context, string, time.Time) (bool, error) {
	return false, context.DeadlineExceeded
}

func TestDisplayPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(248) 555-0101", "(248) 555-0101"},
		{"2485550101", "(248) 555-0101"},
		{"+1 248 555 0101", "(248) 555-0101"},
		{"not-a-number--", "not-a-number--"},
	}
	for _, tt := range tests {
		if got := displayPhone(tt.in); got != tt.want {
			t.Errorf("displayPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
