package email

import (
	"strings"
	"testing"
)

func TestBuildMessageValidation(t *testing.T) {
	tests := []struct {
		name string
		from string
		msg  Message
		ok   bool
	}{
		{"complete", "site@example.com", Message{To: []string{"staff@example.com"}, Subject: "Hi", TextBody: "body"}, true},
		{"html only", "site@example.com", Message{To: []string{"staff@example.com"}, Subject: "Hi", HTMLBody: "<p>body</p>"}, true},
		{"missing from", "", Message{Subject: "Hi", TextBody: "body"}, false},
		{"missing subject", "site@example.com", Message{TextBody: "body"}, false},
		{"missing body", "site@example.com", Message{Subject: "Hi"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			if tt.ok && err != nil {
				t.Fatalf("buildMessage() error = %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatal("buildMessage() succeeded, want error")
			}
		})
	}
}

func TestBuildMessageReplyTo(t *testing.T) {
	msg, err := buildMessage("site@example.com", Message{
		To:       []string{"staff@example.com"},
		ReplyTo:  "jane@example.com",
		Subject:  "Hi",
		TextBody: "body",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := msg.GetHeader("Reply-To"); len(got) != 1 || got[0] != "jane@example.com" {
		t.Errorf("Reply-To = %v", got)
	}
}

func TestSendGates(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		c, _ := New(Config{Enabled: false})
		err := c.Send(t.Context(), Message{To: []string{"x@example.com"}, Subject: "s", TextBody: "b"})
		if _, ok := err.(ErrDisabled); !ok {
			t.Fatalf("err = %v, want ErrDisabled", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		c, _ := New(Config{Enabled: true, SMTPUsername: "u"})
		err := c.Send(t.Context(), Message{To: []string{"x@example.com"}, Subject: "s", TextBody: "b"})
		if _, ok := err.(ErrNotConfigured); !ok {
			t.Fatalf("err = %v, want ErrNotConfigured", err)
		}
	})
}

func TestBuildGeneralInquiryUsesSafeFieldsInHTML(t *testing.T) {
	msg := BuildGeneralInquiry(InquiryData{
		SiteName:    "Clinic",
		Name:        `<b>Jane</b>`,
		Email:       "jane@example.com",
		Phone:       "(248) 555-0100",
		Subject:     "Hours",
		Message:     "raw & unescaped",
		SafeName:    "&lt;b&gt;Jane&lt;/b&gt;",
		SafeEmail:   "jane@example.com",
		SafePhone:   "(248) 555-0100",
		SafeSubject: "Hours",
		SafeMessage: "raw &amp; unescaped",
	})

	if msg.Subject != "Website Inquiry — Hours" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if msg.ReplyTo != "jane@example.com" {
		t.Errorf("ReplyTo = %q", msg.ReplyTo)
	}
	if strings.Contains(msg.HTMLBody, "<b>Jane</b>") {
		t.Error("HTML part contains unescaped name")
	}
	if !strings.Contains(msg.HTMLBody, "&lt;b&gt;Jane&lt;/b&gt;") {
		t.Error("HTML part missing escaped name")
	}
	// the plain-text part carries the raw values
	if !strings.Contains(msg.TextBody, "<b>Jane</b>") || !strings.Contains(msg.TextBody, "raw & unescaped") {
		t.Error("text part should carry raw values")
	}
}

func TestBuildLegacyContactSubject(t *testing.T) {
	msg := BuildLegacyContact(InquiryData{SiteName: "Clinic", Name: "Jane", SafeName: "Jane", Message: "m", SafeMessage: "m"})
	if msg.Subject != "New Contact — Jane" {
		t.Errorf("Subject = %q", msg.Subject)
	}
}
