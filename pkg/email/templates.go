package email

import (
	"fmt"
	"time"
)

// InquiryData carries one contact submission into the email builders.
//
// The Safe* fields are the HTML-escaped equivalents of the raw fields and are
// the only values interpolated into the HTML part. The raw fields feed the
// plain-text part, which has no markup-injection surface.
type InquiryData struct {
	SiteName string

	Name    string
	Email   string
	Phone   string
	Subject string
	Message string

	SafeName    string
	SafeEmail   string
	SafePhone   string
	SafeSubject string
	SafeMessage string
}

// BuildGeneralInquiry composes the staff notification for the general
// inquiries form (the consent-aware variant).
func BuildGeneralInquiry(d InquiryData) Message {
	subject := fmt.Sprintf("Website Inquiry — %s", d.Subject)

	textBody := fmt.Sprintf(`New website general inquiry (users are instructed not to submit medical info).

Name: %s
Email: %s
Phone: %s
Subject: %s

Message:
%s

Sent from: %s`,
		d.Name, d.Email, d.Phone, d.Subject, d.Message, d.SiteName)

	htmlBody := fmt.Sprintf(`<div style="background:#f4f7fb;padding:40px 0;font-family:Arial,sans-serif">
  <table align="center" width="100%%" style="max-width:600px;background:#ffffff;border-radius:12px;overflow:hidden">
    <tr>
      <td style="background:#2563eb;color:#ffffff;padding:24px;text-align:center;font-size:22px;font-weight:bold">
        New Website General Inquiry
      </td>
    </tr>
    <tr>
      <td style="padding:26px 30px">
        <p style="margin:0 0 14px 0;font-size:14px;color:#374151">
          Submitted via the <b>general inquiries</b> form (no medical details requested).
        </p>
        <table width="100%%" style="border-collapse:collapse">
          <tr><td style="padding:10px 0;color:#6b7280;font-size:14px">Name</td><td style="padding:10px 0;font-weight:bold">%s</td></tr>
          <tr><td style="padding:10px 0;color:#6b7280;font-size:14px">Email</td><td style="padding:10px 0;font-weight:bold">%s</td></tr>
          <tr><td style="padding:10px 0;color:#6b7280;font-size:14px">Phone</td><td style="padding:10px 0;font-weight:bold">%s</td></tr>
          <tr><td style="padding:10px 0;color:#6b7280;font-size:14px">Subject</td><td style="padding:10px 0;font-weight:bold">%s</td></tr>
        </table>
        <hr style="border:none;border-top:1px solid #e5e7eb;margin:20px 0"/>
        <p style="font-size:14px;color:#6b7280;margin:0 0 8px 0">Message</p>
        <div style="background:#f9fafb;border-radius:8px;padding:15px;font-size:15px;line-height:1.6;color:#111827">
          %s
        </div>
        <div style="text-align:center;margin-top:24px">
          <a href="mailto:%s" style="background:#2563eb;color:#fff;text-decoration:none;padding:12px 22px;border-radius:8px;font-weight:bold;display:inline-block">
            Reply to %s
          </a>
        </div>
      </td>
    </tr>
    <tr>
      <td style="background:#f9fafb;padding:16px;text-align:center;font-size:12px;color:#9ca3af">
        Sent from %s website contact form.<br/>
        © %d %s
      </td>
    </tr>
  </table>
</div>`,
		d.SafeName, d.SafeEmail, d.SafePhone, d.SafeSubject, d.SafeMessage,
		d.SafeEmail, d.SafeName, d.SiteName, time.Now().Year(), d.SiteName)

	return Message{
		ReplyTo:  d.Email,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildLegacyContact composes the staff notification for the legacy minimal
// contact form (no subject or consent field).
func BuildLegacyContact(d InquiryData) Message {
	subject := fmt.Sprintf("New Contact — %s", d.Name)

	textBody := fmt.Sprintf(`You received a new message from your website contact form.

Name: %s
Email: %s
Phone: %s

Message:
%s

Sent from: %s`,
		d.Name, d.Email, d.Phone, d.Message, d.SiteName)

	htmlBody := fmt.Sprintf(`<div style="background:#f4f7fb;padding:40px 0;font-family:Arial,sans-serif">
  <table align="center" width="100%%" style="max-width:600px;background:#ffffff;border-radius:12px;overflow:hidden">
    <tr>
      <td style="background:#2563eb;color:#ffffff;padding:24px;text-align:center;font-size:22px;font-weight:bold">
        New Website Inquiry
      </td>
    </tr>
    <tr>
      <td style="padding:30px">
        <p style="font-size:16px;margin-bottom:20px">
          You received a new message from your website contact form.
        </p>
        <table width="100%%" style="border-collapse:collapse">
          <tr><td style="padding:10px 0;color:#6b7280;font-size:14px">Name</td><td style="padding:10px 0;font-weight:bold">%s</td></tr>
          <tr><td style="padding:10px 0;color:#6b7280;font-size:14px">Email</td><td style="padding:10px 0;font-weight:bold">%s</td></tr>
          <tr><td style="padding:10px 0;color:#6b7280;font-size:14px">Phone</td><td style="padding:10px 0;font-weight:bold">%s</td></tr>
        </table>
        <hr style="border:none;border-top:1px solid #e5e7eb;margin:25px 0"/>
        <p style="font-size:14px;color:#6b7280;margin-bottom:8px">Message</p>
        <div style="background:#f9fafb;border-radius:8px;padding:15px;font-size:15px;line-height:1.6">
          %s
        </div>
      </td>
    </tr>
    <tr>
      <td style="background:#f9fafb;padding:18px;text-align:center;font-size:12px;color:#9ca3af">
        This email was sent from %s website contact form.<br/>
        © %d %s
      </td>
    </tr>
  </table>
</div>`,
		d.SafeName, d.SafeEmail, d.SafePhone, d.SafeMessage,
		d.SiteName, time.Now().Year(), d.SiteName)

	return Message{
		ReplyTo:  d.Email,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
