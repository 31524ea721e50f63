package contact

import "strings"

// htmlEscaper rewrites the five HTML-reserved characters in a single pass;
// it never rescans its own output, so escaped sequences stay escaped once.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// nl2br converts newlines to line-break markup. Applied after escaping and
// only to the message body of the HTML email part.
func nl2br(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}

// sanitized holds the HTML-safe equivalents of the free-text fields. The
// plain-text email part keeps the original values; they have no
// markup-injection surface there.
type sanitized struct {
	name    string
	email   string
	phone   string
	subject string
	message string
}

func sanitizeFields(name, email, phone, subject, message string) sanitized {
	return sanitized{
		name:    escapeHTML(name),
		email:   escapeHTML(email),
		phone:   escapeHTML(phone),
		subject: escapeHTML(subject),
		message: nl2br(escapeHTML(message)),
	}
}
