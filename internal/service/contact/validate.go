package contact

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation is pure: it never touches the admit store or the mail transport.

var phonePattern = regexp.MustCompile(`^[0-9()\-\s+]+$`)

func validateInquiry(req InquiryRequest) []string {
	var bad []string
	if !lengthBetween(req.Name, 2, 100) {
		bad = append(bad, "name")
	}
	if !validEmail(req.Email) {
		bad = append(bad, "email")
	}
	if !validPhone(req.Phone) {
		bad = append(bad, "phone")
	}
	if !lengthBetween(req.Subject, 2, 120) {
		bad = append(bad, "subject")
	}
	if !lengthBetween(req.Message, 5, 1000) {
		bad = append(bad, "message")
	}
	if !req.ConsentAck {
		bad = append(bad, "consentAck")
	}
	if req.Honeypot != "" {
		bad = append(bad, "honeypot")
	}
	return bad
}

func validateLegacy(req LegacyRequest) []string {
	var bad []string
	if !lengthBetween(req.Name, 2, 100) {
		bad = append(bad, "name")
	}
	if !validEmail(req.Email) {
		bad = append(bad, "email")
	}
	if !validPhone(req.Phone) {
		bad = append(bad, "phone")
	}
	if !lengthBetween(req.Message, 10, 1000) {
		bad = append(bad, "message")
	}
	if req.Honeypot != "" {
		bad = append(bad, "honeypot")
	}
	return bad
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func validEmail(s string) bool {
	if s == "" || !lengthBetween(s, 3, 254) {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	// Require a dotted domain; bare hostnames are refused.
	at := strings.LastIndex(s, "@")
	return strings.Contains(s[at+1:], ".")
}

func validPhone(s string) bool {
	return lengthBetween(s, 10, 20) && phonePattern.MatchString(s)
}
