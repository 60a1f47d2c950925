package utils

import (
	"strings"
	"unicode/utf8"
)

// MaskEmail redacts the local part of an address so logs never carry a
// full email. "dana@example.com" becomes "d***@example.com"; input that
// does not look like an email is redacted entirely.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}

	local, domain := email[:at], email[at+1:]
	if utf8.RuneCountInString(local) <= 1 {
		return local + "***@" + domain
	}

	first, _ := utf8.DecodeRuneInString(local)
	return string(first) + "***@" + domain
}
