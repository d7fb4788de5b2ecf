package validators

import (
	"net"
	"regexp"
	"strings"
	"unicode/utf8"
)

const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsEmailFormatValid(email string) bool {
	return emailPattern.MatchString(email)
}

func IsPasswordValid(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
