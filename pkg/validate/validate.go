package validate

import (
	"net/mail"
	"strings"
)

// IsEmail reports whether s is a plain, well-formed address. Display names
// ("Name <a@b>") are rejected.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s, "@")
}
