package helper

import "strings"

// IsUniqueViolation reports whether err came from a unique index the DB
// enforced for us. The pre-insert existence checks give clients a clean
// message; the constraint stays authoritative under concurrent requests.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "sqlstate 23505")
}
