package identity

import "strings"

// TenantMatch reports whether data scoped to candidateTenantID may be shown
// in a session scoped to sessionTenantID. A missing identifier on either
// side cannot prove a mismatch, so it passes; only two present, different
// identifiers fail.
//
// A failed match is stale cache, not an error: the caller invalidates the
// cached tenant namespace, logs the event and re-derives display data from
// the session source alone. No user-facing error is raised for this.
func TenantMatch(sessionTenantID, candidateTenantID string) bool {
	session := strings.TrimSpace(sessionTenantID)
	candidate := strings.TrimSpace(candidateTenantID)
	if session == "" || candidate == "" {
		return true
	}

	return session == candidate
}
