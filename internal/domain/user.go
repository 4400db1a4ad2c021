package domain

import (
	"strings"
	"time"
)

// Role claim names. A claim is either present or absent; there is no
// explicit "false" state — revoking a role deletes the claim.
const (
	RoleAdmin     = "admin"
	RoleQRScanner = "qrScanner"
	RoleWebDev    = "webDev"
	RoleDirector  = "director"
	RoleException = "exception"
)

// ValidRole reports whether name is one of the known role claims.
func ValidRole(name string) bool {
	switch name {
	case RoleAdmin, RoleQRScanner, RoleWebDev, RoleDirector, RoleException:
		return true
	}

	return false
}

type User struct {
	ID        uint            `json:"id"`
	Email     string          `json:"email"`
	Password  string          `json:"-"`
	Name      string          `json:"name"`
	Roles     map[string]bool `json:"roles"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (u User) HasRole(name string) bool {
	return u.Roles[name]
}

func (u User) HasAnyRole(names ...string) bool {
	for _, name := range names {
		if u.Roles[name] {
			return true
		}
	}

	return false
}

// HasInstitutionalEmail reports whether the user's email belongs to the
// given institution domain. The comparison is case-insensitive on the
// full address. Holders of the "exception" claim are exempted from this
// requirement by their callers, not here.
func HasInstitutionalEmail(email, institutionDomain string) bool {
	return strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(institutionDomain))
}
