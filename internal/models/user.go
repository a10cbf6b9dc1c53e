package models

// UserInfo is the UI-facing identity record derived from the login response
// and the bearer token's claims. Every field is optional: a missing claim
// leaves the field empty rather than failing.
type UserInfo struct {
	UserID    string `json:"userId,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	UserName  string `json:"userName,omitempty"`
	Role      string `json:"role,omitempty"`
}

// Complete reports whether all identity fields are populated. Incomplete
// records are candidates for a one-time backfill from the token's claims.
// Role is deliberately not part of the check: many backends issue tokens
// without a role claim, and the field is optional display data, so a missing
// role must not trigger repeated backfill attempts.
func (u *UserInfo) Complete() bool {
	if u == nil {
		return false
	}
	return u.UserID != "" && u.FirstName != "" && u.LastName != "" &&
		u.Email != "" && u.UserName != ""
}

// Session pairs the raw bearer token with the derived user info.
type Session struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}
