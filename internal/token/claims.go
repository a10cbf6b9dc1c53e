package token

import (
	"strings"
	"time"
)

// ASP.NET Identity emits long-form namespaced claim keys. These take
// priority over the short-form equivalents when both are present.
const (
	ClaimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimEmailAddress   = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
	ClaimGivenName      = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/givenname"
	ClaimSurname        = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/surname"
	ClaimRole           = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
)

// Claims is the decoded payload of a bearer token. Values are whatever the
// payload JSON carried; registered time claims are normalized to time.Time.
type Claims map[string]any

// String returns the named claim as a string, or false if the claim is
// absent or not a string.
func (c Claims) String(key string) (string, bool) {
	v, ok := c[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Expiration returns the exp claim, or false if the token carries none.
func (c Claims) Expiration() (time.Time, bool) {
	v, ok := c["exp"]
	if !ok {
		return time.Time{}, false
	}
	t, ok := v.(time.Time)
	if !ok || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// lookup resolves one identity field from the claims map. Implementations
// return false when the claim cannot supply a value; resolution moves on to
// the next source in the chain.
type lookup func(Claims) (string, bool)

func fromKey(key string) lookup {
	return func(c Claims) (string, bool) {
		return c.String(key)
	}
}

// fromNamePart splits the composite "name" claim on spaces and picks one
// word, mirroring backends that only issue a display name.
func fromNamePart(idx int) lookup {
	return func(c Claims) (string, bool) {
		name, ok := c.String("name")
		if !ok {
			return "", false
		}
		parts := strings.Fields(name)
		if idx >= len(parts) {
			return "", false
		}
		return parts[idx], true
	}
}

// Per-field resolution chains, evaluated in order: namespaced identity URI
// first, then short-form claims, then aliases. First defined value wins.
var (
	userIDSources = []lookup{
		fromKey(ClaimNameIdentifier),
		fromKey("userId"),
		fromKey("sub"),
		fromKey("id"),
	}
	firstNameSources = []lookup{
		fromKey(ClaimGivenName),
		fromKey("firstName"),
		fromKey("given_name"),
		fromNamePart(0),
	}
	lastNameSources = []lookup{
		fromKey(ClaimSurname),
		fromKey("lastName"),
		fromKey("family_name"),
		fromNamePart(1),
	}
	emailSources = []lookup{
		fromKey(ClaimEmailAddress),
		fromKey("email"),
		fromKey("sub"),
	}
	userNameSources = []lookup{
		fromKey(ClaimEmailAddress),
		fromKey("userName"),
		fromKey("preferred_username"),
	}
	roleSources = []lookup{
		fromKey(ClaimRole),
		fromKey("role"),
	}
)

func resolve(c Claims, sources []lookup) string {
	for _, src := range sources {
		if v, ok := src(c); ok {
			return v
		}
	}
	return ""
}
