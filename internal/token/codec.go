// Package token decodes compact bearer tokens without verifying their
// signature. The browser-equivalent of this code cannot hold the signing
// secret, so decoded claims are only ever used for optimistic display; all
// authorization is re-checked by the remote API on every request.
package token

import (
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/propdesk/propdesk/internal/models"
	"go.uber.org/zap"
)

// Codec decodes three-segment compact tokens. Every method is total:
// malformed input degrades to nil claims, "expired", or empty fields and is
// never surfaced as an error or panic.
type Codec struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewCodec creates a codec. A nil logger disables decode diagnostics.
func NewCodec(logger *zap.Logger) *Codec {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Codec{logger: logger, now: time.Now}
}

// Decode parses the payload segment of a compact token into a claims map.
// Returns nil for anything that is not three base64url segments carrying
// valid JSON. The signature segment is never checked.
func (c *Codec) Decode(raw string) Claims {
	if raw == "" {
		return nil
	}

	tok, err := jwt.ParseInsecure([]byte(raw))
	if err != nil {
		c.logger.Debug("token_decode_failed", zap.Error(err))
		return nil
	}

	claims := Claims(tok.PrivateClaims())
	if claims == nil {
		claims = make(Claims)
	}
	if sub := tok.Subject(); sub != "" {
		claims["sub"] = sub
	}
	if exp := tok.Expiration(); !exp.IsZero() {
		claims["exp"] = exp
	}
	if iat := tok.IssuedAt(); !iat.IsZero() {
		claims["iat"] = iat
	}
	return claims
}

// IsExpired reports whether the token's exp claim is strictly in the past.
// Fails closed: undecodable tokens and tokens without exp count as expired.
func (c *Codec) IsExpired(raw string) bool {
	claims := c.Decode(raw)
	if claims == nil {
		return true
	}
	exp, ok := claims.Expiration()
	if !ok {
		return true
	}
	return exp.Before(c.now())
}

// ExtractUserInfo derives the UI-facing identity record from a live token.
// Returns nil if the token is expired or undecodable. Each field resolves
// through its claim chain independently; a missing claim leaves the field
// empty rather than failing the whole extraction.
func (c *Codec) ExtractUserInfo(raw string) *models.UserInfo {
	if c.IsExpired(raw) {
		return nil
	}
	claims := c.Decode(raw)
	if claims == nil {
		return nil
	}

	info := &models.UserInfo{
		UserID:    resolve(claims, userIDSources),
		FirstName: resolve(claims, firstNameSources),
		LastName:  resolve(claims, lastNameSources),
		Email:     resolve(claims, emailSources),
		UserName:  resolve(claims, userNameSources),
		Role:      resolve(claims, roleSources),
	}
	if info.UserName == "" {
		info.UserName = info.Email
	}
	return info
}
