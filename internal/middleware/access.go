package middleware

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
)

// Where the demo access key may be supplied.
const (
	AccessKeyHeader = "X-Demo-Key"
	AccessKeyQuery  = "key"
	AccessKeyCookie = "demo_key"
)

// accessCookieTTL is how long a key given in a link is remembered.
const accessCookieTTL = 30 * 24 * time.Hour

// AccessMiddleware restricts the demo to holders of a shared key.
type AccessMiddleware struct {
	key          string
	secureCookie bool
}

// NewAccessMiddleware creates the middleware. An empty key disables the check.
func NewAccessMiddleware(key string, secureCookie bool) *AccessMiddleware {
	return &AccessMiddleware{key: key, secureCookie: secureCookie}
}

// Enabled reports whether a key is required.
func (m *AccessMiddleware) Enabled() bool {
	return m.key != ""
}

// RequireKey accepts the key from the X-Demo-Key header, the key query
// parameter or the demo_key cookie. A key given in the query string is
// stored in the cookie so shared links keep working while browsing.
func (m *AccessMiddleware) RequireKey(c fiber.Ctx) error {
	if !m.Enabled() {
		return c.Next()
	}

	if m.matches(c.Get(AccessKeyHeader)) || m.matches(c.Cookies(AccessKeyCookie)) {
		return c.Next()
	}

	if m.matches(c.Query(AccessKeyQuery)) {
		c.Cookie(&fiber.Cookie{
			Name:     AccessKeyCookie,
			Value:    m.key,
			Path:     "/",
			Expires:  time.Now().Add(accessCookieTTL),
			Secure:   m.secureCookie,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.Next()
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "Clé d'accès à la démo invalide ou manquante",
		})
	}
	return fiber.NewError(fiber.StatusUnauthorized, "Clé d'accès à la démo invalide ou manquante")
}

func (m *AccessMiddleware) matches(candidate string) bool {
	if candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(m.key)) == 1
}
