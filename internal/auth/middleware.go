package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/verve-admin/pkg/util"
)

const sessionKey = "auth_session"

// Session represents an established admin session. The identity provider
// behind it is opaque: a session either exists or it does not.
type Session struct {
	Email string
}

// SessionGate validates bearer tokens for every admin-facing route.
type SessionGate struct {
	tokens *TokenManager
}

// NewSessionGate constructs the gate middleware.
func NewSessionGate(tokens *TokenManager) *SessionGate {
	return &SessionGate{tokens: tokens}
}

// Handle enforces the presence of a valid session.
func (g *SessionGate) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := g.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(sessionKey, &Session{Email: claims.Email})
	return c.Next()
}

// SessionFromContext retrieves the established session, if any.
func SessionFromContext(c *fiber.Ctx) (*Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*Session)
	return session, ok
}
