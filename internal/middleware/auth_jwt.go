package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/charhateom/qrakhsa/internal/auth"
)

// principalKey is the Locals slot the guards fill for downstream handlers.
const principalKey = "principal"

// Verifier is what the guards need from the token layer.
type Verifier interface {
	Verify(token string) (auth.Principal, error)
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get("Authorization")
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[len("bearer "):])
	return token, token != ""
}

// requireKind verifies the bearer token and checks the principal kind. The
// two token namespaces share a secret but never cross: an employee token on
// an admin route is a plain 401.
func requireKind(tokens Verifier, kind auth.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "access denied - no token provided")
		}
		p, err := tokens.Verify(token)
		if err != nil || p.Kind != kind {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		c.Locals(principalKey, p)
		return c.Next()
	}
}

func RequireAdmin(tokens Verifier) fiber.Handler {
	return requireKind(tokens, auth.KindAdmin)
}

func RequireEmployee(tokens Verifier) fiber.Handler {
	return requireKind(tokens, auth.KindEmployee)
}

// PrincipalFrom returns the guard-verified principal, or false on routes that
// never went through a guard.
func PrincipalFrom(c *fiber.Ctx) (auth.Principal, bool) {
	p, ok := c.Locals(principalKey).(auth.Principal)
	return p, ok
}
