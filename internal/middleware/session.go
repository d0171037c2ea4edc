package middleware

import (
	"strings"

	"quad/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Session tokens are minted by the external auth provider; this layer only
// verifies the HS256 signature and extracts the profile id from the subject
// claim. The core trusts that id; credential checks are out of scope here.

// ResolveSession returns a middleware that, when a valid bearer token is
// present, stores the session profile id in c.Locals("userID"). Requests
// without a token proceed anonymously.
func ResolveSession(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := sessionUserID(c, secret); ok {
			c.Locals("userID", id)
		}
		return c.Next()
	}
}

// RequireSession returns a middleware that rejects requests without a valid
// session token with 401.
func RequireSession(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := sessionUserID(c, secret)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				&models.AppError{Code: "UNAUTHORIZED", Message: "A valid session token is required"})
		}
		c.Locals("userID", id)
		return c.Next()
	}
}

func sessionUserID(c *fiber.Ctx, secret string) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", false
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", false
	}
	return sub, true
}
