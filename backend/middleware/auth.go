package middleware

import (
	"errors"

	"horsera/backend/config"
	"horsera/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// AuthMiddleware verifies the bearer token and stores its claims on the
// request. A missing header is unauthenticated (401); a malformed or
// expired token is forbidden (403).
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractTokenClaims(c, cfg)
		if err != nil {
			if errors.Is(err, utils.ErrMissingToken) {
				return utils.Unauthorized(c, err.Error())
			}
			return utils.Forbidden(c, err.Error())
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// AdminMiddleware gates a route on the admin role. Must run after
// AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil || claims.Role != utils.RoleAdmin {
			return utils.Forbidden(c, "Access denied. Not an admin")
		}
		return c.Next()
	}
}

// Claims returns the verified token claims AuthMiddleware stored, or nil.
func Claims(c *fiber.Ctx) *utils.TokenClaims {
	claims, _ := c.Locals(claimsKey).(*utils.TokenClaims)
	return claims
}
