// Package middleware provides the request guards applied ahead of the
// dashboard handlers.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ayoo/internal/logger"
	"ayoo/internal/models"
	"ayoo/internal/services/auth"
	"ayoo/internal/utils"
)

// SignInLocation is where unauthenticated clients are sent.
const SignInLocation = "/auth/signin"

// AuthMiddleware validates bearer tokens and loads the caller's claims
// into the request context. It does not gate on onboarding completeness;
// that is RequireOnboarded's job.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Handler checks for a Bearer token, a valid signature, an unexpired
// token, a matching token version and an existing user, then stores the
// claims in the context.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := utils.ParseToken(tokenString)
	if err != nil {
		logger.Sugar().Debugw("token validation failed", "error", err)
		return unauthorized(c, "invalid token")
	}

	currentVersion, err := m.authService.GetUserTokenVersion(claims.UserID)
	if err != nil {
		return unauthorized(c, "invalid token")
	}
	if claims.TokenVersion != currentVersion {
		return unauthorized(c, "session expired")
	}

	user, err := m.authService.GetUserByID(claims.UserID)
	if err != nil {
		return unauthorized(c, "invalid token")
	}

	c.Locals("claims", claims)
	c.Locals("user", user)

	return c.Next()
}

// Claims extracts the validated claims stored by Handler.
func Claims(c *fiber.Ctx) (*models.UserClaims, bool) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	return claims, ok
}

// CurrentUser extracts the account loaded by Handler. It reflects the
// database at request time, not the token, so a merchant id assigned
// after the token was issued is still visible.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":    message,
		"location": SignInLocation,
	})
}
