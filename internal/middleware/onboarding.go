package middleware

import (
	"github.com/gofiber/fiber/v2"

	"ayoo/internal/models"
)

// Locations the onboarding guards point blocked clients at.
const (
	OnboardingLocation = "/onboarding"
	DashboardLocation  = "/dashboard"
)

// CompletenessPredicate decides whether a user has finished store setup.
type CompletenessPredicate func(u *models.User) bool

// SetupCompleted is the authoritative predicate: the explicit flag written
// when onboarding completes. The merchant-id-and-store-name heuristic the
// dashboard once used alongside it is intentionally gone.
func SetupCompleted(u *models.User) bool {
	return u.StoreSetupCompleted
}

// OnboardingGate gates routes on a completeness predicate. One gate
// instance serves every dashboard route instead of each screen
// re-checking on its own. It runs behind AuthMiddleware and reads the
// user that middleware loaded.
type OnboardingGate struct {
	predicate CompletenessPredicate
}

func NewOnboardingGate(predicate CompletenessPredicate) *OnboardingGate {
	return &OnboardingGate{
		predicate: predicate,
	}
}

// RequireOnboarded blocks users who have not completed store setup before
// any data is fetched, pointing them at the onboarding flow.
func (g *OnboardingGate) RequireOnboarded(c *fiber.Ctx) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":    "unauthorized",
			"location": SignInLocation,
		})
	}

	if !g.predicate(user) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":    "store setup incomplete",
			"location": OnboardingLocation,
		})
	}

	return c.Next()
}

// RequireNotOnboarded protects the onboarding operation itself: a user
// who already completed setup is pointed back at the dashboard without
// the handler running.
func (g *OnboardingGate) RequireNotOnboarded(c *fiber.Ctx) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":    "unauthorized",
			"location": SignInLocation,
		})
	}

	if g.predicate(user) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":    "store setup already completed",
			"location": DashboardLocation,
		})
	}

	return c.Next()
}
