package middleware

import (
	"github.com/gofiber/fiber/v2"

	"identityapi/internal/tenant"
)

// TenantLocalKey is the key used to store the tenant domain in Fiber's context locals.
const TenantLocalKey = "tenant"

// Tenant resolves the tenant domain from the :tenant route parameter, falling
// back to def, and stores it in both the locals and the user context.
func Tenant(def string) fiber.Handler {
	if def == "" {
		def = tenant.Default
	}
	return func(c *fiber.Ctx) error {
		td := c.Params("tenant")
		if td == "" {
			td = def
		}
		c.Locals(TenantLocalKey, td)
		c.SetUserContext(tenant.WithTenant(c.UserContext(), td))
		return c.Next()
	}
}
