package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response (and accepted request) header carrying the id.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber locals key read by logger.WithRayID.
	LocalsKey = "ray_id"
)

// New returns a middleware assigning every request a RayID. An id sent by the
// client in X-Ray-ID is kept; otherwise a UUIDv4 is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := utils.CopyString(c.Get(HeaderName))
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}

// FromContext returns the RayID stored for the request, or "".
func FromContext(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsKey).(string)
	return id
}
