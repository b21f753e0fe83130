package rayid_test

import (
	"net/http/httptest"
	"testing"

	"furnidata-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	var seen string
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		seen = rayid.FromContext(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		id := resp.Header.Get(rayid.HeaderName)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.HeaderName, "upstream-id")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "upstream-id", resp.Header.Get(rayid.HeaderName))
		assert.Equal(t, "upstream-id", seen)
	})
}
