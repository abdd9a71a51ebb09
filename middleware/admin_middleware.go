package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"job-intake-backend/config"
)

// AdminKeyRequired закрывает админские маршруты статичным токеном.
// Если токен в конфигурации не задан, админка недоступна совсем.
func AdminKeyRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := config.Conf.Admin.APIKey
		if apiKey == "" {
			return c.SendStatus(fiber.StatusForbidden)
		}
		provided := c.Get(fiber.HeaderAuthorization)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			return c.SendStatus(fiber.StatusForbidden)
		}
		return c.Next()
	}
}
