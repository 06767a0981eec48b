package helpers

import "github.com/gofiber/fiber/v2"

// Every endpoint answers with the same {code, message, data} envelope;
// data always carries a machine-readable status tag.

func JSONSuccess(c *fiber.Ctx, message string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["status"] = "success"
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":    fiber.StatusOK,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, status int, message, tag string, extra fiber.Map) error {
	data := fiber.Map{"status": tag}
	for k, v := range extra {
		data[k] = v
	}
	return c.Status(status).JSON(fiber.Map{
		"code":    status,
		"message": message,
		"data":    data,
	})
}
