package handler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bindJSON decodes the request body into dst and validates it.
// On failure it has already written a 400 and returns the write error (usually nil) with ok=false.
func bindJSON(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
	}
	if err := validate.Struct(dst); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", validationMessage(err))
	}
	return true, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
	return "invalid input"
}
