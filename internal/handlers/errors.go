package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"questify/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// newValidate builds a validator that reports fields by their json
// names, so violation messages match the wire format.
func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// missingFieldMessage renders the first required-field violation as the
// client-facing message naming the offending field.
func missingFieldMessage(err error) (string, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("Missing '%s' in request body", verrs[0].Field()), true
	}
	return "", false
}

// currentUserID reads the authenticated user id attached by the auth
// middleware. Handlers behind AuthRequired may trust it.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(middleware.UserIDKey).(uint)
	return id
}

// parseIDParam parses a positive numeric path parameter. Anything else
// is treated as a resource that does not exist.
func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
