// Package handler contains the HTTP handlers. Handlers parse and validate
// input, call into the services, and shape responses; they hold no business
// rules of their own.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/enzel-org/BestellDesk/internal/common"
)

// JSONResponse writes a JSON body with an explicit utf-8 charset so umlauts
// in names and dishes render correctly everywhere.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleResponse writes the unified response envelope: either the error
// mapped through the common taxonomy, or a success envelope around data.
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return HandleError(c, err)
	}
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"status":  "success",
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
	})
}

// HandleError writes the error envelope for a *common.Error, falling back to
// an internal server error for anything unclassified.
func HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"status":  "error",
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
		})
	}
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"status":  "error",
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalError,
	})
}

// RedirectAfterForm sends the post-form redirect back to an admin page. 303
// turns the browser's follow-up request into a GET.
func RedirectAfterForm(c fiber.Ctx, location string) error {
	return c.Redirect().Status(fiber.StatusSeeOther).To(location)
}
