// Package respond renders the uniform response envelope:
// {success, message, data?} on success and {success, message, error?} on
// failure.
package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/util/apperr"
)

type Success struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type Failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   any    `json:"error,omitempty"`
}

func OK(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Success{Success: true, Message: message, Data: data})
}

func Fail(c echo.Context, status int, message string, errObj any) error {
	return c.JSON(status, Failure{Success: false, Message: message, Error: errObj})
}

// BusinessError maps a coded business error onto the envelope. Unclassified
// errors are returned unchanged so the terminal error handler deals with them.
func BusinessError(c echo.Context, err error) error {
	code := apperr.CodeOf(err)
	if code == "" {
		return err
	}
	status := http.StatusBadRequest
	if code == apperr.CodeNotFound {
		status = http.StatusNotFound
	}
	return Fail(c, status, err.Error(), apperr.DetailsOf(err))
}
