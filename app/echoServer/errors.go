package echoServer

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/app/echoServer/respond"
	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/util/apperr"
)

// ErrorHandler is the terminal translation layer: anything a controller did
// not map lands here. Unmatched routes get the 404 envelope, escaped business
// errors get their usual mapping, the rest becomes a 500 with the raw error
// attached for diagnostics.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
				_ = respond.Fail(c, http.StatusNotFound,
					fmt.Sprintf("Route %s not found", c.Request().URL.Path), nil)
				return
			}
			_ = respond.Fail(c, he.Code, fmt.Sprintf("%v", he.Message), nil)
			return
		}

		if apperr.CodeOf(err) != "" {
			_ = respond.BusinessError(c, err)
			return
		}

		log.Error("unhandled error", "err", err, "path", c.Request().URL.Path)
		_ = respond.Fail(c, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
