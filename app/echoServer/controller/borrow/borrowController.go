package borrow

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/app/echoServer/respond"
	borrowsvc "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/service/borrow"
)

type Controller struct {
	Svc borrowsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/borrow
func (h *Controller) Borrow(c echo.Context) error {
	var req BorrowBookReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid JSON payload", nil)
	}
	if err := h.V.Struct(req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Validation failed", err.Error())
	}
	rec, err := h.Svc.Borrow(c.Request().Context(), req.Book, req.Quantity, req.DueDate)
	if err != nil {
		return respond.BusinessError(c, err)
	}
	return respond.OK(c, http.StatusCreated, "Book borrowed successfully", rec)
}

// GET /api/borrow
func (h *Controller) Summary(c echo.Context) error {
	rows, err := h.Svc.Summary(c.Request().Context())
	if err != nil {
		return respond.BusinessError(c, err)
	}
	return respond.OK(c, http.StatusOK, "Borrowed books summary retrieved successfully", rows)
}
