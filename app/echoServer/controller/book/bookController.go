package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/app/echoServer/respond"
	booksvc "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/service/book"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/books
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid JSON payload", nil)
	}
	book, err := h.Svc.Create(c.Request().Context(), booksvc.CreateInput{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		ISBN:        req.ISBN,
		Description: req.Description,
		Copies:      req.Copies,
	})
	if err != nil {
		return respond.BusinessError(c, err)
	}
	return respond.OK(c, http.StatusCreated, "Book created successfully", book)
}

// GET /api/books
func (h *Controller) List(c echo.Context) error {
	var q ListBooksQuery
	if err := c.Bind(&q); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid query parameters", nil)
	}
	limit, err := strconv.ParseInt(q.Limit, 10, 64)
	if err != nil {
		limit = 0 // service applies the default
	}
	books, err := h.Svc.List(c.Request().Context(), booksvc.ListInput{
		Filter: q.Filter,
		SortBy: q.SortBy,
		Sort:   q.Sort,
		Limit:  limit,
	})
	if err != nil {
		return respond.BusinessError(c, err)
	}
	return respond.OK(c, http.StatusOK, "Books retrieved successfully", books)
}

// GET /api/books/:bookId
func (h *Controller) Get(c echo.Context) error {
	book, err := h.Svc.Get(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return respond.BusinessError(c, err)
	}
	return respond.OK(c, http.StatusOK, "Book retrieved successfully", book)
}

// PUT /api/books/:bookId
func (h *Controller) Update(c echo.Context) error {
	var req UpdateBookReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "Invalid JSON payload", nil)
	}
	book, err := h.Svc.Update(c.Request().Context(), c.Param("bookId"), booksvc.UpdateInput{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		ISBN:        req.ISBN,
		Description: req.Description,
		Copies:      req.Copies,
	})
	if err != nil {
		return respond.BusinessError(c, err)
	}
	return respond.OK(c, http.StatusOK, "Book updated successfully", book)
}

// DELETE /api/books/:bookId
func (h *Controller) Delete(c echo.Context) error {
	if err := h.Svc.Delete(c.Request().Context(), c.Param("bookId")); err != nil {
		return respond.BusinessError(c, err)
	}
	return respond.OK(c, http.StatusOK, "Book deleted successfully", nil)
}
