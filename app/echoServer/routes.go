package echoServer

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	bookctrl "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/app/echoServer/controller/book"
	borrowctrl "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/app/echoServer/controller/borrow"
	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/app/echoServer/respond"
)

type C struct {
	Book   *bookctrl.Controller
	Borrow *borrowctrl.Controller
}

func Register(e *echo.Echo, c C) {
	e.GET("/", root)

	api := e.Group("/api")
	api.GET("/health", health)

	// Books
	api.POST("/books", c.Book.Create)
	api.GET("/books", c.Book.List)
	api.GET("/books/:bookId", c.Book.Get)
	api.PUT("/books/:bookId", c.Book.Update)
	api.DELETE("/books/:bookId", c.Book.Delete)

	// Borrow
	api.POST("/borrow", c.Borrow.Borrow)
	api.GET("/borrow", c.Borrow.Summary)
}

func root(c echo.Context) error {
	return respond.OK(c, http.StatusOK, "Welcome to Library Management API", echo.Map{
		"version":     "1.0.0",
		"description": "A comprehensive library management system",
		"endpoints": echo.Map{
			"books":  "/api/books",
			"borrow": "/api/borrow",
			"health": "/api/health",
		},
	})
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"message":   "Library Management API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
