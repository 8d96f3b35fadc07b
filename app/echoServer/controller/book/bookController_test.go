package book_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	bookctrl "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/app/echoServer/controller/book"
	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/model"
	booksvc "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/service/book"
	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/util/apperr"
)

type svcMock struct {
	createFn func(ctx context.Context, in booksvc.CreateInput) (*model.Book, error)
	listFn   func(ctx context.Context, in booksvc.ListInput) ([]model.Book, error)
	getFn    func(ctx context.Context, id string) (*model.Book, error)
	updateFn func(ctx context.Context, id string, in booksvc.UpdateInput) (*model.Book, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *svcMock) Create(ctx context.Context, in booksvc.CreateInput) (*model.Book, error) {
	return m.createFn(ctx, in)
}
func (m *svcMock) List(ctx context.Context, in booksvc.ListInput) ([]model.Book, error) {
	return m.listFn(ctx, in)
}
func (m *svcMock) Get(ctx context.Context, id string) (*model.Book, error) { return m.getFn(ctx, id) }
func (m *svcMock) Update(ctx context.Context, id string, in booksvc.UpdateInput) (*model.Book, error) {
	return m.updateFn(ctx, id, in)
}
func (m *svcMock) Delete(ctx context.Context, id string) error { return m.deleteFn(ctx, id) }

func newController(svc booksvc.Service) *bookctrl.Controller {
	return &bookctrl.Controller{
		Svc: svc,
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	require.NoError(t, h(c))

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestCreate_Created(t *testing.T) {
	m := &svcMock{createFn: func(ctx context.Context, in booksvc.CreateInput) (*model.Book, error) {
		require.Equal(t, "X", in.Title)
		require.NotNil(t, in.Copies)
		require.Equal(t, 2, *in.Copies)
		return &model.Book{ID: primitive.NewObjectID(), Title: in.Title, Available: true}, nil
	}}
	h := newController(m)

	rec, env := doJSON(t, h.Create, http.MethodPost, "/api/books",
		`{"title":"X","author":"Y","genre":"FICTION","isbn":"111","copies":2}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, true, env["success"])
	require.Equal(t, "Book created successfully", env["message"])
	data := env["data"].(map[string]any)
	require.Equal(t, true, data["available"])
}

func TestCreate_ValidationError(t *testing.T) {
	m := &svcMock{createFn: func(ctx context.Context, in booksvc.CreateInput) (*model.Book, error) {
		return nil, apperr.Validation(map[string]string{"title": "Title is required"})
	}}
	h := newController(m)

	rec, env := doJSON(t, h.Create, http.MethodPost, "/api/books", `{}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, false, env["success"])
	require.Equal(t, "Validation failed", env["message"])
	errObj := env["error"].(map[string]any)
	require.Equal(t, "ValidationError", errObj["name"])
}

func TestGet_MalformedIDIs400Not404(t *testing.T) {
	m := &svcMock{getFn: func(ctx context.Context, id string) (*model.Book, error) {
		require.Equal(t, "abc", id)
		return nil, apperr.InvalidID()
	}}
	h := newController(m)

	rec, env := doJSON(t, h.Get, http.MethodGet, "/api/books/abc", "", map[string]string{"bookId": "abc"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid book ID format", env["message"])
}

func TestGet_NotFound(t *testing.T) {
	m := &svcMock{getFn: func(ctx context.Context, id string) (*model.Book, error) {
		return nil, apperr.NotFound("Book")
	}}
	h := newController(m)

	id := primitive.NewObjectID().Hex()
	rec, env := doJSON(t, h.Get, http.MethodGet, "/api/books/"+id, "", map[string]string{"bookId": id})

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, false, env["success"])
	require.Equal(t, "Book not found", env["message"])
}

func TestList_QueryParamsForwarded(t *testing.T) {
	m := &svcMock{listFn: func(ctx context.Context, in booksvc.ListInput) ([]model.Book, error) {
		require.Equal(t, booksvc.ListInput{Filter: "SCIENCE", SortBy: "title", Sort: "desc", Limit: 5}, in)
		return []model.Book{}, nil
	}}
	h := newController(m)

	rec, env := doJSON(t, h.List, http.MethodGet, "/api/books?filter=SCIENCE&sortBy=title&sort=desc&limit=5", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Books retrieved successfully", env["message"])
	require.NotNil(t, env["data"])
}

func TestUpdate_DuplicateISBN(t *testing.T) {
	m := &svcMock{updateFn: func(ctx context.Context, id string, in booksvc.UpdateInput) (*model.Book, error) {
		return nil, apperr.Duplicate("isbn", "111")
	}}
	h := newController(m)

	id := primitive.NewObjectID().Hex()
	rec, env := doJSON(t, h.Update, http.MethodPut, "/api/books/"+id,
		`{"isbn":"111"}`, map[string]string{"bookId": id})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Duplicate entry", env["message"])
	errObj := env["error"].(map[string]any)
	require.Equal(t, "isbn", errObj["field"])
}

func TestDelete_NullData(t *testing.T) {
	m := &svcMock{deleteFn: func(ctx context.Context, id string) error { return nil }}
	h := newController(m)

	id := primitive.NewObjectID().Hex()
	rec, env := doJSON(t, h.Delete, http.MethodDelete, "/api/books/"+id, "", map[string]string{"bookId": id})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Book deleted successfully", env["message"])
	v, present := env["data"]
	require.True(t, present, "delete keeps an explicit null data field")
	require.Nil(t, v)
}
