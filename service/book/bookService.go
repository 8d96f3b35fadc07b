package booksvc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/model"
	bookrepo "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/repository/book"
	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/util/apperr"
)

const (
	defaultSortBy = "createdAt"
	defaultLimit  = 10
)

type Repo interface {
	Insert(ctx context.Context, b *model.Book) error
	Find(ctx context.Context, q bookrepo.ListQuery) ([]model.Book, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error)
	Replace(ctx context.Context, id primitive.ObjectID, b *model.Book) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CreateInput struct {
	Title       string
	Author      string
	Genre       string
	ISBN        string
	Description string
	Copies      *int
}

type UpdateInput struct {
	Title       *string
	Author      *string
	Genre       *string
	ISBN        *string
	Description *string
	Copies      *int
}

type ListInput struct {
	Filter string
	SortBy string
	Sort   string
	Limit  int64
}

type Service interface {
	Create(ctx context.Context, in CreateInput) (*model.Book, error)
	List(ctx context.Context, in ListInput) ([]model.Book, error)
	Get(ctx context.Context, id string) (*model.Book, error)
	Update(ctx context.Context, id string, in UpdateInput) (*model.Book, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	r   Repo
	log *slog.Logger
}

func New(r Repo, log *slog.Logger) Service { return &service{r: r, log: log} }

func (s *service) Create(ctx context.Context, in CreateInput) (*model.Book, error) {
	now := time.Now().UTC()
	b := &model.Book{
		Title:       in.Title,
		Author:      in.Author,
		Genre:       model.Genre(in.Genre),
		ISBN:        in.ISBN,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Copies != nil {
		b.Copies = *in.Copies
	}

	viol := model.BookViolations(b)
	if in.Copies == nil {
		if viol == nil {
			viol = make(map[string]string)
		}
		viol["copies"] = "Copies is required"
	}
	if len(viol) > 0 {
		return nil, apperr.Validation(viol)
	}

	b.UpdateAvailability()
	if err := s.r.Insert(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Duplicate("isbn", b.ISBN)
		}
		return nil, err
	}
	s.log.Info("new book created", "title", b.Title, "author", b.Author)
	return b, nil
}

func (s *service) List(ctx context.Context, in ListInput) ([]model.Book, error) {
	q := bookrepo.ListQuery{
		SortBy:     in.SortBy,
		Descending: in.Sort == "desc",
		Limit:      in.Limit,
	}
	if q.SortBy == "" {
		q.SortBy = defaultSortBy
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	// an unrecognized genre filter is ignored, not rejected
	if g := model.Genre(in.Filter); g.Valid() {
		q.Genre = g
	}
	books, err := s.r.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

func (s *service) Get(ctx context.Context, id string) (*model.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.InvalidID()
	}
	b, err := s.r.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Book")
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id string, in UpdateInput) (*model.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.InvalidID()
	}
	b, err := s.r.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Book")
		}
		return nil, err
	}

	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.Genre != nil {
		b.Genre = model.Genre(*in.Genre)
	}
	if in.ISBN != nil {
		b.ISBN = *in.ISBN
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.Copies != nil {
		b.Copies = *in.Copies
		b.UpdateAvailability()
	}
	b.UpdatedAt = time.Now().UTC()

	if viol := model.BookViolations(b); len(viol) > 0 {
		return nil, apperr.Validation(viol)
	}
	if err := s.r.Replace(ctx, oid, b); err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apperr.NotFound("Book")
		case mongo.IsDuplicateKeyError(err):
			return nil, apperr.Duplicate("isbn", b.ISBN)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.InvalidID()
	}
	// hard delete; borrow records referencing the book are left in place
	if err := s.r.Delete(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Book")
		}
		return err
	}
	return nil
}
