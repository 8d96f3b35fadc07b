package borrowsvc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/model"
	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/util/apperr"
)

// Books is the slice of the book repository the borrow flow needs.
type Books interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error)
	Replace(ctx context.Context, id primitive.ObjectID, b *model.Book) error
}

type Borrows interface {
	Insert(ctx context.Context, b *model.Borrow) error
	Summary(ctx context.Context) ([]model.BorrowSummary, error)
}

type Service interface {
	Borrow(ctx context.Context, bookID string, quantity int, dueDate time.Time) (*model.Borrow, error)
	Summary(ctx context.Context) ([]model.BorrowSummary, error)
}

type service struct {
	books   Books
	borrows Borrows
	log     *slog.Logger
}

func New(books Books, borrows Borrows, log *slog.Logger) Service {
	return &service{books: books, borrows: borrows, log: log}
}

// Borrow decrements the book's copies and records the lending event.
//
// The sufficiency check runs before the availability check: an unavailable
// book asked for an impossible quantity reports the quantity error. The two
// writes are not atomic; if the borrow insert fails after the book update the
// decrement stays in place.
func (s *service) Borrow(ctx context.Context, bookID string, quantity int, dueDate time.Time) (*model.Borrow, error) {
	oid, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return nil, apperr.InvalidID()
	}

	book, err := s.books.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Book")
		}
		return nil, err
	}
	if book.Copies < quantity {
		return nil, apperr.InsufficientCopies(book.Copies)
	}
	if !book.Available {
		return nil, apperr.Unavailable()
	}

	now := time.Now().UTC()
	book.Copies -= quantity
	book.UpdateAvailability()
	book.UpdatedAt = now
	if err := s.books.Replace(ctx, oid, book); err != nil {
		return nil, err
	}

	borrow := &model.Borrow{
		Book:      oid,
		Quantity:  quantity,
		DueDate:   dueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if viol := model.BorrowViolations(borrow, now); len(viol) > 0 {
		return nil, apperr.Validation(viol)
	}
	if err := s.borrows.Insert(ctx, borrow); err != nil {
		return nil, err
	}
	s.log.Info("book borrowed", "book", bookID, "quantity", quantity)
	return borrow, nil
}

func (s *service) Summary(ctx context.Context) ([]model.BorrowSummary, error) {
	return s.borrows.Summary(ctx)
}
