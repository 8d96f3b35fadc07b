package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBookViolations_CollectsEveryViolation(t *testing.T) {
	viol := BookViolations(&Book{Copies: -1})

	require.Equal(t, "Title is required", viol["title"])
	require.Equal(t, "Author is required", viol["author"])
	require.Equal(t, "Genre is required", viol["genre"])
	require.Equal(t, "ISBN is required", viol["isbn"])
	require.Equal(t, "Copies must be a positive number", viol["copies"])
	require.Len(t, viol, 5)
}

func TestBookViolations_GenreEnum(t *testing.T) {
	viol := BookViolations(&Book{
		Title:  "X",
		Author: "Y",
		Genre:  "ROMANCE",
		ISBN:   "111",
		Copies: 1,
	})
	require.Equal(t,
		"Genre must be one of: FICTION, NON_FICTION, SCIENCE, HISTORY, BIOGRAPHY, FANTASY",
		viol["genre"])
	require.Len(t, viol, 1)
}

func TestBookViolations_ValidBook(t *testing.T) {
	require.Nil(t, BookViolations(&Book{
		Title:  "X",
		Author: "Y",
		Genre:  GenreFiction,
		ISBN:   "111",
		Copies: 0,
	}))
}

func TestGenreValid(t *testing.T) {
	for _, g := range Genres {
		require.True(t, g.Valid())
	}
	require.False(t, Genre("ROMANCE").Valid())
	require.False(t, Genre("").Valid())
}

func TestBookUpdateAvailability(t *testing.T) {
	b := &Book{Copies: 2}
	b.UpdateAvailability()
	require.True(t, b.Available)

	b.Copies = 0
	b.UpdateAvailability()
	require.False(t, b.Available)
}

func TestBorrowViolations_DueDateMustBeFuture(t *testing.T) {
	now := time.Now().UTC()
	b := &Borrow{
		Book:     primitive.NewObjectID(),
		Quantity: 1,
		DueDate:  now.Add(-time.Hour),
	}
	viol := BorrowViolations(b, now)
	require.Equal(t, "Due date must be in the future", viol["dueDate"])

	// due exactly at now is still rejected
	b.DueDate = now
	viol = BorrowViolations(b, now)
	require.Equal(t, "Due date must be in the future", viol["dueDate"])

	b.DueDate = now.Add(time.Hour)
	require.Nil(t, BorrowViolations(b, now))
}

func TestBorrowViolations_QuantityAndReference(t *testing.T) {
	now := time.Now().UTC()
	viol := BorrowViolations(&Borrow{DueDate: now.Add(time.Hour)}, now)
	require.Equal(t, "Book reference is required", viol["book"])
	require.Equal(t, "Quantity must be at least 1", viol["quantity"])
}
