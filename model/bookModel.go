// model/book.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Genre string

const (
	GenreFiction    Genre = "FICTION"
	GenreNonFiction Genre = "NON_FICTION"
	GenreScience    Genre = "SCIENCE"
	GenreHistory    Genre = "HISTORY"
	GenreBiography  Genre = "BIOGRAPHY"
	GenreFantasy    Genre = "FANTASY"
)

var Genres = []Genre{
	GenreFiction, GenreNonFiction, GenreScience,
	GenreHistory, GenreBiography, GenreFantasy,
}

func (g Genre) Valid() bool {
	for _, v := range Genres {
		if g == v {
			return true
		}
	}
	return false
}

type Book struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Author      string             `bson:"author" json:"author" validate:"required"`
	Genre       Genre              `bson:"genre" json:"genre" validate:"required,oneof=FICTION NON_FICTION SCIENCE HISTORY BIOGRAPHY FANTASY"`
	ISBN        string             `bson:"isbn" json:"isbn" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Copies      int                `bson:"copies" json:"copies" validate:"gte=0"`
	Available   bool               `bson:"available" json:"available"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UpdateAvailability keeps the derived flag in sync with copies. Callers must
// run it before persisting any change to Copies.
func (b *Book) UpdateAvailability() {
	b.Available = b.Copies > 0
}
