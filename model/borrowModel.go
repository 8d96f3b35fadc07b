// model/borrow.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Borrow struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Book      primitive.ObjectID `bson:"book" json:"book" validate:"required"`
	Quantity  int                `bson:"quantity" json:"quantity" validate:"gte=1"`
	DueDate   time.Time          `bson:"dueDate" json:"dueDate"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BorrowSummary is one row of the per-book borrow aggregation.
type BorrowSummary struct {
	Book          BorrowSummaryBook `bson:"book" json:"book"`
	TotalQuantity int               `bson:"totalQuantity" json:"totalQuantity"`
}

type BorrowSummaryBook struct {
	Title string `bson:"title" json:"title"`
	ISBN  string `bson:"isbn" json:"isbn"`
}
