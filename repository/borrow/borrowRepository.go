package borrowrepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/model"
)

type Repo interface {
	Insert(ctx context.Context, b *model.Borrow) error
	Summary(ctx context.Context) ([]model.BorrowSummary, error)
}

type repo struct{ coll *mongo.Collection }

func New(db *mongo.Database) Repo { return &repo{coll: db.Collection("borrows")} }

func (r *repo) Insert(ctx context.Context, b *model.Borrow) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, b)
	return err
}

// Summary groups borrow records by book, sums quantities, joins book details
// and sorts by total quantity descending. Records pointing at a deleted book
// drop out at the unwind stage.
func (r *repo) Summary(ctx context.Context) ([]model.BorrowSummary, error) {
	cur, err := r.coll.Aggregate(ctx, summaryPipeline())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []model.BorrowSummary{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func summaryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$book"},
			{Key: "totalQuantity", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "books"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "bookDetails"},
		}}},
		{{Key: "$unwind", Value: "$bookDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "book", Value: bson.D{
				{Key: "title", Value: "$bookDetails.title"},
				{Key: "isbn", Value: "$bookDetails.isbn"},
			}},
			{Key: "totalQuantity", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalQuantity", Value: -1}}}},
	}
}
