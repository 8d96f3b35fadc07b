package bookrepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/model"
)

// ListQuery narrows and orders a Find. Genre == "" means no filter.
type ListQuery struct {
	Genre      model.Genre
	SortBy     string
	Descending bool
	Limit      int64
}

type Repo interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, b *model.Book) error
	Find(ctx context.Context, q ListQuery) ([]model.Book, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error)
	Replace(ctx context.Context, id primitive.ObjectID, b *model.Book) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type repo struct{ coll *mongo.Collection }

func New(db *mongo.Database) Repo { return &repo{coll: db.Collection("books")} }

func (r *repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "isbn", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *repo) Insert(ctx context.Context, b *model.Book) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, b)
	return err
}

func (r *repo) Find(ctx context.Context, q ListQuery) ([]model.Book, error) {
	filter := bson.D{}
	if q.Genre != "" {
		filter = bson.D{{Key: "genre", Value: q.Genre}}
	}
	dir := 1
	if q.Descending {
		dir = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: q.SortBy, Value: dir}}).
		SetLimit(q.Limit)
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.Book
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error) {
	var b model.Book
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) Replace(ctx context.Context, id primitive.ObjectID, b *model.Book) error {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, b)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
