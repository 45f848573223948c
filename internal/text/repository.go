package text

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrPageNotFound = errors.New("page not found")
	ErrPageExists   = errors.New("page already exists")
)

const collectionName = "texts"

type Repository interface {
	Create(ctx context.Context, p *Page) error
	GetByKey(ctx context.Context, key string) (*Page, error)
	List(ctx context.Context) ([]Page, error)
	Update(ctx context.Context, p *Page) error
	Delete(ctx context.Context, key string) error
}

type mongoRepository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(collectionName)}
}

func (r *mongoRepository) Create(ctx context.Context, p *Page) error {
	_, err := r.coll.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return ErrPageExists
	}
	return err
}

func (r *mongoRepository) GetByKey(ctx context.Context, key string) (*Page, error) {
	var p Page
	err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]Page, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	pages := []Page{}
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *mongoRepository) Update(ctx context.Context, p *Page) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.Key}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPageNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, key string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPageNotFound
	}
	return nil
}
