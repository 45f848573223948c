package people

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrPersonNotFound = errors.New("person not found")
	ErrPersonExists   = errors.New("person already exists")
)

const collectionName = "people"

type Repository interface {
	Create(ctx context.Context, p *Person) error
	GetByEmail(ctx context.Context, email string) (*Person, error)
	List(ctx context.Context) ([]Person, error)
	Update(ctx context.Context, p *Person) error
	Delete(ctx context.Context, email string) error
}

type mongoRepository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(collectionName)}
}

func (r *mongoRepository) Create(ctx context.Context, p *Person) error {
	_, err := r.coll.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return ErrPersonExists
	}
	return err
}

func (r *mongoRepository) GetByEmail(ctx context.Context, email string) (*Person, error) {
	var p Person
	err := r.coll.FindOne(ctx, bson.M{"_id": email}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]Person, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	persons := []Person{}
	if err := cursor.All(ctx, &persons); err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *mongoRepository) Update(ctx context.Context, p *Person) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.Email}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPersonNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, email string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": email})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPersonNotFound
	}
	return nil
}
