package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrAccountNotFound = errors.New("account does not exist")
	ErrAccountExists   = errors.New("account already exists")
)

const collectionName = "accounts"

type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	Delete(ctx context.Context, email string) error
}

type mongoRepository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(collectionName)}
}

func (r *mongoRepository) Create(ctx context.Context, a *Account) error {
	_, err := r.coll.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return ErrAccountExists
	}
	return err
}

func (r *mongoRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	var a Account
	err := r.coll.FindOne(ctx, bson.M{"_id": email}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *mongoRepository) Delete(ctx context.Context, email string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": email})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}
