package manuscripts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrManuscriptNotFound = errors.New("manuscript not found")

const collectionName = "manuscripts"

type Repository interface {
	Create(ctx context.Context, m *Manuscript) error
	GetByID(ctx context.Context, id uuid.UUID) (*Manuscript, error)
	List(ctx context.Context) ([]Manuscript, error)
	ListByState(ctx context.Context, state State) ([]Manuscript, error)
	Update(ctx context.Context, m *Manuscript) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type mongoRepository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(collectionName)}
}

func (r *mongoRepository) Create(ctx context.Context, m *Manuscript) error {
	_, err := r.coll.InsertOne(ctx, m)
	return err
}

func (r *mongoRepository) GetByID(ctx context.Context, id uuid.UUID) (*Manuscript, error) {
	var m Manuscript
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrManuscriptNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]Manuscript, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoRepository) ListByState(ctx context.Context, state State) ([]Manuscript, error) {
	return r.find(ctx, bson.M{"state": state})
}

func (r *mongoRepository) find(ctx context.Context, filter bson.M) ([]Manuscript, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	manuscripts := []Manuscript{}
	if err := cursor.All(ctx, &manuscripts); err != nil {
		return nil, err
	}
	return manuscripts, nil
}

func (r *mongoRepository) Update(ctx context.Context, m *Manuscript) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrManuscriptNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrManuscriptNotFound
	}
	return nil
}
