package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"movie-catalog/internal/model"
)

// MovieStore defines the movie operations handlers and middleware depend on.
// *MovieRepo is the Mongo-backed implementation; tests supply fakes.
type MovieStore interface {
	Insert(ctx context.Context, fields model.MovieFields, owner bson.ObjectID) (model.Movie, error)
	All(ctx context.Context) ([]model.Movie, error)
	GetByID(ctx context.Context, id string) (model.Movie, error)
	UpdateByID(ctx context.Context, id string, fields model.MovieFields) error
	DeleteByID(ctx context.Context, id string) error
}

type MovieRepo struct{ Coll *mongo.Collection }

func NewMovieRepo(coll *mongo.Collection) *MovieRepo { return &MovieRepo{Coll: coll} }

// Insert stores a new movie owned by the given user and returns it with the
// generated id filled in.
func (r *MovieRepo) Insert(ctx context.Context, fields model.MovieFields, owner bson.ObjectID) (model.Movie, error) {
	m := model.Movie{
		ID:       bson.NewObjectID(),
		Name:     fields.Name,
		Descript: fields.Descript,
		Year:     fields.Year,
		Genres:   fields.Genres,
		Rating:   fields.Rating,
		PostedBy: owner,
	}
	if _, err := r.Coll.InsertOne(ctx, m); err != nil {
		return model.Movie{}, err
	}
	return m, nil
}

// All returns every movie in store order. No sort is applied, matching the
// original list behavior.
func (r *MovieRepo) All(ctx context.Context) ([]model.Movie, error) {
	cursor, err := r.Coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []model.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepo) GetByID(ctx context.Context, id string) (model.Movie, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return model.Movie{}, ErrNotFound
	}
	var m model.Movie
	err = r.Coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return model.Movie{}, ErrNotFound
	}
	if err != nil {
		return model.Movie{}, err
	}
	return m, nil
}

// UpdateByID replaces the mutable fields of a movie. The postedBy field is
// never part of the update document, so ownership cannot change.
func (r *MovieRepo) UpdateByID(ctx context.Context, id string, fields model.MovieFields) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	update := bson.M{"$set": bson.M{
		"movieName":     fields.Name,
		"movieDescript": fields.Descript,
		"year":          fields.Year,
		"genres":        fields.Genres,
		"rating":        fields.Rating,
	}}
	res, err := r.Coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MovieRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.Coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
