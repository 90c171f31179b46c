package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"movie-catalog/internal/model"
)

// UserStore defines the user operations the auth handlers depend on.
type UserStore interface {
	Create(ctx context.Context, username, password string) (model.User, error)
	FindByCredentials(ctx context.Context, username, password string) (model.User, error)
}

type UserRepo struct{ Coll *mongo.Collection }

func NewUserRepo(coll *mongo.Collection) *UserRepo { return &UserRepo{Coll: coll} }

// Create inserts a new user. The password is stored exactly as submitted.
func (r *UserRepo) Create(ctx context.Context, username, password string) (model.User, error) {
	u := model.User{
		ID:       bson.NewObjectID(),
		UserName: username,
		Password: password,
	}
	if _, err := r.Coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, ErrDuplicateUsername
		}
		return model.User{}, err
	}
	return u, nil
}

// FindByCredentials matches both fields with an exact string comparison at
// the store, mirroring the original login query. A miss is ErrNotFound.
func (r *UserRepo) FindByCredentials(ctx context.Context, username, password string) (model.User, error) {
	var u model.User
	err := r.Coll.FindOne(ctx, bson.M{"UserName": username, "password": password}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}
