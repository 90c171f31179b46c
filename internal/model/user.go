package model

import "go.mongodb.org/mongo-driver/v2/bson"

// User represents a row in the `registration` collection. The bson field
// names (including the UserName casing) match the existing documents, so the
// app stays bit-compatible with data written by earlier versions of the
// system. Passwords are stored verbatim; credential checks are an exact
// string match against the stored value.
type User struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserName string        `bson:"UserName" json:"username"`
	Password string        `bson:"password" json:"password"`
}
