package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Movie represents a document in the `movies` collection. Field names match
// the existing schema. PostedBy references the user who created the record
// and is immutable after creation; it may dangle if the user is ever removed.
type Movie struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Name     string        `bson:"movieName"`
	Descript string        `bson:"movieDescript"`
	Year     int           `bson:"year"`
	Genres   string        `bson:"genres"`
	Rating   float64       `bson:"rating"`
	PostedBy bson.ObjectID `bson:"postedBy"`
}

// MovieFields carries the mutable movie attributes through create and
// update. The owner is deliberately not part of this struct.
type MovieFields struct {
	Name     string
	Descript string
	Year     int
	Genres   string
	Rating   float64
}
