package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reply is embedded in its parent Post document; replies are append-only.
// The schema allows an author, but the reply form does not send one yet.
type Reply struct {
	ID        primitive.ObjectID  `bson:"_id" json:"id"`
	UserID    *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Username  string              `bson:"username,omitempty" json:"username,omitempty"`
	Text      string              `bson:"text" json:"text"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

// Post is the unit of atomic write: likes, dislikes and replies all live on
// the same document. A user id appears in at most one of likes/dislikes.
type Post struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID   `bson:"userId" json:"userId"`
	Text      string               `bson:"text" json:"text"`
	Type      string               `bson:"type" json:"type"`
	City      string               `bson:"city" json:"city"`
	ImageURL  string               `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	Dislikes  []primitive.ObjectID `bson:"dislikes" json:"dislikes"`
	Replies   []Reply              `bson:"replies" json:"replies"`
}
