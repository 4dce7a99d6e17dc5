package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"neighborly/models"
)

const maxPostLen = 280

// PostFilter holds the optional equality filters of a feed query. Filters
// that are present are ANDed; an absent filter matches any post.
type PostFilter struct {
	AuthorID *primitive.ObjectID
	Tag      string
	City     string
}

func (f PostFilter) query() bson.M {
	q := bson.M{}
	if f.AuthorID != nil {
		q["userId"] = *f.AuthorID
	}
	if f.Tag != "" {
		q["type"] = f.Tag
	}
	if f.City != "" {
		q["city"] = f.City
	}
	return q
}

type PostRepo struct {
	coll *mongo.Collection
}

func NewPostRepo(coll *mongo.Collection) *PostRepo {
	return &PostRepo{coll: coll}
}

// List returns every post matching the filter, sorted descending on sortBy
// (createdAt when empty). No pagination: the feed is the whole collection.
func (r *PostRepo) List(ctx context.Context, filter PostFilter, sortBy string) ([]models.Post, error) {
	if sortBy == "" {
		sortBy = "createdAt"
	}

	opts := options.Find().SetSort(bson.D{{Key: sortBy, Value: -1}})
	cursor, err := r.coll.Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepo) Create(ctx context.Context, authorID primitive.ObjectID, text, tag, city, imageURL string) (models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return models.Post{}, ErrEmptyText
	}
	if len([]rune(text)) > maxPostLen {
		return models.Post{}, ErrTextTooLong
	}

	post := models.Post{
		ID:        primitive.NewObjectID(),
		UserID:    authorID,
		Text:      text,
		Type:      tag,
		City:      city,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
		Likes:     []primitive.ObjectID{},
		Dislikes:  []primitive.ObjectID{},
		Replies:   []models.Reply{},
	}

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// ToggleLike flips userID's membership in the post's likes set and removes
// it from dislikes, returning the new likes count. The whole mutation is one
// conditional document update, so concurrent toggles on the same post never
// lose each other's writes.
func (r *PostRepo) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (int, error) {
	post, err := r.toggle(ctx, postID, togglePipeline(userID, "likes", "dislikes"))
	if err != nil {
		return 0, err
	}
	return len(post.Likes), nil
}

// ToggleDislike is the mirror of ToggleLike on the dislikes set.
func (r *PostRepo) ToggleDislike(ctx context.Context, postID, userID primitive.ObjectID) (int, error) {
	post, err := r.toggle(ctx, postID, togglePipeline(userID, "dislikes", "likes"))
	if err != nil {
		return 0, err
	}
	return len(post.Dislikes), nil
}

func (r *PostRepo) toggle(ctx context.Context, postID primitive.ObjectID, pipeline mongo.Pipeline) (models.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": postID}, pipeline, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// togglePipeline builds the aggregation-pipeline update for a reaction
// toggle: if userID is already in field it is removed, otherwise it is
// appended; either way it is removed from the opposite set. A user id is
// therefore never in both sets after any sequence of toggles.
func togglePipeline(userID primitive.ObjectID, field, opposite string) mongo.Pipeline {
	cur := bson.M{"$ifNull": bson.A{"$" + field, bson.A{}}}
	opp := bson.M{"$ifNull": bson.A{"$" + opposite, bson.A{}}}
	uid := bson.A{userID}

	return mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			field: bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{userID, cur}},
				bson.M{"$setDifference": bson.A{cur, uid}},
				bson.M{"$concatArrays": bson.A{cur, uid}},
			}},
			opposite: bson.M{"$setDifference": bson.A{opp, uid}},
		}}},
	}
}

// AddReply appends a reply with a fresh id and server timestamp. The $push
// is atomic, so concurrent replies never clobber each other.
func (r *PostRepo) AddReply(ctx context.Context, postID primitive.ObjectID, text string) (models.Reply, error) {
	if strings.TrimSpace(text) == "" {
		return models.Reply{}, ErrEmptyReply
	}

	reply := models.Reply{
		ID:        primitive.NewObjectID(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"replies": reply}},
	)
	if err != nil {
		return models.Reply{}, err
	}
	if result.MatchedCount == 0 {
		return models.Reply{}, ErrNotFound
	}
	return reply, nil
}
