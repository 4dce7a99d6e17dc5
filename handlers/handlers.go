package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"neighborly/models"
	"neighborly/repository"
)

// PostStore is what the post handlers need from the post repository.
type PostStore interface {
	List(ctx context.Context, filter repository.PostFilter, sortBy string) ([]models.Post, error)
	Create(ctx context.Context, authorID primitive.ObjectID, text, tag, city, imageURL string) (models.Post, error)
	ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (int, error)
	ToggleDislike(ctx context.Context, postID, userID primitive.ObjectID) (int, error)
	AddReply(ctx context.Context, postID primitive.ObjectID, text string) (models.Reply, error)
}

// UserStore is what the auth and profile handlers need from the user
// repository.
type UserStore interface {
	Create(ctx context.Context, username, password string) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, upd repository.ProfileUpdate) (models.User, error)
}

type Handler struct {
	Posts         PostStore
	Users         UserStore
	JWTSecret     string
	CloudinaryURL string
	SecureCookies bool
}

func New(posts PostStore, users UserStore, jwtSecret, cloudinaryURL string, secureCookies bool) *Handler {
	return &Handler{
		Posts:         posts,
		Users:         users,
		JWTSecret:     jwtSecret,
		CloudinaryURL: cloudinaryURL,
		SecureCookies: secureCookies,
	}
}
