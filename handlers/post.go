package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"neighborly/repository"
)

type CreatePostRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Text     string `json:"text" binding:"required"`
	Type     string `json:"type"`
	City     string `json:"city"`
	ImageURL string `json:"imageUrl"`
}

type ReactionRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type ReplyRequest struct {
	Text string `json:"text"`
}

// ListPosts handles GET /posts with an optional userId author filter,
// newest first.
func (h *Handler) ListPosts(c *gin.Context) {
	filter := repository.PostFilter{}
	if userIDStr := c.Query("userId"); userIDStr != "" {
		userID, err := primitive.ObjectIDFromHex(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		filter.AuthorID = &userID
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	posts, err := h.Posts.List(ctx, filter, "")
	if err != nil {
		log.Printf("ListPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// SortPosts handles GET /posts/sort?tag=&location=&sortBy=. Filters are
// ANDed when both are present; the sort is always descending and defaults
// to creation time.
func (h *Handler) SortPosts(c *gin.Context) {
	filter := repository.PostFilter{
		Tag:  c.Query("tag"),
		City: c.Query("location"),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	posts, err := h.Posts.List(ctx, filter, c.Query("sortBy"))
	if err != nil {
		log.Printf("SortPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authorID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	post, err := h.Posts.Create(ctx, authorID, req.Text, req.Type, req.City, req.ImageURL)
	if errors.Is(err, repository.ErrEmptyText) || errors.Is(err, repository.ErrTextTooLong) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("CreatePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) LikePost(c *gin.Context) {
	h.react(c, h.Posts.ToggleLike, "Like updated", "likes")
}

func (h *Handler) DislikePost(c *gin.Context) {
	h.react(c, h.Posts.ToggleDislike, "Dislike updated", "dislikes")
}

// react runs one reaction toggle. The user id only has to be well-formed;
// whether such a user exists is deliberately not checked.
func (h *Handler) react(c *gin.Context, toggle func(context.Context, primitive.ObjectID, primitive.ObjectID) (int, error), message, countKey string) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	count, err := toggle(ctx, postID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("Reaction toggle error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, countKey: count})
}

func (h *Handler) ReplyToPost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	reply, err := h.Posts.AddReply(ctx, postID, req.Text)
	if errors.Is(err, repository.ErrEmptyReply) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reply text is required"})
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("ReplyToPost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add reply"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reply added", "reply": reply})
}
