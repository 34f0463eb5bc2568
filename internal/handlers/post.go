package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/apperr"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/middleware"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/models"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	db         *gorm.DB
	guard      *services.OwnershipGuard
	voteEngine *services.VoteEngine
}

func NewPostHandler(db *gorm.DB, guard *services.OwnershipGuard, voteEngine *services.VoteEngine) *PostHandler {
	return &PostHandler{db: db, guard: guard, voteEngine: voteEngine}
}

func callerEmail(c *gin.Context) string {
	email, _ := c.Get(middleware.UserEmailKey)
	s, _ := email.(string)
	return s
}

// queryInt reads a non-negative integer query parameter, falling back
// to the default on anything unparsable.
func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	email := callerEmail(c)

	var req models.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post := models.Post{
		Title:     req.Title,
		Content:   req.Content,
		Published: published,
		Email:     &email,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "post creation failed"})
		return
	}

	postStatus := "Published"
	if !published {
		postStatus = "Drafted"
	}

	c.JSON(http.StatusCreated, gin.H{
		"Message":           "Successfully Created Your Post",
		"Your Post Title":   post.Title,
		"Your Post Content": post.Content,
		"Your Post Status":  postStatus,
	})
}

// GetPosts lists posts with pagination, date sorting and an optional
// title/content substring filter.
func (h *PostHandler) GetPosts(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
	skip := queryInt(c, "skip", 0)
	sortOrder := c.DefaultQuery("sortby_date_ascending", "asc")
	contains := c.Query("contains")

	// Closed set only: the order direction ends up in the query text.
	if sortOrder != "asc" && sortOrder != "desc" {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "The sortby_date_ascending query requires a value of either [asc, desc] but passed: " + sortOrder,
		})
		return
	}

	query := h.db.WithContext(c.Request.Context()).Model(&models.Post{})
	if contains != "" {
		pattern := "%" + contains + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}

	var posts []models.Post
	if err := query.Order("created_at " + sortOrder).
		Offset(skip).
		Limit(limit).
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "post listing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": posts})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	// Parse before querying: a raw path string handed to First would be
	// treated as an inline SQL condition.
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Error": "The ID you searched for seems to not be in our database."})
		return
	}

	var post models.Post
	if err := h.db.WithContext(c.Request.Context()).First(&post, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Error": "The ID you searched for seems to not be in our database."})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req models.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	email := callerEmail(c)
	if err := h.guard.Verify(c.Request.Context(), uint(id), email, "update"); err != nil {
		respondAuthz(c, err)
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	updates := map[string]any{
		"title":     req.Title,
		"content":   req.Content,
		"published": published,
	}
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.Post{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "post update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Successfully Updated Your Post"})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	email := callerEmail(c)
	if err := h.guard.Verify(c.Request.Context(), uint(id), email, "delete"); err != nil {
		respondAuthz(c, err)
		return
	}

	// Votes go with their post, in the same transaction.
	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "post deletion failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Successfully Deleted Your Post"})
}

// LikePost applies a vote. The target post id travels in the body
// (id_), matching the original wire contract; the path id is cosmetic.
func (h *PostHandler) LikePost(c *gin.Context) {
	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction_of_vote and id_ are required"})
		return
	}

	email := callerEmail(c)
	agg, err := h.voteEngine.Apply(c.Request.Context(), req.PostID, email, *req.DirectionOfVote)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrInvalidDirection):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Forbidden, user can only like, dislike, or neutralize."})
		case errors.Is(err, apperr.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found or user has no previous interaction with this post."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "vote could not be recorded"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Message":              "Vote successfully recorded.",
		"total_likes":          agg.TotalLikes,
		"total_negative_votes": agg.TotalNegativeVotes,
		"total_interactions":   agg.TotalInteractions,
	})
}

// respondAuthz writes the ownership guard failure. Authorization
// failures are always 403; anything else from the guard is a store
// problem.
func respondAuthz(c *gin.Context, err error) {
	var authz *apperr.AuthorizationError
	if errors.As(err, &authz) {
		c.JSON(http.StatusForbidden, gin.H{"error": authz.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "ownership check failed"})
}
