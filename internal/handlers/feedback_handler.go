package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabhub_backend/internal/middleware"
	"collabhub_backend/internal/services"
	"collabhub_backend/internal/services/dto"
)

type FeedbackHandler struct {
	*BaseHandler
	feedbackService *services.FeedbackService
}

func NewFeedbackHandler(base *BaseHandler, feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     base,
		feedbackService: feedbackService,
	}
}

func (h *FeedbackHandler) RegisterRoutes(r *gin.RouterGroup) {
	feedback := r.Group("/feedback")

	// Rating and review listings are public profile data.
	feedback.GET("/ratings/:userId", h.GetRatingsForUser)
	feedback.GET("/reviews/:userId", h.GetReviewsForUser)

	protected := feedback.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/ratings", h.UpsertRating)
		protected.POST("/reviews", h.CreateReview)
	}
}

// UpsertRating handles POST /feedback/ratings.
func (h *FeedbackHandler) UpsertRating(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRatingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	rating, err := h.feedbackService.UpsertRating(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// GetRatingsForUser handles GET /feedback/ratings/:userId.
func (h *FeedbackHandler) GetRatingsForUser(c *gin.Context) {
	resp, err := h.feedbackService.GetRatingsForUser(h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateReview handles POST /feedback/reviews.
func (h *FeedbackHandler) CreateReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.feedbackService.CreateReview(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetReviewsForUser handles GET /feedback/reviews/:userId.
func (h *FeedbackHandler) GetReviewsForUser(c *gin.Context) {
	reviews, err := h.feedbackService.GetReviewsForUser(h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "total": len(reviews)})
}
