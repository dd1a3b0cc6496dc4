package controllers

import (
	"net/http"

	"bookit/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) ReviewController {
	return ReviewController{Reviews: reviews}
}

// GetRoomReviews godoc
// @Summary List the reviews of a room
// @Tags reviews
// @Produce json
// @Param roomId query int true "Room ID"
// @Router /reviews [get]
func (r ReviewController) GetRoomReviews(c *gin.Context) {
	roomID, ok := parseID(c, c.Query("roomId"), "room id")
	if !ok {
		return
	}

	reviews, err := r.Reviews.GetReviews(c.Request.Context(), roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Reviews fetched successfully", "data": reviews})
}

// CreateRoomReview godoc
// @Summary Create or update the current user's review of a room
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body services.ReviewInput true "Review"
// @Router /reviews [put]
func (r ReviewController) CreateRoomReview(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var input services.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid input", "details": err.Error()})
		return
	}

	if err := r.Reviews.SubmitReview(c.Request.Context(), actor, input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Review saved successfully"})
}

// CheckReviewAvailability godoc
// @Summary Whether the current user has a confirmed booking of the room
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param roomId query int true "Room ID"
// @Router /reviews/check [get]
func (r ReviewController) CheckReviewAvailability(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	roomID, ok := parseID(c, c.Query("roomId"), "room id")
	if !ok {
		return
	}

	available, err := r.Reviews.CheckReviewAvailability(c.Request.Context(), roomID, actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "data": gin.H{"isReviewAvailable": available}})
}

// DeleteReview godoc
// @Summary Delete a review and recompute the room rating
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param roomId query int true "Room ID"
// @Param id query int true "Review ID"
// @Router /admin/reviews [delete]
func (r ReviewController) DeleteReview(c *gin.Context) {
	roomID, ok := parseID(c, c.Query("roomId"), "room id")
	if !ok {
		return
	}
	reviewID, ok := parseID(c, c.Query("id"), "review id")
	if !ok {
		return
	}

	if err := r.Reviews.DeleteReview(c.Request.Context(), roomID, reviewID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Review deleted successfully"})
}
