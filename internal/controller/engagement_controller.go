package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"formhub/internal/dto"
	"formhub/internal/service"
)

type EngagementController struct {
	engagementService service.EngagementService
}

func NewEngagementController(engagementService service.EngagementService) *EngagementController {
	return &EngagementController{engagementService: engagementService}
}

// CheckLike godoc
// @Summary Check whether a user has liked a form
// @Tags Engagement
// @Produce json
// @Param form_id query int true "Form ID"
// @Param user_id query string true "User ID"
// @Success 200 {object} dto.LikeStatusResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid IDs"
// @Router /likes/check [get]
func (c *EngagementController) CheckLike(ctx *gin.Context) {
	formID, err := strconv.ParseUint(ctx.Query("form_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID format"})
		return
	}
	userID, err := uuid.Parse(ctx.Query("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID format"})
		return
	}
	liked, err := c.engagementService.CheckLike(uint(formID), userID)
	if err != nil {
		AbortWithError(ctx, err, "Failed to check like status")
		return
	}
	ctx.JSON(http.StatusOK, dto.LikeStatusResponse{Liked: liked})
}

// Like godoc
// @Summary Like a form
// @Description Repeating a like is a no-op, not an error.
// @Tags Engagement
// @Accept json
// @Produce json
// @Param like body dto.LikeRequest true "Form and liking user"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing form or user"
// @Router /likes [post]
func (c *EngagementController) Like(ctx *gin.Context) {
	var req dto.LikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Form ID and user ID are required", Details: []string{err.Error()}})
		return
	}
	if err := c.engagementService.Like(req); err != nil {
		AbortWithError(ctx, err, "Failed to like form")
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Form liked"})
}

// Unlike godoc
// @Summary Remove a like from a form
// @Tags Engagement
// @Accept json
// @Produce json
// @Param like body dto.LikeRequest true "Form and user"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Like does not exist"
// @Router /likes [delete]
func (c *EngagementController) Unlike(ctx *gin.Context) {
	var req dto.LikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Form ID and user ID are required", Details: []string{err.Error()}})
		return
	}
	if err := c.engagementService.Unlike(req); err != nil {
		AbortWithError(ctx, err, "Like not found")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Like removed"})
}

// AddComment godoc
// @Summary Comment on a form
// @Tags Engagement
// @Accept json
// @Produce json
// @Param comment body dto.CommentCreateRequest true "Form, author and text"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} dto.ErrorResponse "Missing author or text"
// @Router /comments [post]
func (c *EngagementController) AddComment(ctx *gin.Context) {
	var req dto.CommentCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Form ID, user ID, user name, and text are required", Details: []string{err.Error()}})
		return
	}
	comment, err := c.engagementService.AddComment(req)
	if err != nil {
		AbortWithError(ctx, err, "Failed to add comment")
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags Engagement
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Router /comments/{comment_id} [delete]
func (c *EngagementController) DeleteComment(ctx *gin.Context) {
	commentID, err := strconv.ParseUint(ctx.Param("comment_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid comment ID format"})
		return
	}
	if err := c.engagementService.DeleteComment(uint(commentID)); err != nil {
		AbortWithError(ctx, err, "Comment not found")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted"})
}

// GetComments godoc
// @Summary List a form's comments, newest first
// @Tags Engagement
// @Produce json
// @Param form_id path int true "Form ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 404 {object} dto.ErrorResponse "No comments on this form"
// @Router /comments/form/{form_id} [get]
func (c *EngagementController) GetComments(ctx *gin.Context) {
	formID, err := strconv.ParseUint(ctx.Param("form_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID format"})
		return
	}
	comments, err := c.engagementService.GetComments(uint(formID))
	if err != nil {
		AbortWithError(ctx, err, "No comments found for this form")
		return
	}
	ctx.JSON(http.StatusOK, comments)
}
