package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"formhub/internal/dto"
	"formhub/internal/service"
)

type ResponseController struct {
	responseService service.ResponseService
}

func NewResponseController(responseService service.ResponseService) *ResponseController {
	return &ResponseController{responseService: responseService}
}

// Submit godoc
// @Summary Submit a filled form
// @Tags Responses
// @Accept json
// @Produce json
// @Param submission body dto.SubmitFilledFormRequest true "Respondent identity and answers"
// @Success 201 {object} dto.FilledFormCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Missing form, user or answers"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /responses [post]
func (c *ResponseController) Submit(ctx *gin.Context) {
	var req dto.SubmitFilledFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Form ID, user ID, and answers are required", Details: []string{err.Error()}})
		return
	}
	id, err := c.responseService.Submit(req)
	if err != nil {
		AbortWithError(ctx, err, "Failed to submit form")
		return
	}
	ctx.JSON(http.StatusCreated, dto.FilledFormCreatedResponse{Message: "Form submitted successfully", FilledFormID: id})
}

// GetUserSubmissions godoc
// @Summary List a user's submissions with the forms they answered
// @Tags Responses
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.UserFilledFormSummary
// @Failure 404 {object} dto.ErrorResponse "No submissions for this user"
// @Router /responses/user/{user_id} [get]
func (c *ResponseController) GetUserSubmissions(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID format"})
		return
	}
	submissions, err := c.responseService.GetUserSubmissions(userID)
	if err != nil {
		AbortWithError(ctx, err, "No filled forms found for this user")
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// GetSubmission godoc
// @Summary Fetch one submission with its form, questions and answers
// @Tags Responses
// @Produce json
// @Param filled_form_id path int true "Filled form ID"
// @Success 200 {object} dto.FilledFormDetail
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /responses/{filled_form_id} [get]
func (c *ResponseController) GetSubmission(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("filled_form_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid filled form ID format"})
		return
	}
	detail, err := c.responseService.GetSubmission(uint(id))
	if err != nil {
		AbortWithError(ctx, err, "Filled form not found")
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetFormResponses godoc
// @Summary Creator overview of everything collected for one form
// @Tags Responses
// @Produce json
// @Param form_id path int true "Form ID"
// @Success 200 {object} dto.FormResponsesOverview
// @Failure 404 {object} dto.ErrorResponse "Form has no submissions"
// @Router /forms/{form_id}/responses [get]
func (c *ResponseController) GetFormResponses(ctx *gin.Context) {
	formID, err := strconv.ParseUint(ctx.Param("form_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID format"})
		return
	}
	overview, err := c.responseService.GetFormResponses(uint(formID))
	if err != nil {
		AbortWithError(ctx, err, "No filled form exists for this form")
		return
	}
	ctx.JSON(http.StatusOK, overview)
}

// DeleteUserSubmissions godoc
// @Summary Delete all of a user's submissions
// @Tags Responses
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Router /responses/user/{user_id} [delete]
func (c *ResponseController) DeleteUserSubmissions(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID format"})
		return
	}
	if err := c.responseService.DeleteUserSubmissions(userID); err != nil {
		AbortWithError(ctx, err, "Failed to delete submissions")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Submissions deleted successfully"})
}
