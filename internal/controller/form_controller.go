package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"formhub/internal/dto"
	"formhub/internal/service"
)

type FormController struct {
	formService   service.FormService
	editorService service.FormEditorService
}

func NewFormController(formService service.FormService, editorService service.FormEditorService) *FormController {
	return &FormController{formService: formService, editorService: editorService}
}

// Create godoc
// @Summary Create a form with its questions, options, tags and access grants
// @Tags Forms
// @Accept json
// @Produce json
// @Param form body dto.FormCreateRequest true "Form definition"
// @Success 201 {object} dto.FormCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Missing title, creator or questions"
// @Failure 409 {object} dto.ErrorResponse "Page slug already taken"
// @Router /forms [post]
func (c *FormController) Create(ctx *gin.Context) {
	var req dto.FormCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Title, creator_id, and questions are required", Details: []string{err.Error()}})
		return
	}

	formID, err := c.formService.Create(req)
	if err != nil {
		AbortWithError(ctx, err, "Failed to create form")
		return
	}
	log.Info().Uint("formID", formID).Str("pageID", req.PageID).Msg("Form created")
	ctx.JSON(http.StatusCreated, dto.FormCreatedResponse{Message: "Form created successfully", FormID: formID})
}

// Edit godoc
// @Summary Converge a form to the submitted desired state
// @Description Updates scalars and reconciles questions, options, tags and access grants in one transaction.
// @Tags Forms
// @Accept json
// @Produce json
// @Param form_id path int true "Form ID"
// @Param form body dto.FormEditRequest true "Desired form state"
// @Success 200 {object} dto.FormCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or body"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Update rolled back"
// @Router /forms/{form_id} [put]
func (c *FormController) Edit(ctx *gin.Context) {
	formID, err := strconv.ParseUint(ctx.Param("form_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID format"})
		return
	}
	var req dto.FormEditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	id, err := c.editorService.Reconcile(uint(formID), req)
	if err != nil {
		AbortWithError(ctx, err, "Failed to update form")
		return
	}
	ctx.JSON(http.StatusOK, dto.FormCreatedResponse{Message: "Form updated successfully", FormID: id})
}

// GetByPageID godoc
// @Summary Fetch one form as a nested document by its page slug
// @Tags Forms
// @Produce json
// @Param page_id path string true "Page slug"
// @Success 200 {object} dto.FormDocument
// @Failure 404 {object} dto.ErrorResponse "No form with this slug"
// @Router /forms/slug/{page_id} [get]
func (c *FormController) GetByPageID(ctx *gin.Context) {
	doc, err := c.formService.GetByPageID(ctx.Param("page_id"))
	if err != nil {
		AbortWithError(ctx, err, "No form found with the given page_id")
		return
	}
	ctx.JSON(http.StatusOK, doc)
}

// Delete godoc
// @Summary Delete a form and everything attached to it
// @Tags Forms
// @Produce json
// @Param form_id path int true "Form ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{form_id} [delete]
func (c *FormController) Delete(ctx *gin.Context) {
	formID, err := strconv.ParseUint(ctx.Param("form_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID format"})
		return
	}
	if err := c.formService.Delete(uint(formID)); err != nil {
		AbortWithError(ctx, err, "Failed to delete form")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Form deleted successfully"})
}

// GetByCreator godoc
// @Summary List a creator's forms, newest first
// @Tags Forms
// @Produce json
// @Param user_id path string true "Creator user ID"
// @Success 200 {array} dto.FormResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "No forms for this user"
// @Router /forms/user/{user_id} [get]
func (c *FormController) GetByCreator(ctx *gin.Context) {
	creatorID, err := uuid.Parse(ctx.Param("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID format"})
		return
	}
	forms, err := c.formService.GetByCreator(creatorID)
	if err != nil {
		AbortWithError(ctx, err, "No forms found for this user")
		return
	}
	ctx.JSON(http.StatusOK, forms)
}

// Latest godoc
// @Summary List the five newest public forms
// @Tags Forms
// @Produce json
// @Success 200 {array} dto.FormSummary
// @Router /forms/latest [get]
func (c *FormController) Latest(ctx *gin.Context) {
	forms, err := c.formService.Latest()
	if err != nil {
		AbortWithError(ctx, err, "Failed to retrieve latest forms")
		return
	}
	ctx.JSON(http.StatusOK, forms)
}

// Popular godoc
// @Summary List the five most answered public forms
// @Tags Forms
// @Produce json
// @Success 200 {array} dto.PopularFormSummary
// @Router /forms/popular [get]
func (c *FormController) Popular(ctx *gin.Context) {
	forms, err := c.formService.Popular()
	if err != nil {
		AbortWithError(ctx, err, "Failed to retrieve popular forms")
		return
	}
	ctx.JSON(http.StatusOK, forms)
}

// Search godoc
// @Summary Search forms by substring across titles, questions, options and tags
// @Tags Forms
// @Produce json
// @Param query query string true "Search term"
// @Success 200 {array} dto.FormSearchResult
// @Failure 400 {object} dto.ErrorResponse "Missing query"
// @Failure 404 {object} dto.ErrorResponse "No matching forms"
// @Router /forms/search [get]
func (c *FormController) Search(ctx *gin.Context) {
	term := ctx.Query("query")
	if term == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Search query is required"})
		return
	}
	results, err := c.formService.Search(term)
	if err != nil {
		AbortWithError(ctx, err, "No matching forms found")
		return
	}
	ctx.JSON(http.StatusOK, results)
}
