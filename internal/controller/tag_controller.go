package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"formhub/internal/dto"
	"formhub/internal/service"
)

type TagController struct {
	tagService service.TagService
}

func NewTagController(tagService service.TagService) *TagController {
	return &TagController{tagService: tagService}
}

// List godoc
// @Summary List every tag
// @Tags Tags
// @Produce json
// @Success 200 {array} dto.TagResponse
// @Router /tags [get]
func (c *TagController) List(ctx *gin.Context) {
	tags, err := c.tagService.List()
	if err != nil {
		AbortWithError(ctx, err, "Failed to retrieve tags")
		return
	}
	ctx.JSON(http.StatusOK, tags)
}

// Search godoc
// @Summary Search tags by substring
// @Tags Tags
// @Produce json
// @Param query query string true "Search term"
// @Success 200 {array} dto.TagResponse
// @Failure 400 {object} dto.ErrorResponse "Missing query"
// @Router /tags/search [get]
func (c *TagController) Search(ctx *gin.Context) {
	term := ctx.Query("query")
	if term == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Search query is required"})
		return
	}
	tags, err := c.tagService.Search(term)
	if err != nil {
		AbortWithError(ctx, err, "Failed to search tags")
		return
	}
	ctx.JSON(http.StatusOK, tags)
}

// Forms godoc
// @Summary List public forms carrying a tag
// @Tags Tags
// @Produce json
// @Param tag_id path int true "Tag ID"
// @Success 200 {array} dto.FormSummary
// @Failure 400 {object} dto.ErrorResponse "Invalid tag ID"
// @Router /tags/{tag_id}/forms [get]
func (c *TagController) Forms(ctx *gin.Context) {
	tagID, err := strconv.ParseUint(ctx.Param("tag_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid tag ID format"})
		return
	}
	forms, err := c.tagService.FormsByTag(uint(tagID))
	if err != nil {
		AbortWithError(ctx, err, "No forms found for this tag")
		return
	}
	ctx.JSON(http.StatusOK, forms)
}
