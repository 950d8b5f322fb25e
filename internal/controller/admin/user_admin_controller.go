package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"formhub/internal/controller"
	"formhub/internal/dto"
	"formhub/internal/service"
)

type UserAdminController struct {
	adminService service.UserAdminService
}

func NewUserAdminController(adminService service.UserAdminService) *UserAdminController {
	return &UserAdminController{adminService: adminService}
}

// ListUsers godoc
// @Summary List every registered user
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Router /admin/users [get]
func (c *UserAdminController) ListUsers(ctx *gin.Context) {
	users, err := c.adminService.ListUsers()
	if err != nil {
		controller.AbortWithError(ctx, err, "Failed to retrieve users")
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// SearchUsers godoc
// @Summary Search users by name or email substring
// @Tags Admin
// @Produce json
// @Param query query string true "Search term"
// @Success 200 {array} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Missing query"
// @Router /admin/users/search [get]
func (c *UserAdminController) SearchUsers(ctx *gin.Context) {
	term := ctx.Query("query")
	if term == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Search query is required"})
		return
	}
	users, err := c.adminService.SearchUsers(term)
	if err != nil {
		controller.AbortWithError(ctx, err, "Failed to search users")
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// ApplyAction godoc
// @Summary Apply a moderation action to a set of users
// @Description Action is one of block, unblock, make_admin, remove_admin.
// @Tags Admin
// @Accept json
// @Produce json
// @Param action body dto.UserActionRequest true "Action and target user IDs"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown action or missing IDs"
// @Router /admin/users/action [post]
func (c *UserAdminController) ApplyAction(ctx *gin.Context) {
	var req dto.UserActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Action and user IDs are required", Details: []string{err.Error()}})
		return
	}
	if err := c.adminService.ApplyAction(req); err != nil {
		controller.AbortWithError(ctx, err, "Failed to apply action")
		return
	}
	log.Info().Str("action", string(req.Action)).Int("count", len(req.UserIDs)).Msg("Admin action applied")
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Action applied successfully"})
}

// DeleteUsers godoc
// @Summary Delete a set of users
// @Tags Admin
// @Accept json
// @Produce json
// @Param users body dto.UserDeleteRequest true "Target user IDs"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing IDs"
// @Router /admin/users [delete]
func (c *UserAdminController) DeleteUsers(ctx *gin.Context) {
	var req dto.UserDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "User IDs are required", Details: []string{err.Error()}})
		return
	}
	if err := c.adminService.DeleteUsers(req); err != nil {
		controller.AbortWithError(ctx, err, "Failed to delete users")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Users deleted successfully"})
}
