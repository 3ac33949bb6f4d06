package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models/dto"
	"github.com/myurcick/profkomlviv-sub000/internal/app/services"
	"github.com/myurcick/profkomlviv-sub000/internal/middleware"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/filestorage"
)

// TeamController handles team directory endpoints.
type TeamController struct {
	teamService services.TeamService
	fileStorage filestorage.FileStorage
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService services.TeamService, fileStorage filestorage.FileStorage) *TeamController {
	return &TeamController{
		teamService: teamService,
		fileStorage: fileStorage,
	}
}

// List handles retrieving team members
// @Summary List team members
// @Description Retrieves team members ordered by orderInd. isActive filters the public directory.
// @Tags team
// @Produce json
// @Param isActive query bool false "Filter by active flag"
// @Param q query string false "Search in name, position and email"
// @Success 200 {array} models.TeamMember
// @Router /team [get]
func (c *TeamController) List(ctx *gin.Context) {
	var query dto.ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid query parameters"))
		return
	}

	members, err := c.teamService.List(ctx, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, &query, members)
}

// AvailableHeads handles listing heads free for faculty union assignment
// @Summary List available profburo heads
// @Description Lists ProfburoHead members not yet assigned to a faculty union. excludeId keeps that union's current head in the result.
// @Tags team
// @Produce json
// @Param excludeId query int false "Faculty union being edited"
// @Success 200 {array} models.TeamMember
// @Router /team/available-heads [get]
func (c *TeamController) AvailableHeads(ctx *gin.Context) {
	var excludeProfID int64
	if raw := ctx.Query("excludeId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid excludeId"))
			return
		}
		excludeProfID = parsed
	}

	heads, err := c.teamService.AvailableHeads(ctx, excludeProfID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, heads)
}

// GetByID handles retrieving a single team member
// @Summary Get team member by ID
// @Tags team
// @Produce json
// @Param id path int true "Team member ID"
// @Success 200 {object} models.TeamMember
// @Failure 404 {object} dto.ErrorResponse "Team member not found"
// @Router /team/{id} [get]
func (c *TeamController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	member, err := c.teamService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, member)
}

// Create handles adding a team member
// @Summary Create team member
// @Tags team
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param Name formData string true "Full name"
// @Param Type formData int false "0 aparat, 1 profburo head, 2 department head"
// @Param Position formData string false "Free-text position (aparat only)"
// @Param Email formData string false "Contact email"
// @Param OrderInd formData int false "Sort order"
// @Param IsActive formData bool false "Active flag"
// @Param Image formData file false "Portrait file"
// @Success 201 {object} models.TeamMember
// @Failure 400 {object} dto.ErrorResponse
// @Router /team [post]
func (c *TeamController) Create(ctx *gin.Context) {
	var form dto.TeamMemberForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("name is required"))
		return
	}

	imageURL, err := formImage(ctx, c.fileStorage, form.ImageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	member, err := c.teamService.Create(ctx, &form, imageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, member)
}

// Update handles replacing a team member
// @Summary Update team member
// @Tags team
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Success 200 {object} models.TeamMember
// @Failure 404 {object} dto.ErrorResponse "Team member not found"
// @Router /team/{id} [put]
func (c *TeamController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var form dto.TeamMemberForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("name is required"))
		return
	}

	imageURL, err := formImage(ctx, c.fileStorage, form.ImageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	member, err := c.teamService.Update(ctx, id, &form, imageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, member)
}

// Delete handles removing a team member
// @Summary Delete team member
// @Tags team
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Team member not found"
// @Failure 409 {object} dto.ErrorResponse "Member heads a faculty union"
// @Router /team/{id} [delete]
func (c *TeamController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.teamService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
