package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models/dto"
	"github.com/myurcick/profkomlviv-sub000/internal/app/services"
	"github.com/myurcick/profkomlviv-sub000/internal/middleware"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/filestorage"
)

// ProfController handles faculty union endpoints.
type ProfController struct {
	profService services.ProfService
	fileStorage filestorage.FileStorage
}

// NewProfController creates a new ProfController
func NewProfController(profService services.ProfService, fileStorage filestorage.FileStorage) *ProfController {
	return &ProfController{
		profService: profService,
		fileStorage: fileStorage,
	}
}

// List handles retrieving faculty unions
// @Summary List faculty unions
// @Description Retrieves faculty unions with their heads embedded, ordered by orderInd.
// @Tags prof
// @Produce json
// @Param isActive query bool false "Filter by active flag"
// @Param q query string false "Search in name, head name and address"
// @Success 200 {array} models.FacultyUnion
// @Router /prof [get]
func (c *ProfController) List(ctx *gin.Context) {
	var query dto.ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid query parameters"))
		return
	}

	profs, err := c.profService.List(ctx, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, &query, profs)
}

// GetByID handles retrieving a single faculty union
// @Summary Get faculty union by ID
// @Tags prof
// @Produce json
// @Param id path int true "Faculty union ID"
// @Success 200 {object} models.FacultyUnion
// @Failure 404 {object} dto.ErrorResponse "Faculty union not found"
// @Router /prof/{id} [get]
func (c *ProfController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	prof, err := c.profService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, prof)
}

// Create handles adding a faculty union
// @Summary Create faculty union
// @Description Creates a faculty union and claims its head. The head must be a free ProfburoHead member.
// @Tags prof
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param Name formData string true "Faculty name"
// @Param HeadId formData int true "Team member ID of the head"
// @Param Address formData string false "Office address"
// @Param Room formData string false "Office room"
// @Param Schedule formData string false "Office hours"
// @Param Image formData file false "Logo file"
// @Success 201 {object} models.FacultyUnion
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Head not eligible or already assigned"
// @Router /prof [post]
func (c *ProfController) Create(ctx *gin.Context) {
	var form dto.ProfForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("name and head ID are required"))
		return
	}

	imageURL, err := formImage(ctx, c.fileStorage, form.ImageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	prof, err := c.profService.Create(ctx, &form, imageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, prof)
}

// Update handles replacing a faculty union
// @Summary Update faculty union
// @Description Replaces the union. Re-pointing HeadId releases the previous head and claims the new one.
// @Tags prof
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty union ID"
// @Success 200 {object} models.FacultyUnion
// @Failure 404 {object} dto.ErrorResponse "Faculty union not found"
// @Failure 409 {object} dto.ErrorResponse "Head not eligible or already assigned"
// @Router /prof/{id} [put]
func (c *ProfController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var form dto.ProfForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("name and head ID are required"))
		return
	}

	imageURL, err := formImage(ctx, c.fileStorage, form.ImageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	prof, err := c.profService.Update(ctx, id, &form, imageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, prof)
}

// Delete handles removing a faculty union
// @Summary Delete faculty union
// @Description Deletes the union and releases its head back to the available pool.
// @Tags prof
// @Security BearerAuth
// @Param id path int true "Faculty union ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Faculty union not found"
// @Router /prof/{id} [delete]
func (c *ProfController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.profService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
