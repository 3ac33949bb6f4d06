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

// UnitController handles organizational unit endpoints.
type UnitController struct {
	unitService services.UnitService
	fileStorage filestorage.FileStorage
}

// NewUnitController creates a new UnitController
func NewUnitController(unitService services.UnitService, fileStorage filestorage.FileStorage) *UnitController {
	return &UnitController{
		unitService: unitService,
		fileStorage: fileStorage,
	}
}

// List handles retrieving units
// @Summary List units
// @Tags unit
// @Produce json
// @Param isActive query bool false "Filter by active flag"
// @Param q query string false "Search in name and content"
// @Success 200 {array} models.Unit
// @Router /unit [get]
func (c *UnitController) List(ctx *gin.Context) {
	var query dto.ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid query parameters"))
		return
	}

	units, err := c.unitService.List(ctx, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, &query, units)
}

// GetByID handles retrieving a single unit
// @Summary Get unit by ID
// @Tags unit
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {object} models.Unit
// @Failure 404 {object} dto.ErrorResponse "Unit not found"
// @Router /unit/{id} [get]
func (c *UnitController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	unit, err := c.unitService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, unit)
}

// Create handles adding a unit
// @Summary Create unit
// @Tags unit
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param Name formData string true "Unit name"
// @Param Content formData string false "HTML description"
// @Param OrderInd formData int false "Sort order"
// @Param IsActive formData bool false "Active flag"
// @Param Image formData file false "Image file"
// @Success 201 {object} models.Unit
// @Failure 400 {object} dto.ErrorResponse
// @Router /unit [post]
func (c *UnitController) Create(ctx *gin.Context) {
	var form dto.UnitForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("name is required"))
		return
	}

	imageURL, err := formImage(ctx, c.fileStorage, form.ImageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	unit, err := c.unitService.Create(ctx, &form, imageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, unit)
}

// Update handles replacing a unit
// @Summary Update unit
// @Tags unit
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit ID"
// @Success 200 {object} models.Unit
// @Failure 404 {object} dto.ErrorResponse "Unit not found"
// @Router /unit/{id} [put]
func (c *UnitController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var form dto.UnitForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("name is required"))
		return
	}

	imageURL, err := formImage(ctx, c.fileStorage, form.ImageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	unit, err := c.unitService.Update(ctx, id, &form, imageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, unit)
}

// Delete handles removing a unit
// @Summary Delete unit
// @Tags unit
// @Security BearerAuth
// @Param id path int true "Unit ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Unit not found"
// @Router /unit/{id} [delete]
func (c *UnitController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.unitService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
