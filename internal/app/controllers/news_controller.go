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

// NewsController handles news article endpoints.
type NewsController struct {
	newsService services.NewsService
	fileStorage filestorage.FileStorage
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService, fileStorage filestorage.FileStorage) *NewsController {
	return &NewsController{
		newsService: newsService,
		fileStorage: fileStorage,
	}
}

// List handles retrieving news articles
// @Summary List news
// @Description Retrieves news articles, newest first. Pass page/size for the paginated envelope.
// @Tags news
// @Produce json
// @Param q query string false "Search in title and content"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 100)"
// @Success 200 {array} models.NewsArticle
// @Failure 500 {object} dto.ErrorResponse
// @Router /news [get]
func (c *NewsController) List(ctx *gin.Context) {
	var query dto.ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid query parameters"))
		return
	}

	articles, err := c.newsService.List(ctx, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondList(ctx, &query, articles)
}

// GetByID handles retrieving a single article
// @Summary Get news by ID
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} models.NewsArticle
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [get]
func (c *NewsController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	article, err := c.newsService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, article)
}

// Create handles publishing a new article
// @Summary Create news
// @Tags news
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param Title formData string true "Title"
// @Param Content formData string true "HTML content"
// @Param IsImportant formData bool false "Pinned flag"
// @Param Image formData file false "Image file"
// @Param ImageUrl formData string false "Existing image path"
// @Success 201 {object} models.NewsArticle
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /news [post]
func (c *NewsController) Create(ctx *gin.Context) {
	var form dto.NewsForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("title and content are required"))
		return
	}

	imageURL, err := formImage(ctx, c.fileStorage, form.ImageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	article, err := c.newsService.Create(ctx, &form, imageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, article)
}

// Update handles replacing an article
// @Summary Update news
// @Tags news
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} models.NewsArticle
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [put]
func (c *NewsController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var form dto.NewsForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("title and content are required"))
		return
	}

	imageURL, err := formImage(ctx, c.fileStorage, form.ImageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	article, err := c.newsService.Update(ctx, id, &form, imageURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, article)
}

// Delete handles removing an article
// @Summary Delete news
// @Tags news
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [delete]
func (c *NewsController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.newsService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
