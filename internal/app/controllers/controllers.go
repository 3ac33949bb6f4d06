package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models/dto"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/filestorage"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/helpers"
)

// parseIDParam reads the :id path parameter. A non-numeric or
// non-positive value writes the 400 response and returns false.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid ID format"))
		return 0, false
	}
	return id, true
}

// formImage extracts the optional Image file from a multipart form and
// stores it, returning the accessible path. When no file was attached,
// fallbackURL (the resent ImageUrl form field) is returned instead.
func formImage(ctx *gin.Context, storage filestorage.FileStorage, fallbackURL string) (string, error) {
	fileHeader, err := ctx.FormFile("Image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return fallbackURL, nil
		}
		return "", err
	}
	return storage.SaveFile(fileHeader)
}

// respondList writes a listing either as a raw array or, when the
// caller asked for page/size, as the paged envelope.
func respondList[T any](ctx *gin.Context, query *dto.ListQuery, items []T) {
	if !query.Paginated() {
		ctx.JSON(http.StatusOK, items)
		return
	}

	page, size := helpers.NormalizePage(query.Page, query.Size)
	ctx.JSON(http.StatusOK, dto.PagedResponse{
		Items:      helpers.Page(items, page, size),
		Pagination: helpers.NewPaginationInfo(len(items), page, size),
	})
}
