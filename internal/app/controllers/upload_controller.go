package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models/dto"
	"github.com/myurcick/profkomlviv-sub000/internal/middleware"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/filestorage"
)

// imageExtensions are the upload extensions verified as decodable
// images before being stored.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// UploadController handles the standalone file upload endpoint used by
// the dashboard's rich-text editor.
type UploadController struct {
	fileStorage filestorage.FileStorage
}

// NewUploadController creates a new UploadController
func NewUploadController(fileStorage filestorage.FileStorage) *UploadController {
	return &UploadController{fileStorage: fileStorage}
}

// Upload handles storing a standalone file
// @Summary Upload a file
// @Description Stores a file and returns its server-relative path. Image files are verified as decodable before being kept.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to store"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid file"
// @Router /uploads [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			middleware.HandleAPIError(ctx, apperrors.ErrFileMissing)
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if imageExtensions[ext] {
		file, err := fileHeader.Open()
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		_, decodeErr := imaging.Decode(file)
		file.Close()
		if decodeErr != nil {
			middleware.HandleAPIError(ctx, apperrors.ErrInvalidImage)
			return
		}
	}

	path, err := c.fileStorage.SaveFile(fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.UploadResponse{Path: path})
}
