package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models/dto"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/logger"
)

// HandleAPIError maps service and repository errors onto HTTP responses.
// Every controller funnels its errors through here so the error body
// stays uniform across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, err.Error()))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, err.Error()))
	case errors.Is(err, apperrors.ErrFileMissing):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "No file provided"))
	case errors.Is(err, apperrors.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "File is not a valid image"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeInvalidToken, "Invalid token"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(dto.ErrorCodeForbidden, "Permission denied"))
	case errors.Is(err, apperrors.ErrNewsNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "News not found"))
	case errors.Is(err, apperrors.ErrTeamMemberNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Team member not found"))
	case errors.Is(err, apperrors.ErrProfNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Faculty union not found"))
	case errors.Is(err, apperrors.ErrUnitNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Unit not found"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "User not found"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeResourceConflict, "Email already exists"))
	case errors.Is(err, apperrors.ErrHeadNotEligible):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeResourceConflict, "Team member is not a profburo head"))
	case errors.Is(err, apperrors.ErrHeadAlreadyAssigned):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeResourceConflict, "Team member already heads another faculty union"))
	case errors.Is(err, apperrors.ErrHeadTypeLocked):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeResourceConflict, "Team member heads a faculty union and must remain a profburo head"))
	case errors.Is(err, apperrors.ErrMemberHeadsUnion):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeResourceConflict, "Team member heads a faculty union and cannot be deleted"))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}
