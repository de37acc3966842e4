package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danandika/mhs-api/internal/app/models/dto"
	"github.com/danandika/mhs-api/internal/pkg/apperrors"
)

// HandleAPIError translates application errors into the response envelope.
// Handlers delegate every non-OK outcome here so the error taxonomy lives in
// one place.
func HandleAPIError(c *gin.Context, err error) {
	method := c.Request.Method

	var conflict *apperrors.ConflictError
	if errors.As(err, &conflict) {
		env := dto.NewError(http.StatusConflict, method, conflict.Error())
		if conflict.Existing != nil {
			env = env.WithData(conflict.Existing)
		}
		c.JSON(http.StatusConflict, env)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrStudentAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewError(http.StatusConflict, method, "student record already exists"))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewError(http.StatusNotFound, method, "record not found"))

	case errors.Is(err, apperrors.ErrInvalidStudentID):
		c.JSON(http.StatusBadRequest, dto.NewError(http.StatusBadRequest, method, "invalid record id"))

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewError(http.StatusBadRequest, method, err.Error()))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewError(http.StatusUnauthorized, method, "token expired"))

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewError(http.StatusUnauthorized, method, "invalid token"))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewError(http.StatusInternalServerError, method, "internal server error"))
	}
}
