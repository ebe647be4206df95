package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tcarbonell24/workout-tracker-api/internal/domain"
	"github.com/tcarbonell24/workout-tracker-api/internal/repository"
	"github.com/tcarbonell24/workout-tracker-api/internal/service"
)

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// parseIDParam extracts an integer path parameter. A non-numeric id cannot
// reference any record, so the path is reported as not-found.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}

// respondServiceError maps the error taxonomy onto status codes:
// not-found to 404, validation and constraint conflicts to 400, anything
// unexpected to 500.
func respondServiceError(c *gin.Context, err error) {
	var verr domain.ValidationError
	switch {
	case errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, service.ErrExerciseNotFound.Error())
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, service.ErrWorkoutNotFound.Error())
	case errors.As(err, &verr):
		abortWithError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, repository.ErrConflict):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
