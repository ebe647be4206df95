package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tcarbonell24/workout-tracker-api/internal/domain"
	"github.com/tcarbonell24/workout-tracker-api/internal/service"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	Name            string `json:"name" binding:"required"`
	Category        string `json:"category" binding:"required"`
	EquipmentNeeded *bool  `json:"equipment_needed"`
}

// validate applies the request-shape rules. The domain constructor applies
// the same rules again with the same messages, so rejection is identical no
// matter which layer a caller reaches.
func (r *CreateExerciseRequest) validate() error {
	if len(strings.TrimSpace(r.Name)) < 3 {
		return domain.ErrNameTooShort
	}
	if !domain.IsAllowedCategory(r.Category) {
		return domain.ErrInvalidCategory
	}
	return nil
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	EquipmentNeeded bool   `json:"equipment_needed"`
}

// ExerciseDetailResponse adds the reduced workout projection returned when
// an exercise is fetched individually.
type ExerciseDetailResponse struct {
	ExerciseResponse
	Workouts []WorkoutSummaryResponse `json:"workouts"`
}

// WorkoutSummaryResponse is the reduced {id, date} projection of a workout
// embedded under an exercise.
type WorkoutSummaryResponse struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:              ex.ID,
		Name:            ex.Name,
		Category:        ex.Category,
		EquipmentNeeded: ex.EquipmentNeeded,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to response DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = MapExerciseToResponse(&ex)
	}
	return responses
}

// MapWorkoutsToSummaries reduces workouts to the {id, date} projection.
func MapWorkoutsToSummaries(workouts []domain.Workout) []WorkoutSummaryResponse {
	summaries := make([]WorkoutSummaryResponse, len(workouts))
	for i, w := range workouts {
		summaries[i] = WorkoutSummaryResponse{ID: w.ID, Date: w.Date.Format(dateLayout)}
	}
	return summaries
}

// --- Handler Methods ---

// ListExercises handles GET /exercises.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetExercise handles GET /exercises/:id, embedding the reduced workout list.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	exercise, workouts, err := h.exerciseService.GetExercise(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ExerciseDetailResponse{
		ExerciseResponse: MapExerciseToResponse(exercise),
		Workouts:         MapWorkoutsToSummaries(workouts),
	})
}

// CreateExercise handles POST /exercises.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := req.validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	equipmentNeeded := false
	if req.EquipmentNeeded != nil {
		equipmentNeeded = *req.EquipmentNeeded
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), req.Name, req.Category, equipmentNeeded)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	// Same shape as the single fetch; a brand new exercise has no
	// associations yet.
	c.JSON(http.StatusCreated, ExerciseDetailResponse{
		ExerciseResponse: MapExerciseToResponse(exercise),
		Workouts:         []WorkoutSummaryResponse{},
	})
}

// DeleteExercise handles DELETE /exercises/:id. Association rows cascade.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.exerciseService.DeleteExercise(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise deleted"})
}
