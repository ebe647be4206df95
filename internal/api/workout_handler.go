package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tcarbonell24/workout-tracker-api/internal/domain"
	"github.com/tcarbonell24/workout-tracker-api/internal/repository"
	"github.com/tcarbonell24/workout-tracker-api/internal/service"
)

// Wire format for workout dates.
const dateLayout = "2006-01-02"

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// CreateWorkoutRequest defines the expected JSON for creating a workout.
// DurationMinutes is a pointer so that an explicit 0 reaches the range rule
// instead of tripping the required check.
type CreateWorkoutRequest struct {
	Date            string  `json:"date" binding:"required"`
	DurationMinutes *int    `json:"duration_minutes" binding:"required"`
	Notes           *string `json:"notes"`
}

// validate applies the request-shape rules and parses the calendar date.
func (r *CreateWorkoutRequest) validate() (time.Time, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return time.Time{}, domain.ValidationError("date must be a valid calendar date (YYYY-MM-DD)")
	}
	if *r.DurationMinutes <= 0 {
		return time.Time{}, domain.ErrDurationNotPositive
	}
	return date, nil
}

// AddWorkoutExerciseRequest is the payload for associating an exercise with
// a workout. All three fields are optional but at least one must be present
// and non-zero. Field typing and the field rules run only after parent
// resolution, so a missing workout reports not-found even when the payload
// is also invalid.
type AddWorkoutExerciseRequest struct {
	Reps            *int `json:"reps"`
	Sets            *int `json:"sets"`
	DurationSeconds *int `json:"duration_seconds"`
}

// decodeFields fills the request from pre-parsed JSON fields. A typing
// failure is returned rather than aborted on, so the caller can defer it
// past parent resolution. Unknown keys are ignored.
func (r *AddWorkoutExerciseRequest) decodeFields(raw map[string]json.RawMessage) error {
	for _, f := range []struct {
		key string
		dst any
	}{
		{"reps", &r.Reps},
		{"sets", &r.Sets},
		{"duration_seconds", &r.DurationSeconds},
	} {
		msg, ok := raw[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(msg, f.dst); err != nil {
			return domain.ValidationError("Validation error: " + err.Error())
		}
	}
	return nil
}

// WorkoutResponse is the DTO for returning workout details.
type WorkoutResponse struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	DurationMinutes int     `json:"duration_minutes"`
	Notes           *string `json:"notes"`
}

// WorkoutDetailResponse embeds the workout's association rows. Each row
// carries its exercise; the workout back-reference is suppressed to avoid
// unbounded nesting.
type WorkoutDetailResponse struct {
	WorkoutResponse
	Exercises []WorkoutExerciseItemResponse `json:"exercises"`
}

// WorkoutExerciseItemResponse is an association row as embedded under its
// workout.
type WorkoutExerciseItemResponse struct {
	ID              int64            `json:"id"`
	ExerciseID      int64            `json:"exercise_id"`
	Reps            *int             `json:"reps"`
	Sets            *int             `json:"sets"`
	DurationSeconds *int             `json:"duration_seconds"`
	Exercise        ExerciseResponse `json:"exercise"`
}

// WorkoutExerciseResponse is the full association representation returned on
// create, with both parents nested. Each parent omits its own collection.
type WorkoutExerciseResponse struct {
	ID              int64            `json:"id"`
	WorkoutID       int64            `json:"workout_id"`
	ExerciseID      int64            `json:"exercise_id"`
	Reps            *int             `json:"reps"`
	Sets            *int             `json:"sets"`
	DurationSeconds *int             `json:"duration_seconds"`
	Workout         WorkoutResponse  `json:"workout"`
	Exercise        ExerciseResponse `json:"exercise"`
}

// MapWorkoutToResponse converts a domain.Workout to WorkoutResponse DTO.
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	return WorkoutResponse{
		ID:              w.ID,
		Date:            w.Date.Format(dateLayout),
		DurationMinutes: w.DurationMinutes,
		Notes:           w.Notes,
	}
}

// MapWorkoutsToResponse converts a slice of domain.Workout to response DTOs.
func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i, w := range workouts {
		responses[i] = MapWorkoutToResponse(&w)
	}
	return responses
}

// MapDetailsToItems converts joined association rows to the embedded shape.
func MapDetailsToItems(details []repository.WorkoutExerciseDetail) []WorkoutExerciseItemResponse {
	items := make([]WorkoutExerciseItemResponse, len(details))
	for i, d := range details {
		items[i] = WorkoutExerciseItemResponse{
			ID:              d.ID,
			ExerciseID:      d.ExerciseID,
			Reps:            d.Reps,
			Sets:            d.Sets,
			DurationSeconds: d.DurationSeconds,
			Exercise:        MapExerciseToResponse(&d.Exercise),
		}
	}
	return items
}

// --- Handler Methods ---

// ListWorkouts handles GET /workouts. No associations are embedded.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// GetWorkout handles GET /workouts/:id, embedding the association rows.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	workout, details, err := h.workoutService.GetWorkout(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, WorkoutDetailResponse{
		WorkoutResponse: MapWorkoutToResponse(workout),
		Exercises:       MapDetailsToItems(details),
	})
}

// CreateWorkout handles POST /workouts.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	date, err := req.validate()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), date, *req.DurationMinutes, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutToResponse(workout))
}

// DeleteWorkout handles DELETE /workouts/:id. Association rows cascade.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted"})
}

// AddExerciseToWorkout handles
// POST /workouts/:id/exercises/:exercise_id/workout_exercises.
// Parents are resolved before the payload is validated, so a missing parent
// yields 404 even alongside an invalid payload.
func (h *WorkoutHandler) AddExerciseToWorkout(c *gin.Context) {
	workoutID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	exerciseID, ok := parseIDParam(c, "exercise_id")
	if !ok {
		return
	}

	// The body is parsed up front but field typing is deferred until both
	// parents have resolved: an absent body counts as an empty payload and
	// a mistyped field is carried as payloadErr, so a missing parent still
	// reports not-found. Only malformed JSON is rejected immediately.
	var raw map[string]json.RawMessage
	var payloadErr error
	if err := c.ShouldBindJSON(&raw); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
			return
		}
		payloadErr = domain.ValidationError("Validation error: " + err.Error())
	}
	var req AddWorkoutExerciseRequest
	if payloadErr == nil {
		payloadErr = req.decodeFields(raw)
	}

	result, err := h.workoutService.AddExerciseToWorkout(
		c.Request.Context(), workoutID, exerciseID, req.Reps, req.Sets, req.DurationSeconds, payloadErr)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	we := result.WorkoutExercise
	c.JSON(http.StatusCreated, WorkoutExerciseResponse{
		ID:              we.ID,
		WorkoutID:       we.WorkoutID,
		ExerciseID:      we.ExerciseID,
		Reps:            we.Reps,
		Sets:            we.Sets,
		DurationSeconds: we.DurationSeconds,
		Workout:         MapWorkoutToResponse(result.Workout),
		Exercise:        MapExerciseToResponse(result.Exercise),
	})
}
