package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tcarbonell24/workout-tracker-api/internal/service"
)

// SetupRoutes wires the handlers onto the engine.
func SetupRoutes(
	router *gin.Engine,
	exerciseService service.ExerciseService,
	workoutService service.WorkoutService,
) {
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(workoutService)

	// Landing page: a discovery document listing every route.
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Workout Tracker API!",
			"resources": gin.H{
				"exercises": gin.H{
					"GET":        "/exercises",
					"GET_SINGLE": "/exercises/:id",
					"POST":       "/exercises",
					"DELETE":     "/exercises/:id",
				},
				"workouts": gin.H{
					"GET":        "/workouts",
					"GET_SINGLE": "/workouts/:id",
					"POST":       "/workouts",
					"DELETE":     "/workouts/:id",
				},
				"workout_exercises": gin.H{
					"POST": "/workouts/:id/exercises/:exercise_id/workout_exercises",
				},
			},
		})
	})

	exerciseGroup := router.Group("/exercises")
	{
		exerciseGroup.GET("", exerciseHandler.ListExercises)
		exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
		exerciseGroup.POST("", exerciseHandler.CreateExercise)
		exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
	}

	workoutGroup := router.Group("/workouts")
	{
		workoutGroup.GET("", workoutHandler.ListWorkouts)
		workoutGroup.GET("/:id", workoutHandler.GetWorkout)
		workoutGroup.POST("", workoutHandler.CreateWorkout)
		workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		// The workout segment reuses :id; gin requires one wildcard name
		// per path position.
		workoutGroup.POST("/:id/exercises/:exercise_id/workout_exercises", workoutHandler.AddExerciseToWorkout)
	}
}
