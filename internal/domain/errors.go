package domain

// ValidationError reports a field-level rule violation. Constructors return
// it instead of an entity, so an invalid entity can never be observed.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// The same messages are used by the request-shape checks in the api package,
// so either validation layer rejects with identical wording.
var (
	ErrNameTooShort    = ValidationError("Exercise name must be at least 3 characters long")
	ErrInvalidCategory = ValidationError("Category must be one of: Strength, Cardio, Mobility, Flexibility")

	ErrDateRequired        = ValidationError("Workout date is required")
	ErrDurationNotPositive = ValidationError("Workout duration must be greater than 0")

	ErrNegativeReps            = ValidationError("reps must be zero or positive")
	ErrNegativeSets            = ValidationError("sets must be zero or positive")
	ErrNegativeDurationSeconds = ValidationError("duration_seconds must be zero or positive")
	ErrNoEffortProvided        = ValidationError("Must provide at least one of reps, sets, or duration_seconds")
)
